package entity_test

import (
	"audio-joiner/src/application/batch"
	"audio-joiner/src/application/history/entity"
	"audio-joiner/src/application/processor"
	"audio-joiner/src/lib/cerr"
	"time"

	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("BatchRecord", func() {
	var (
		startedAt time.Time
		summary   batch.Summary
	)

	BeforeEach(func() {
		startedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		summary = batch.Summary{
			BatchID:   "batch-id",
			InputDir:  "/music",
			OutputDir: "/music/processed_output",
			Results: []processor.ProcessingResult{
				{
					SourceFileName: "a.wav",
					Succeeded:      true,
					Message:        "Successfully processed: a.wav",
					OutputPath:     "/music/processed_output/a_processed.wav",
				},
				{
					SourceFileName: "b.mp3",
					Succeeded:      false,
					Message:        "Error processing b.mp3: boom",
				},
			},
			SucceededCount: 1,
			Total:          2,
			StartedAt:      startedAt,
			FinishedAt:     startedAt.Add(time.Minute),
		}
	})

	Describe("CompletedRecord", func() {
		It("copies the summary counts and completion message", func() {
			record := entity.CompletedRecord(summary, nil)

			Expect(record.BatchID).To(Equal("batch-id"))
			Expect(record.Status).To(Equal(entity.CompletedStatus))
			Expect(record.StatusMessage).To(Equal("Processing complete. 1/2 files processed successfully."))
			Expect(record.SucceededCount).To(Equal(1))
			Expect(record.Total).To(Equal(2))
			Expect(record.Files).To(HaveLen(2))
		})

		It("attaches archive locations to the matching files", func() {
			record := entity.CompletedRecord(summary, map[string]string{
				"a.wav": "dummy://processed/batch-id/a_processed.wav",
			})

			Expect(record.Files[0].ArchiveURL).To(Equal("dummy://processed/batch-id/a_processed.wav"))
			Expect(record.Files[1].ArchiveURL).To(BeEmpty())
		})

		It("marshals to a DynamoDB item keyed by batch id", func() {
			item, err := dynamodbattribute.MarshalMap(entity.CompletedRecord(summary, nil))
			Expect(err).NotTo(HaveOccurred())

			Expect(item).To(HaveKey("batch_id"))
			Expect(*item["batch_id"].S).To(Equal("batch-id"))
			Expect(item["files"].L).To(HaveLen(2))
		})
	})

	Describe("ErrorRecord", func() {
		It("records the error text", func() {
			record := entity.ErrorRecord("batch-id", "/music", cerr.Error("Input directory not found"), startedAt)

			Expect(record.Status).To(Equal(entity.ErrorStatus))
			Expect(record.StatusMessage).To(Equal("Input directory not found"))
			Expect(record.Files).To(BeEmpty())
			Expect(record.FinishedAt).To(Equal(startedAt))
		})
	})
})
