package job_router_test

import (
	"audio-joiner/src/application/archive"
	"audio-joiner/src/application/batch"
	"audio-joiner/src/application/history/entity"
	"audio-joiner/src/application/integration_test/dummy"
	"audio-joiner/src/application/jobs/job_router"
	"audio-joiner/src/application/jobs/process_batch"
	"audio-joiner/src/application/jobs/process_batch/process_batchfakes"
	"audio-joiner/src/application/processor"
	"audio-joiner/src/lib/cerr"
	"context"
	"encoding/json"

	"github.com/streadway/amqp"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("JobRouter", func() {
	var (
		batchID string

		processBatchHandler *process_batchfakes.FakeProcessBatchJobHandler

		batchStore *dummy.BatchStore
		rabbitMQ   *dummy.RabbitMQ

		jobRouter job_router.JobRouter

		message amqp.Delivery

		ctx context.Context
	)

	BeforeEach(func() {
		batchID = "batch-id"
		ctx = context.Background()

		By("Initializing the router", func() {
			processBatchHandler = &process_batchfakes.FakeProcessBatchJobHandler{}
			batchStore = dummy.NewDummyBatchStore()
			rabbitMQ = dummy.NewRabbitMQ()

			jobRouter = job_router.NewJobRouter(batchStore, rabbitMQ, processBatchHandler)
		})

		By("Creating the message", func() {
			publishing, err := process_batch.CreateJobMessage(batchID, "/music", "/tails/outro.wav")
			Expect(err).NotTo(HaveOccurred())

			message = amqp.Delivery{
				Type: publishing.Type,
				Body: publishing.Body,
			}
		})
	})

	Describe("Process batch job", func() {
		Describe("When job succeeds", func() {
			BeforeEach(func() {
				processBatchHandler.HandleProcessBatchJobReturns(process_batch.JobParams{
					BatchID:  batchID,
					InputDir: "/music",
					TailPath: "/tails/outro.wav",
				}, process_batch.CompletedMessage{
					Summary: batch.Summary{
						BatchID:   batchID,
						InputDir:  "/music",
						OutputDir: "/music/processed_output",
						Results: []processor.ProcessingResult{
							{SourceFileName: "a.wav", Succeeded: true, Message: "Successfully processed: a.wav", OutputPath: "/music/processed_output/a_processed.wav"},
							{SourceFileName: "b.mp3", Succeeded: false, Message: "Error processing b.mp3: boom"},
						},
						SucceededCount: 1,
						Total:          2,
					},
					Archive: archive.Report{
						Locations: map[string]string{"a.wav": "dummy://processed/batch-id/a_processed.wav"},
					},
				}, nil)
			})

			It("doesn't return an error", func() {
				err := jobRouter.HandleMessage(ctx, message)
				Expect(err).NotTo(HaveOccurred())
			})

			It("passes the message body to the handler", func() {
				_ = jobRouter.HandleMessage(ctx, message)
				Expect(processBatchHandler.HandleProcessBatchJobCallCount()).To(Equal(1))
				handlerCtx, body := processBatchHandler.HandleProcessBatchJobArgsForCall(0)
				Expect(handlerCtx).To(Equal(ctx))
				Expect(body).To(Equal(message.Body))
			})

			It("publishes the batch completed message", func() {
				_ = jobRouter.HandleMessage(ctx, message)
				Expect(rabbitMQ.MessageChannel).To(HaveLen(1))

				completedMsg := <-rabbitMQ.MessageChannel
				Expect(completedMsg.Type).To(Equal(process_batch.CompletedType))

				var completed process_batch.CompletedMessage
				err := json.Unmarshal(completedMsg.Body, &completed)
				Expect(err).NotTo(HaveOccurred())
				Expect(completed.Summary.BatchID).To(Equal(batchID))
				Expect(completed.Summary.SucceededCount).To(Equal(1))
				Expect(completed.Archive.Locations).To(HaveKey("a.wav"))
			})

			It("records the batch in history", func() {
				_ = jobRouter.HandleMessage(ctx, message)

				record, err := batchStore.GetBatch(context.Background(), batchID)
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal(entity.CompletedStatus))
				Expect(record.StatusMessage).To(Equal("Processing complete. 1/2 files processed successfully."))
				Expect(record.Files[0].ArchiveURL).To(Equal("dummy://processed/batch-id/a_processed.wav"))
			})

			Describe("When the history store is down", func() {
				BeforeEach(func() {
					batchStore.Unavailable = true
				})

				It("still succeeds and publishes", func() {
					err := jobRouter.HandleMessage(ctx, message)
					Expect(err).NotTo(HaveOccurred())
					Expect(rabbitMQ.MessageChannel).To(HaveLen(1))
				})
			})

			Describe("When publishing fails", func() {
				BeforeEach(func() {
					rabbitMQ.Unavailable = true
				})

				It("returns an error", func() {
					err := jobRouter.HandleMessage(ctx, message)
					Expect(err).To(HaveOccurred())
				})
			})
		})

		Describe("When job fails", func() {
			BeforeEach(func() {
				processBatchHandler.HandleProcessBatchJobReturns(process_batch.JobParams{BatchID: batchID}, process_batch.CompletedMessage{}, cerr.Error("i failed"))
			})

			It("returns an error", func() {
				err := jobRouter.HandleMessage(ctx, message)
				Expect(err).To(HaveOccurred())
			})

			It("records the batch as errored", func() {
				_ = jobRouter.HandleMessage(ctx, message)

				record, err := batchStore.GetBatch(context.Background(), batchID)
				Expect(err).NotTo(HaveOccurred())
				Expect(record.Status).To(Equal(entity.ErrorStatus))
				Expect(record.StatusMessage).To(ContainSubstring("i failed"))
				Expect(record.InputDir).To(Equal("/music"))
			})

			It("doesn't publish anything", func() {
				_ = jobRouter.HandleMessage(ctx, message)
				Expect(rabbitMQ.MessageChannel).To(BeEmpty())
			})

			Describe("When the worker is shutting down", func() {
				BeforeEach(func() {
					var cancel context.CancelFunc
					ctx, cancel = context.WithCancel(context.Background())
					cancel()
				})

				It("returns the error without recording the batch", func() {
					err := jobRouter.HandleMessage(ctx, message)
					Expect(err).To(HaveOccurred())

					_, err = batchStore.GetBatch(context.Background(), batchID)
					Expect(err).To(HaveOccurred())
				})
			})
		})
	})

	Describe("Unknown job", func() {
		BeforeEach(func() {
			message.Type = "split_stems"
		})

		It("returns an error without calling the handler", func() {
			err := jobRouter.HandleMessage(ctx, message)
			Expect(err).To(HaveOccurred())
			Expect(processBatchHandler.HandleProcessBatchJobCallCount()).To(BeZero())
		})
	})
})
