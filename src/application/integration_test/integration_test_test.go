package integration_test_test

import (
	"audio-joiner/src/application/archive"
	"audio-joiner/src/application/batch"
	"audio-joiner/src/application/codec"
	"audio-joiner/src/application/history/entity"
	"audio-joiner/src/application/integration_test/dummy"
	"audio-joiner/src/application/jobs/job_router"
	"audio-joiner/src/application/jobs/process_batch"
	"audio-joiner/src/application/worker"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

var _ = Describe("IntegrationTest", func() {
	var (
		batchID  string
		inputDir string
		tailPath string

		jobQueue       *dummy.RabbitMQ
		resultQueue    *dummy.RabbitMQ
		fileStore      *dummy.FileStore
		batchStore     *dummy.BatchStore
		ffmpegExecutor *dummy.FFmpegExecutor

		queueWorker worker.QueueWorker
		run         func()
		cancel      context.CancelFunc
		workerErr   chan error
	)

	BeforeEach(func() {
		By("Assigning data to variables", func() {
			batchID = "batch-ID"
			inputDir = filepath.Join(workingDir, "input")
			tailPath = filepath.Join(workingDir, "outro.wav")
		})

		By("Writing the input directory and the tail", func() {
			Expect(os.MkdirAll(inputDir, os.ModePerm)).To(Succeed())

			for _, name := range []string{"a.wav", "b.ogg"} {
				err := dummy.WriteFakeAudio(filepath.Join(inputDir, name), dummy.FakeAudio{SampleRate: 8000, Channels: 2, Frames: 8800})
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(os.WriteFile(filepath.Join(inputDir, "notes.txt"), []byte("liner notes"), 0644)).To(Succeed())

			err := dummy.WriteFakeAudio(tailPath, dummy.FakeAudio{SampleRate: 44100, Channels: 2, Frames: 44100})
			Expect(err).NotTo(HaveOccurred())
		})

		By("Instantiating all dummies", func() {
			jobQueue = dummy.NewRabbitMQ()
			resultQueue = dummy.NewRabbitMQ()
			fileStore = dummy.NewDummyFileStore()
			batchStore = dummy.NewDummyBatchStore()
			ffmpegExecutor = dummy.NewDummyFFmpegExecutor()
		})

		By("Instantiating the worker", func() {
			runner := batch.NewRunner(codec.NewFFmpeg("/whatever/ffmpeg", "", "192k", ffmpegExecutor))
			archiver := archive.NewArchiver(fileStore, "processed", 4)
			handler := process_batch.NewJobHandler(runner, archiver)
			router := job_router.NewJobRouter(batchStore, resultQueue, handler)
			queueWorker = worker.NewQueueWorker(1, jobQueue, "test-queue", router)
		})

		By("Setting up the run routine", func() {
			workerErr = make(chan error, 1)
			cancel = func() {}

			run = func() {
				var ctx context.Context
				ctx, cancel = context.WithCancel(context.Background())

				go func() {
					workerErr <- queueWorker.Start(ctx)
				}()

				message, err := process_batch.CreateJobMessage(batchID, inputDir, tailPath)
				Expect(err).NotTo(HaveOccurred())
				err = jobQueue.Publish(message)
				Expect(err).NotTo(HaveOccurred())
			}
		})
	})

	AfterEach(func() {
		cancel()
		Eventually(workerErr).Should(Receive(BeNil()))
		_ = jobQueue.Close()
		_ = os.RemoveAll(inputDir)
		_ = os.Remove(tailPath)
	})

	It("gets 1 ack", func() {
		run()

		Eventually(jobQueue.AckCount).Should(Equal(1))
	})

	It("gets no nacks", func() {
		run()

		Consistently(jobQueue.NackCount).Should(Equal(0))
	})

	It("writes the processed files next to the input", func() {
		run()

		Eventually(jobQueue.AckCount).Should(Equal(1))

		for _, name := range []string{"a_processed.wav", "b_processed.ogg"} {
			_, err := dummy.ReadFakeAudio(filepath.Join(inputDir, batch.OutputDirName, name))
			Expect(err).NotTo(HaveOccurred())
		}
		Expect(filepath.Join(inputDir, batch.OutputDirName, "notes_processed.txt")).NotTo(BeAnExistingFile())
	})

	It("archives the outputs and records the batch", func() {
		run()

		Eventually(func() entity.BatchStatus {
			record, err := batchStore.GetBatch(context.Background(), batchID)
			if err != nil {
				return ""
			}
			return record.Status
		}).Should(Equal(entity.CompletedStatus))

		record, err := batchStore.GetBatch(context.Background(), batchID)
		Expect(err).NotTo(HaveOccurred())
		Expect(record.SucceededCount).To(Equal(2))
		Expect(record.Total).To(Equal(2))

		_, ok := fileStore.Get("processed/batch-ID/a_processed.wav")
		Expect(ok).To(BeTrue())
		_, ok = fileStore.Get("processed/batch-ID/b_processed.ogg")
		Expect(ok).To(BeTrue())
	})

	It("publishes the completed batch", func() {
		run()

		var completedMsg interface{}
		Eventually(resultQueue.MessageChannel).Should(Receive(&completedMsg))
	})

	It("reports the batch summary in the completed message", func() {
		run()

		Eventually(func() int { return len(resultQueue.MessageChannel) }).Should(Equal(1))
		delivery := <-resultQueue.MessageChannel
		Expect(delivery.Type).To(Equal(process_batch.CompletedType))

		completed := process_batch.CompletedMessage{}
		Expect(json.Unmarshal(delivery.Body, &completed)).To(Succeed())
		Expect(completed.Summary.String()).To(Equal("Processing complete. 2/2 files processed successfully."))
		Expect(completed.Archive.Locations).To(HaveLen(2))
	})

	Describe("When the input directory is missing", func() {
		BeforeEach(func() {
			Expect(os.RemoveAll(inputDir)).To(Succeed())
		})

		It("nacks the job and records the error", func() {
			run()

			Eventually(jobQueue.NackCount).Should(Equal(1))
			record, err := batchStore.GetBatch(context.Background(), batchID)
			Expect(err).NotTo(HaveOccurred())
			Expect(record.Status).To(Equal(entity.ErrorStatus))
			Expect(resultQueue.MessageChannel).To(BeEmpty())
		})
	})
})
