package worker_test

import (
	"audio-joiner/src/application/integration_test/dummy"
	"audio-joiner/src/application/worker"
	"audio-joiner/src/lib/cerr"
	"context"
	"sync"

	"github.com/streadway/amqp"

	. "github.com/onsi/gomega"

	. "github.com/onsi/ginkgo"
)

type routerFunc func(ctx context.Context, message amqp.Delivery) error

func (f routerFunc) HandleMessage(ctx context.Context, message amqp.Delivery) error {
	return f(ctx, message)
}

var _ = Describe("QueueWorker", func() {
	var (
		rabbitMQ *dummy.RabbitMQ
		mutex    sync.Mutex
		handled  []string
		failType string

		queueWorker worker.QueueWorker
		startErr    chan error
		cancel      context.CancelFunc
		blockType   string

		publish = func(messageType string) {
			err := rabbitMQ.Publish(amqp.Publishing{Type: messageType, Body: []byte("{}")})
			Expect(err).NotTo(HaveOccurred())
		}
	)

	BeforeEach(func() {
		rabbitMQ = dummy.NewRabbitMQ()
		handled = nil
		failType = "broken"
		blockType = "slow"
		startErr = make(chan error, 1)

		router := routerFunc(func(ctx context.Context, message amqp.Delivery) error {
			mutex.Lock()
			handled = append(handled, message.Type)
			mutex.Unlock()

			if message.Type == blockType {
				<-ctx.Done()
				return ctx.Err()
			}
			if message.Type == failType {
				return cerr.Error("i failed")
			}
			return nil
		})

		queueWorker = worker.NewQueueWorker(1, rabbitMQ, "test-queue", router)
	})

	JustBeforeEach(func() {
		var ctx context.Context
		ctx, cancel = context.WithCancel(context.Background())

		go func() {
			startErr <- queueWorker.Start(ctx)
		}()
	})

	AfterEach(func() {
		cancel()
		_ = rabbitMQ.Close()
	})

	It("acks handled messages", func() {
		publish("process_batch")
		publish("process_batch")

		Eventually(rabbitMQ.AckCount).Should(Equal(2))
		Consistently(rabbitMQ.NackCount).Should(Equal(0))
	})

	It("nacks messages that fail", func() {
		publish("process_batch")
		publish("broken")

		Eventually(rabbitMQ.NackCount).Should(Equal(1))
		Eventually(rabbitMQ.AckCount).Should(Equal(1))
		Expect(rabbitMQ.RequeueCount()).To(Equal(0))
	})

	It("handles messages in order", func() {
		publish("first")
		publish("second")

		Eventually(func() []string {
			mutex.Lock()
			defer mutex.Unlock()
			return append([]string{}, handled...)
		}).Should(Equal([]string{"first", "second"}))
	})

	It("returns an error when the delivery stream closes on its own", func() {
		Expect(rabbitMQ.Close()).To(Succeed())
		Eventually(startErr).Should(Receive(HaveOccurred()))
	})

	It("stops without an error when the context is cancelled", func() {
		publish("process_batch")
		Eventually(rabbitMQ.AckCount).Should(Equal(1))

		cancel()
		Eventually(startErr).Should(Receive(BeNil()))
	})

	Describe("When shutdown interrupts a message", func() {
		It("requeues it instead of dropping it", func() {
			publish("slow")
			Eventually(func() []string {
				mutex.Lock()
				defer mutex.Unlock()
				return append([]string{}, handled...)
			}).Should(Equal([]string{"slow"}))

			cancel()

			Eventually(startErr).Should(Receive(BeNil()))
			Expect(rabbitMQ.NackCount()).To(Equal(1))
			Expect(rabbitMQ.RequeueCount()).To(Equal(1))
			Expect(rabbitMQ.AckCount()).To(Equal(0))
		})
	})

	Describe("When the queue is unavailable", func() {
		BeforeEach(func() {
			rabbitMQ.Unavailable = true
		})

		It("returns an error", func() {
			Eventually(startErr).Should(Receive(HaveOccurred()))
		})
	})
})
