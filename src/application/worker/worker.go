package worker

import (
	"audio-joiner/src/lib/cerr"
	"context"

	"github.com/apex/log"
	"github.com/streadway/amqp"
)

type MessageChannel interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Close() error
}

type MessageRouter interface {
	HandleMessage(ctx context.Context, message amqp.Delivery) error
}

type QueueWorker struct {
	id        int
	channel   MessageChannel
	jobRouter MessageRouter
	queueName string
}

func NewQueueWorker(id int, channel MessageChannel, queueName string, jobRouter MessageRouter) QueueWorker {
	return QueueWorker{
		id:        id,
		channel:   channel,
		queueName: queueName,
		jobRouter: jobRouter,
	}
}

// NewQueueWorkerFromConnection opens a channel of its own on conn. Prefetch is
// one message so a long batch never holds other jobs back from idle workers.
func NewQueueWorkerFromConnection(id int, conn *amqp.Connection, queueName string, jobRouter MessageRouter) (QueueWorker, error) {
	rabbitChannel, err := conn.Channel()
	if err != nil {
		return QueueWorker{}, cerr.Wrap(err).Error("Failed to get channel")
	}

	queue, err := rabbitChannel.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	)

	if err != nil {
		_ = rabbitChannel.Close()
		return QueueWorker{}, cerr.Field("queue_name", queueName).Wrap(err).Error("Failed to declare queue")
	}

	if err = rabbitChannel.Qos(1, 0, false); err != nil {
		_ = rabbitChannel.Close()
		return QueueWorker{}, cerr.Wrap(err).Error("Failed to set channel prefetch")
	}

	return NewQueueWorker(id, rabbitChannel, queue.Name, jobRouter), nil
}

// Start consumes until ctx is done, which returns nil. A delivery stream
// that closes while ctx is still live is an error. Messages interrupted by
// ctx are requeued for another worker.
func (q *QueueWorker) Start(ctx context.Context) error {
	workerLogger := log.WithField("worker_id", q.id)
	workerLogger.Info("Starting worker")

	defer q.channel.Close()

	messageStream, err := q.channel.Consume(
		q.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)

	if err != nil {
		return cerr.Field("queue_name", q.queueName).
			Wrap(err).Error("Failed to start consuming from channel")
	}

	for {
		select {
		case <-ctx.Done():
			workerLogger.Info("Worker stopped")
			return nil

		case message, ok := <-messageStream:
			if !ok {
				if ctx.Err() != nil {
					workerLogger.Info("Worker stopped")
					return nil
				}
				return cerr.Field("worker_id", q.id).Error("Delivery stream closed unexpectedly")
			}

			if ctx.Err() != nil {
				if err = message.Nack(false, true); err != nil {
					workerLogger.Error("Failed to requeue message")
				}
				workerLogger.Info("Worker stopped")
				return nil
			}

			q.handle(ctx, message, workerLogger)
		}
	}
}

func (q *QueueWorker) handle(ctx context.Context, message amqp.Delivery, workerLogger *log.Entry) {
	logger := workerLogger.WithField("message_type", message.Type)
	logger.Info("Handling message")

	err := q.jobRouter.HandleMessage(ctx, message)
	if err == nil {
		logger.Info("Successfully processed message")
		if err = message.Ack(false); err != nil {
			logger.Error("Failed to ack message")
		}
		return
	}

	// a job cut short by shutdown goes back on the queue instead of being dropped
	requeue := ctx.Err() != nil
	err = cerr.Field("message_type", message.Type).
		Field("worker_id", q.id).
		Field("requeue", requeue).
		Wrap(err).Error("Failed to process message")
	cerr.Log(err)

	if err = message.Nack(false, requeue); err != nil {
		logger.Error("Failed to nack message")
	}
}
