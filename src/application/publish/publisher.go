package publish

import (
	"audio-joiner/src/lib/cerr"

	"github.com/streadway/amqp"
)

var _ Publisher = RabbitMQPublisher{}

type Publisher interface {
	Publish(msg amqp.Publishing) error
}

// NewRabbitMQPublisher opens a channel on conn and declares the durable queue messages are routed to
func NewRabbitMQPublisher(conn *amqp.Connection, queueName string) (RabbitMQPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return RabbitMQPublisher{}, cerr.Wrap(err).Error("Failed to create rabbit channel")
	}

	_, err = channel.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = channel.Close()
		return RabbitMQPublisher{}, cerr.Field("queue_name", queueName).Wrap(err).Error("Failed to declare queue")
	}

	return RabbitMQPublisher{
		channel:   channel,
		queueName: queueName,
	}, nil
}

type RabbitMQPublisher struct {
	channel   *amqp.Channel
	queueName string
}

func (r RabbitMQPublisher) Publish(msg amqp.Publishing) error {
	msg.ContentType = "application/json"
	msg.DeliveryMode = amqp.Persistent
	return r.channel.Publish("", r.queueName, true, false, msg)
}

func (r RabbitMQPublisher) Close() error {
	return r.channel.Close()
}
