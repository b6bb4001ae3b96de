package main

import (
	"audio-joiner/src/application/config"
	"audio-joiner/src/application/jobs/process_batch"
	"audio-joiner/src/application/publish"
	"audio-joiner/src/lib/cerr"
	"flag"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

// sender publishes a single process_batch job, for poking a running worker by hand
func main() {
	log.SetHandler(cli.New(os.Stderr))

	inputDir := flag.String("input", "", "directory with the audio files to process")
	tailPath := flag.String("tail", "", "audio file appended to every output")
	batchID := flag.String("batch-id", "", "batch id, generated when empty")
	flag.Parse()

	if err := send(*inputDir, *tailPath, *batchID); err != nil {
		cerr.Log(err)
		os.Exit(1)
	}
}

func send(inputDir string, tailPath string, batchID string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.RabbitMQURL == "" {
		return cerr.Error("Can't get rabbitmq url")
	}

	if inputDir == "" || tailPath == "" {
		return cerr.Error("Both -input and -tail are required")
	}

	if batchID == "" {
		batchID = uuid.New().String()
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return cerr.Wrap(err).Error("Failed to connect to RabbitMQ")
	}
	defer conn.Close()

	publisher, err := publish.NewRabbitMQPublisher(conn, cfg.QueueName)
	if err != nil {
		return err
	}
	defer publisher.Close()

	job, err := process_batch.CreateJobMessage(batchID, inputDir, tailPath)
	if err != nil {
		return err
	}

	if err = publisher.Publish(job); err != nil {
		return cerr.Field("queue_name", cfg.QueueName).Wrap(err).Error("Failed to publish job")
	}

	log.WithFields(log.Fields{
		"batch_id": batchID,
		"queue":    cfg.QueueName,
	}).Info("Published batch job")

	return nil
}
