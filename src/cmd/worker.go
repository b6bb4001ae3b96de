package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/spf13/cobra"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Consume batch jobs from RabbitMQ",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		log.WithFields(log.Fields{
			"queue":       cfg.QueueName,
			"num_workers": cfg.NumWorkers,
			"archive":     cfg.ArchiveBackend,
		}).Info("Starting audio-joiner workers")

		return app.StartWorkers(ctx)
	},
}
