package cmd

import (
	"audio-joiner/src/application/batch"
	"audio-joiner/src/application/watch"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/spf13/cobra"
)

var (
	watchInputDir string
	watchTailPath string
	watchSettle   time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Process the input directory, then every audio file added to it",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		watcher := watch.NewWatcher(app.NewRunner(), watchInputDir, watchTailPath, batch.LogSink{Logger: log.Log}, watchSettle)
		return watcher.Run(ctx)
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchInputDir, "input", "i", "", "directory to watch")
	watchCmd.Flags().StringVarP(&watchTailPath, "tail", "t", "", "audio file appended to every output")
	watchCmd.Flags().DurationVar(&watchSettle, "settle", watch.DefaultSettleTime, "how long a new file must stay unchanged before it is processed")
	_ = watchCmd.MarkFlagRequired("input")
	_ = watchCmd.MarkFlagRequired("tail")
}
