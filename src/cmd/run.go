package cmd

import (
	"audio-joiner/src/application/batch"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/spf13/cobra"
)

var (
	runInputDir string
	runTailPath string
)

type batchOutcome struct {
	summary batch.Summary
	err     error
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Process every audio file in the input directory once",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		done := make(chan batchOutcome, 1)
		go func() {
			summary, err := app.NewRunner().Run(ctx, batch.Request{
				InputDir: runInputDir,
				TailPath: runTailPath,
			}, batch.LogSink{Logger: log.Log})
			done <- batchOutcome{summary: summary, err: err}
		}()

		outcome := <-done
		if outcome.err != nil {
			return outcome.err
		}

		fmt.Fprintln(cmd.OutOrStdout(), outcome.summary.Report())
		return nil
	},
}

func init() {
	runCmd.Flags().StringVarP(&runInputDir, "input", "i", "", "directory with the audio files to process")
	runCmd.Flags().StringVarP(&runTailPath, "tail", "t", "", "audio file appended to every output")
	_ = runCmd.MarkFlagRequired("input")
	_ = runCmd.MarkFlagRequired("tail")
}
