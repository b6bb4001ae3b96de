package cmd

import (
	"audio-joiner/src/application/batch"
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that ffmpeg and ffprobe can be found",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !app.Codec().Available() {
			return batch.ErrToolchainMissing
		}

		fmt.Fprintln(cmd.OutOrStdout(), "FFmpeg found, ready to process audio files.")
		return nil
	},
}
