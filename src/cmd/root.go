package cmd

import (
	"audio-joiner/src/application"
	"audio-joiner/src/application/config"
	"audio-joiner/src/lib/cerr"
	"audio-joiner/src/lib/logging"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	envFile  string
	logLevel string

	cfg       config.Config
	app       application.App
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "audio-joiner",
	Short:         "Speeds up every audio file in a directory and joins it with itself and a tail clip.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(envFile); err != nil {
			return err
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		if logLevel != "" {
			cfg.Log.Level = logLevel
		}

		logCloser, err = logging.Setup(cfg.Log, os.Stderr)
		if err != nil {
			return err
		}

		app = application.NewApp(cfg)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level, overrides LOG_LEVEL")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(workerCmd)
	rootCmd.AddCommand(watchCmd)
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		cerr.Log(err)
		os.Exit(1)
	}
}
