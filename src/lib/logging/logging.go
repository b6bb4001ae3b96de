package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"audio-joiner/src/lib/werror"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/multi"
	"github.com/apex/log/handlers/text"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Format string

const (
	CLIFormat  Format = "cli"
	JSONFormat Format = "json"
	TextFormat Format = "text"
)

type Config struct {
	Level  string
	Format Format

	// File enables an additional rotating JSON log file when set
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Setup installs the global apex/log handler. The returned closer flushes the log file, if any.
func Setup(config Config, console io.Writer) (io.Closer, error) {
	level, err := log.ParseLevel(strings.ToLower(config.Level))
	if err != nil {
		return nil, werror.WrapError("Invalid log level", err)
	}

	consoleHandler, err := consoleHandler(config.Format, console)
	if err != nil {
		return nil, err
	}

	var closer io.Closer = nopCloser{}
	handler := consoleHandler

	if config.File != "" {
		if err := os.MkdirAll(filepath.Dir(config.File), 0755); err != nil {
			return nil, werror.WrapError("Failed to create log directory", err)
		}

		fileWriter := &lumberjack.Logger{
			Filename:   config.File,
			MaxSize:    config.MaxSizeMB,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAgeDays,
			Compress:   true,
		}
		closer = fileWriter
		handler = multi.New(consoleHandler, json.New(fileWriter))
	}

	log.SetHandler(handler)
	log.SetLevel(level)

	return closer, nil
}

func consoleHandler(format Format, console io.Writer) (log.Handler, error) {
	switch format {
	case CLIFormat, "":
		return cli.New(console), nil
	case JSONFormat:
		return json.New(console), nil
	case TextFormat:
		return text.New(console), nil
	default:
		return nil, werror.Wrapf(nil, "Unknown log format: %s", format)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
