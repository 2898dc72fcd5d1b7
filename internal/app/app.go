// Package app is the command line interface of the transcriber.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/uts/vosk-transcriber/internal/config"
	"github.com/uts/vosk-transcriber/internal/logger"
)

const configKey = "config"

func New() *cli.App {
	return newApp(os.Stdout, os.Stderr)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	var closeLog func() error
	return &cli.App{
		Name:      "transcriber",
		Usage:     "offline speech transcription",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			configFlag,
			debugFlag,
			logFileFlag,
		},
		Before: func(cCtx *cli.Context) error {
			cfg, err := config.Load(cCtx.String(configFlag.Name))
			if err != nil {
				return err
			}
			l, closer, err := setLogger(cfg, cCtx.Bool(debugFlag.Name), cCtx.String(logFileFlag.Name), stderr)
			if err != nil {
				return fmt.Errorf("failed to set logger: %w", err)
			}
			slog.SetDefault(l)
			closeLog = closer

			if cCtx.App.Metadata == nil {
				cCtx.App.Metadata = map[string]any{}
			}
			cCtx.App.Metadata[configKey] = cfg
			return nil
		},
		After: func(cCtx *cli.Context) error {
			if closeLog != nil {
				return closeLog()
			}
			return nil
		},
		Commands: []*cli.Command{
			NewTranscribeCommand(),
			NewLiveCommand(),
			NewServeCommand(),
			NewHistoryCommand(),
		},
	}
}

func configFrom(cCtx *cli.Context) *config.Config {
	cfg, _ := cCtx.App.Metadata[configKey].(*config.Config)
	if cfg == nil {
		d := config.Default()
		cfg = &d
	}
	return cfg
}

// setLogger builds the default logger. --debug wins over the configured
// level, and --log-file over the configured file.
func setLogger(cfg *config.Config, debug bool, logFile string, stderr io.Writer) (*slog.Logger, func() error, error) {
	level, err := logger.ParseLevel(cfg.Telemetry.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	if debug {
		level = slog.LevelDebug
	}
	opts := logger.Options{
		Level:     level,
		Format:    cfg.Telemetry.LogFormat,
		AddSource: debug,
	}

	if logFile == "" {
		logFile = cfg.Telemetry.LogFile
	}
	if logFile == "" {
		return logger.New(stderr, opts), nil, nil
	}
	return logger.NewFileLogger(logFile, opts)
}
