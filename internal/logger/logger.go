package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Options selects the handler of a logger.
type Options struct {
	Level  slog.Level
	Format string // "text" or "json"
	// AddSource adds the caller position, which is mostly useful with debug
	// logs.
	AddSource bool
}

// New returns a logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	levelVar := &slog.LevelVar{}
	levelVar.Set(opts.Level)

	handlerOpts := &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: opts.AddSource,
	}
	if opts.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

// NewFileLogger returns a logger appending to the file at path and a func
// that closes the file.
func NewFileLogger(path string, opts Options) (*slog.Logger, func() error, error) {
	file, err := os.OpenFile(
		path,
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		os.FileMode(0644),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return New(file, opts), file.Close, nil
}

// ParseLevel accepts the names understood by slog.Level, e.g. "debug" or
// "warn+2".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, nil
}
