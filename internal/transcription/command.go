package transcription

import (
	"context"
	"errors"
	"log/slog"

	"github.com/uts/vosk-transcriber/internal/metrics"
)

// Command runs a strategy without its caller knowing which one it is.
type Command struct {
	strategy Strategy
}

func NewCommand(strategy Strategy) (*Command, error) {
	if strategy == nil {
		return nil, errors.New("strategy must be specified")
	}
	return &Command{strategy: strategy}, nil
}

// Run executes the strategy. A failure is reported to listener.OnError once
// and returned.
func (c *Command) Run(ctx context.Context, audioFile string, listener Listener) error {
	slog.Info("running transcription command", "component", "command", "strategy", c.strategy.Name())

	m := metrics.StartTranscription(c.strategy.Name())
	err := c.strategy.Execute(ctx, audioFile, listener)
	m.End(err)
	if err != nil {
		slog.Error("transcription command failed", "component", "command", "strategy", c.strategy.Name(), "error", err)
		listener.OnError(err)
		return err
	}
	return nil
}

func (c *Command) Cancel() {
	if !c.strategy.Cancellable() {
		slog.Warn("strategy is not cancellable", "component", "command", "strategy", c.strategy.Name())
		return
	}
	slog.Info("cancelling transcription", "component", "command")
	c.strategy.Cancel()
}

func (c *Command) IsCancellable() bool {
	return c.strategy.Cancellable()
}
