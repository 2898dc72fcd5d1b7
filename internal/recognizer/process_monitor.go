package recognizer

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// ErrInactive is returned by ProcessMonitor when no activity is observed
// within its timeout.
var ErrInactive = errors.New("inactive for a long time")

//go:generate moq -rm -out process_monitor_mock.go . ProcessMonitorInterface
type ProcessMonitorInterface interface {
	Start(context.Context) error
}

var _ ProcessMonitorInterface = &ProcessMonitor{}

// ProcessMonitor watches an activity channel and fails once it stays silent
// for longer than the timeout. A closed activity channel ends monitoring.
type ProcessMonitor struct {
	processCh       <-chan struct{}
	timeoutDuration time.Duration
}

func NewProcessMonitor(
	processCh <-chan struct{},
	timeoutDuration time.Duration,
) *ProcessMonitor {
	return &ProcessMonitor{
		processCh:       processCh,
		timeoutDuration: timeoutDuration,
	}
}

func (m *ProcessMonitor) Start(ctx context.Context) error {
	timer := time.NewTimer(m.timeoutDuration)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-m.processCh:
			if !ok {
				return nil
			}
			if !timer.Stop() {
				<-timer.C
			}
			timer.Reset(m.timeoutDuration)
		case <-timer.C:
			slog.Warn("no audio activity", "component", "monitor", "timeout", m.timeoutDuration)
			return ErrInactive
		}
	}
}
