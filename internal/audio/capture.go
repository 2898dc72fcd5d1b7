package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-shellwords"
)

// Line is an open capture line producing raw PCM.
//
//go:generate moq -rm -out capture_mock.go . Line LineOpener
type Line interface {
	io.Reader
	// Stop ends capturing. A pending or later Read returns io.EOF once the
	// buffered audio is drained.
	Stop()
	Close() error
}

type LineOpener interface {
	Open(ctx context.Context, format Format) (Line, error)
}

var _ LineOpener = (*CaptureDevice)(nil)

// CaptureDevice opens capture lines by running a command that writes s16le
// PCM to stdout, ffmpeg reading ALSA by default.
type CaptureDevice struct {
	args []string
}

func NewCaptureDevice(command string) (*CaptureDevice, error) {
	args, err := shellwords.NewParser().Parse(command)
	if err != nil {
		return nil, fmt.Errorf("failed to parse capture command: %w", err)
	}
	if len(args) == 0 {
		return nil, errors.New("capture command must be specified")
	}
	return &CaptureDevice{args: args}, nil
}

// Open starts the capture command. Format arguments understood by ffmpeg are
// appended to the configured command line.
func (d *CaptureDevice) Open(ctx context.Context, format Format) (Line, error) {
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("unsupported capture format: %w", err)
	}

	args := append([]string{}, d.args[1:]...)
	args = append(args,
		"-ar", strconv.Itoa(format.SampleRate),
		"-ac", strconv.Itoa(format.Channels),
		"-f", "s16le",
		"-",
	)
	cmd := exec.CommandContext(ctx, d.args[0], args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open capture pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start capture command: %w", err)
	}

	slog.Info("capture started", "component", "capture", "command", d.args[0], "format", format.String())
	return &captureLine{cmd: cmd, stdout: stdout}, nil
}

type captureLine struct {
	cmd    *exec.Cmd
	stdout io.Reader

	stopped  atomic.Bool
	stopOnce sync.Once
	waitOnce sync.Once
	waitErr  error
}

func (l *captureLine) Read(p []byte) (int, error) {
	n, err := l.stdout.Read(p)
	if err == nil {
		return n, nil
	}
	if l.stopped.Load() {
		return n, io.EOF
	}
	if errors.Is(err, io.EOF) {
		// the command ended on its own, which means the device went away
		if waitErr := l.wait(); waitErr != nil {
			return n, fmt.Errorf("capture command exited: %w", waitErr)
		}
		return n, io.EOF
	}
	return n, err
}

func (l *captureLine) Stop() {
	l.stopOnce.Do(func() {
		l.stopped.Store(true)
		if err := l.cmd.Process.Kill(); err != nil {
			slog.Debug("failed to kill capture command", "component", "capture", "error", err)
		}
		slog.Info("capture stopped", "component", "capture")
	})
}

func (l *captureLine) Close() error {
	l.Stop()
	err := l.wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// killed by Stop
		return nil
	}
	return err
}

func (l *captureLine) wait() error {
	l.waitOnce.Do(func() {
		l.waitErr = l.cmd.Wait()
	})
	return l.waitErr
}
