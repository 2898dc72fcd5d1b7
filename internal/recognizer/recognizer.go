package recognizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/uts/vosk-transcriber/internal/recognizer/model"
)

// Options tunes a Pipeline.
type Options struct {
	// ChunkSize is the number of bytes sent to the engine at once.
	ChunkSize int
	// InactivityTimeout enables a ProcessMonitor on the audio source when
	// positive.
	InactivityTimeout time.Duration
	// OnRead is called with the size of every chunk read from the source.
	OnRead func(n int)
}

// Pipeline streams one audio source through one recognizer core.
type Pipeline struct {
	audioReader AudioReaderInterface
	core        model.RecognizerCoreInterface
	dispatcher  *ResultDispatcher
	monitor     ProcessMonitorInterface

	activityCh chan struct{}
}

func New(
	engine model.Engine,
	source io.Reader,
	handler ResultHandler,
	opts Options,
) (*Pipeline, error) {
	if engine == nil {
		return nil, errors.New("engine must be specified")
	}
	if source == nil {
		return nil, errors.New("audio source must be specified")
	}
	if handler == nil {
		return nil, errors.New("result handler must be specified")
	}
	if opts.ChunkSize <= 0 {
		return nil, errors.New("chunk size must be greater than 0")
	}

	// not sure what is the appropriate buffer size.
	audioCh := make(chan []byte, 10)
	resultCh := make(chan []*model.Result, 10)

	core, err := engine.NewCore(audioCh, resultCh)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s recognizer: %w", engine.Name(), err)
	}

	audioReader := NewAudioReader(source, audioCh, opts.ChunkSize).WithReadHook(opts.OnRead)
	p := &Pipeline{
		core:       core,
		dispatcher: NewResultDispatcher(resultCh, handler),
	}
	if opts.InactivityTimeout > 0 {
		// one pending signal is enough to extend the deadline.
		p.activityCh = make(chan struct{}, 1)
		audioReader.WithActivity(p.activityCh)
		p.monitor = NewProcessMonitor(p.activityCh, opts.InactivityTimeout)
	}
	p.audioReader = audioReader

	return p, nil
}

// Run blocks until the source is exhausted and every result has been
// dispatched, or until a component fails. A failure cancels the others.
func (p *Pipeline) Run(ctx context.Context) error {
	slog.Debug("pipeline started")

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		err := p.audioReader.Start(ctx)
		if p.activityCh != nil {
			close(p.activityCh)
		}
		if err != nil {
			return fmt.Errorf("error occurred in audio reader: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if err := p.core.Start(ctx); err != nil {
			return fmt.Errorf("error occurred in recognizer core: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if err := p.dispatcher.Start(ctx); err != nil {
			return fmt.Errorf("error occurred in result dispatcher: %w", err)
		}
		return nil
	})
	if p.monitor != nil {
		eg.Go(func() error {
			if err := p.monitor.Start(ctx); err != nil {
				return fmt.Errorf("error occurred in process monitor: %w", err)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	slog.Debug("pipeline stopped")

	return nil
}
