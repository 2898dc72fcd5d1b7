package transcription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/uts/vosk-transcriber/internal/audio"
	"github.com/uts/vosk-transcriber/internal/metrics"
	"github.com/uts/vosk-transcriber/internal/recognizer"
	"github.com/uts/vosk-transcriber/internal/store"
)

const LiveStrategyName = "live"

var _ Strategy = (*LiveStrategy)(nil)

// LiveStrategy transcribes a capture line until it is cancelled. It is meant
// to be executed once.
type LiveStrategy struct {
	deps              Deps
	opener            audio.LineOpener
	chunkSize         int
	inactivityTimeout time.Duration

	saver       store.Saver
	sessionName string

	mu        sync.Mutex
	line      audio.Line
	cancelled bool
}

func NewLiveStrategy(
	deps Deps,
	opener audio.LineOpener,
	chunkSize int,
	inactivityTimeout time.Duration,
) (*LiveStrategy, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if opener == nil {
		return nil, errors.New("line opener must be specified")
	}
	if chunkSize <= 0 {
		return nil, errors.New("chunk size must be greater than 0")
	}
	return &LiveStrategy{
		deps:              deps,
		opener:            opener,
		chunkSize:         chunkSize,
		inactivityTimeout: inactivityTimeout,
	}, nil
}

// WithSaver makes the strategy save the transcript when capture ends.
func (s *LiveStrategy) WithSaver(saver store.Saver, sessionName string) *LiveStrategy {
	if sessionName == "" {
		sessionName = DefaultSessionName
	}
	s.saver = saver
	s.sessionName = sessionName
	return s
}

func (s *LiveStrategy) Name() string      { return LiveStrategyName }
func (s *LiveStrategy) Cancellable() bool { return true }

// Cancel stops the capture line. Audio captured so far is still recognized
// and the pending hypothesis is flushed. Calling Cancel more than once has no
// further effect.
func (s *LiveStrategy) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancelled {
		return
	}
	s.cancelled = true
	slog.Info("cancelling audio capture", "component", "transcription")
	if s.line != nil {
		s.line.Stop()
	}
}

func (s *LiveStrategy) Execute(ctx context.Context, _ string, listener Listener) error {
	if err := s.deps.Permits.Acquire(ctx); err != nil {
		return err
	}
	defer s.deps.Permits.Release()

	line, err := s.opener.Open(ctx, s.deps.Format)
	if err != nil {
		return fmt.Errorf("failed to open capture line: %w", err)
	}
	s.setLine(line)
	defer s.closeLine(line)
	slog.Info("capture line opened", "component", "transcription")

	handler := &resultHandler{listener: listener, punctuator: s.deps.Punctuator}
	pipeline, err := recognizer.New(s.deps.Engine, line, handler, recognizer.Options{
		ChunkSize:         s.chunkSize,
		InactivityTimeout: s.inactivityTimeout,
		OnRead:            func(n int) { metrics.AudioRead(LiveStrategyName, n) },
	})
	if err != nil {
		return err
	}
	if err := pipeline.Run(ctx); err != nil {
		return fmt.Errorf("live transcription failed: %w", err)
	}
	slog.Info("audio capture finished", "component", "transcription")

	if s.saver != nil && handler.hasText() {
		if _, err := s.saver.SaveTranscription(s.sessionName, store.MergeFinals(handler.finals)); err != nil {
			return fmt.Errorf("failed to save transcription: %w", err)
		}
	}

	listener.OnComplete()
	return nil
}

// setLine publishes the line so that Cancel can reach it.
func (s *LiveStrategy) setLine(line audio.Line) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.line = line
	if s.cancelled {
		line.Stop()
	}
}

func (s *LiveStrategy) closeLine(line audio.Line) {
	s.mu.Lock()
	s.line = nil
	s.mu.Unlock()

	if err := line.Close(); err != nil {
		slog.Error("failed to close capture line", "component", "transcription", "error", err)
	}
}
