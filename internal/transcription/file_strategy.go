package transcription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/uts/vosk-transcriber/internal/audio"
	"github.com/uts/vosk-transcriber/internal/metrics"
	"github.com/uts/vosk-transcriber/internal/progress"
	"github.com/uts/vosk-transcriber/internal/recognizer"
	"github.com/uts/vosk-transcriber/internal/store"
)

const (
	FileStrategyName = "file"
	// DefaultSessionName names transcriptions started without a name.
	DefaultSessionName = "New Session"
)

var _ Strategy = (*FileStrategy)(nil)

// FileStrategy transcribes one audio file and saves the transcript.
type FileStrategy struct {
	deps        Deps
	converter   audio.PCMConverter
	saver       store.Saver
	chunkSize   int
	sessionName string
	progress    progress.Reporter
}

func NewFileStrategy(
	deps Deps,
	converter audio.PCMConverter,
	saver store.Saver,
	chunkSize int,
	sessionName string,
) (*FileStrategy, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}
	if converter == nil {
		return nil, errors.New("converter must be specified")
	}
	if saver == nil {
		return nil, errors.New("saver must be specified")
	}
	if chunkSize <= 0 {
		return nil, errors.New("chunk size must be greater than 0")
	}
	if sessionName == "" {
		sessionName = DefaultSessionName
	}
	return &FileStrategy{
		deps:        deps,
		converter:   converter,
		saver:       saver,
		chunkSize:   chunkSize,
		sessionName: sessionName,
	}, nil
}

// WithProgress reports bytes sent to the recognizer to p.
func (s *FileStrategy) WithProgress(p progress.Reporter) *FileStrategy {
	s.progress = p
	return s
}

func (s *FileStrategy) Name() string      { return FileStrategyName }
func (s *FileStrategy) Cancellable() bool { return false }

// Cancel does nothing. A file transcription is aborted through its context.
func (s *FileStrategy) Cancel() {}

func (s *FileStrategy) Execute(ctx context.Context, audioFile string, listener Listener) error {
	if audioFile == "" {
		return errors.New("audio file must be specified")
	}
	if _, err := os.Stat(audioFile); err != nil {
		return fmt.Errorf("audio file does not exist: %w", err)
	}

	slog.Info("starting file transcription", "component", "transcription", "file", audioFile)

	if err := s.deps.Permits.Acquire(ctx); err != nil {
		return err
	}
	defer s.deps.Permits.Release()

	converted, err := s.converter.ConvertToPCM(ctx, audioFile)
	if err != nil {
		return fmt.Errorf("failed to convert audio: %w", err)
	}
	defer s.removeConverted(audioFile, converted)

	pcm, err := audio.OpenPCM(converted, s.deps.Format)
	if err != nil {
		return err
	}
	defer pcm.Close()

	var tracker progress.Tracker
	if s.progress != nil {
		tracker = s.progress.Track(filepath.Base(audioFile), pcm.Size)
		defer tracker.Done()
	}
	var total int64
	onRead := func(n int) {
		total += int64(n)
		metrics.AudioRead(FileStrategyName, n)
		if tracker != nil {
			tracker.Add(n)
		}
	}

	handler := &resultHandler{listener: listener, punctuator: s.deps.Punctuator}
	pipeline, err := recognizer.New(s.deps.Engine, pcm, handler, recognizer.Options{
		ChunkSize: s.chunkSize,
		OnRead:    onRead,
	})
	if err != nil {
		return err
	}
	if err := pipeline.Run(ctx); err != nil {
		return fmt.Errorf("transcription failed: %w", err)
	}
	slog.Info("audio processed", "component", "transcription", "bytes", total)

	if _, err := s.saver.SaveTranscription(s.sessionName, store.MergeFinals(handler.finals)); err != nil {
		return fmt.Errorf("failed to save transcription: %w", err)
	}

	listener.OnComplete()
	return nil
}

func (s *FileStrategy) removeConverted(input, converted string) {
	if sameFile(input, converted) {
		return
	}
	if err := os.Remove(converted); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to remove converted file", "component", "transcription", "path", converted, "error", err)
		return
	}
	slog.Debug("converted file removed", "component", "transcription", "path", converted)
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}
