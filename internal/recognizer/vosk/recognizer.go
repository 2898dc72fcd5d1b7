package vosk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	myvosk "github.com/uts/vosk-transcriber/internal/interfaces/vosk"
	"github.com/uts/vosk-transcriber/internal/recognizer/model"
)

var _ model.RecognizerCoreInterface = (*Recognizer)(nil)

// Recognizer feeds audio chunks into a single Vosk recognizer. The recognizer
// handle is owned by this core and freed when Start returns, so it is never
// shared between goroutines.
type Recognizer struct {
	recognizer myvosk.VoskRecognizer
	audioCh    <-chan []byte
	resultCh   chan<- []*model.Result
}

func NewRecognizer(
	recognizer myvosk.VoskRecognizer,
	audioCh <-chan []byte,
	resultCh chan<- []*model.Result,
) (*Recognizer, error) {
	if recognizer == nil {
		return nil, errors.New("recognizer must be specified")
	}
	if audioCh == nil {
		return nil, errors.New("audio channel must be specified")
	}
	if resultCh == nil {
		return nil, errors.New("result channel must be specified")
	}

	return &Recognizer{
		recognizer: recognizer,
		audioCh:    audioCh,
		resultCh:   resultCh,
	}, nil
}

func (r *Recognizer) Start(ctx context.Context) error {
	defer r.recognizer.Free()
	defer close(r.resultCh)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case audio, ok := <-r.audioCh:
			if !ok {
				return r.flush(ctx)
			}

			result, err := r.accept(audio)
			if err != nil {
				return err
			}
			if result == nil {
				continue
			}

			if err := r.publish(ctx, result); err != nil {
				return err
			}
		}
	}
}

// accept feeds one chunk and returns the hypothesis it produced, or nil when
// there is nothing worth reporting.
func (r *Recognizer) accept(audio []byte) (*model.Result, error) {
	switch state := r.recognizer.AcceptWaveform(audio); {
	case state < 0:
		return nil, fmt.Errorf("vosk failed to accept waveform (code %d)", state)
	case state == 0:
		result, err := model.ParsePartial(r.recognizer.PartialResult())
		if err != nil {
			return nil, err
		}
		if result.Transcript == "" {
			return nil, nil
		}
		slog.Debug("vosk: partial", slog.String("text", result.Transcript))
		return result, nil
	}

	result, err := model.ParseFinal(r.recognizer.Result())
	if err != nil {
		return nil, err
	}
	if result.Transcript == "" {
		return nil, nil
	}
	slog.Debug("vosk: final", slog.String("text", result.Transcript))
	return result, nil
}

func (r *Recognizer) flush(ctx context.Context) error {
	slog.Debug("vosk: audio channel closed, flushing final result")

	result, err := model.ParseFinal(r.recognizer.FinalResult())
	if err != nil {
		return fmt.Errorf("failed to flush final result: %w", err)
	}
	if result.Transcript == "" {
		return nil
	}
	return r.publish(ctx, result)
}

func (r *Recognizer) publish(ctx context.Context, result *model.Result) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case r.resultCh <- []*model.Result{result}:
		return nil
	}
}
