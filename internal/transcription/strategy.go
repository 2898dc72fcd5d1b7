package transcription

import (
	"context"
	"errors"
	"log/slog"

	"github.com/uts/vosk-transcriber/internal/audio"
	"github.com/uts/vosk-transcriber/internal/metrics"
	"github.com/uts/vosk-transcriber/internal/punctuator"
	"github.com/uts/vosk-transcriber/internal/recognizer/model"
	"github.com/uts/vosk-transcriber/internal/worker"
)

// Strategy acquires audio from some source and transcribes it. Strategies
// return errors instead of reporting them to the listener.
//
//go:generate moq -rm -out strategy_mock.go . Strategy
type Strategy interface {
	Name() string
	Execute(ctx context.Context, audioFile string, listener Listener) error
	Cancellable() bool
	Cancel()
}

// Deps are shared by every strategy.
type Deps struct {
	Engine  model.Engine
	Permits worker.Permits
	Format  audio.Format
	// Punctuator, when set, rewrites final transcripts.
	Punctuator punctuator.PunctuatorInterface
}

func (d Deps) validate() error {
	if d.Engine == nil {
		return errors.New("engine must be specified")
	}
	if d.Permits == nil {
		return errors.New("permits must be specified")
	}
	return d.Format.Validate()
}

// resultHandler sits between a pipeline and a listener. It punctuates and
// keeps the final results of the run.
type resultHandler struct {
	listener   Listener
	punctuator punctuator.PunctuatorInterface
	finals     []*model.Result
}

func (h *resultHandler) OnPartial(result *model.Result) {
	metrics.RecordResult(false)
	h.listener.OnPartial(result)
}

func (h *resultHandler) OnFinal(result *model.Result) {
	metrics.RecordResult(true)
	result = h.punctuate(result)
	h.finals = append(h.finals, result)
	h.listener.OnFinal(result)
}

func (h *resultHandler) punctuate(result *model.Result) *model.Result {
	if h.punctuator == nil || result.Transcript == "" {
		return result
	}
	text, err := h.punctuator.Punctuate(result.Transcript)
	if err != nil {
		slog.Warn("failed to punctuate result", "component", "transcription", "error", err)
		return result
	}
	return model.NewResult(text, true, result.Words)
}

// hasText reports whether any final carries a transcript.
func (h *resultHandler) hasText() bool {
	for _, r := range h.finals {
		if r.Transcript != "" {
			return true
		}
	}
	return false
}
