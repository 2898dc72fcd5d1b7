// Package native binds the recognizer core to the Vosk shared library through
// cgo. It is the only package that links libvosk.
package native

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	voskapi "github.com/alphacep/vosk-api/go"

	myvosk "github.com/uts/vosk-transcriber/internal/interfaces/vosk"
	"github.com/uts/vosk-transcriber/internal/recognizer/model"
	"github.com/uts/vosk-transcriber/internal/recognizer/vosk"
)

const EngineName = "vosk"

type Options struct {
	ModelPath  string
	SampleRate float64
	// Words enables word timings in final results.
	Words bool
	// Grammar restricts the vocabulary, e.g. `["yes", "no", "[unk]"]`.
	Grammar string
	// LogLevel is passed to the library; -1 silences it.
	LogLevel int
}

var _ model.Engine = (*Engine)(nil)

// Engine holds a Vosk model loaded once and shared by every recognizer.
type Engine struct {
	opts Options

	mu    sync.RWMutex
	model *voskapi.VoskModel
}

func Load(opts Options) (*Engine, error) {
	if opts.ModelPath == "" {
		return nil, errors.New("model path must be specified")
	}
	if opts.SampleRate <= 0 {
		return nil, errors.New("sample rate must be positive")
	}

	voskapi.SetLogLevel(opts.LogLevel)

	slog.Info("loading vosk model", slog.String("path", opts.ModelPath))
	m, err := voskapi.NewModel(opts.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load vosk model from %s: %w", opts.ModelPath, err)
	}
	slog.Info("vosk model loaded")

	return &Engine{opts: opts, model: m}, nil
}

func (e *Engine) Name() string {
	return EngineName
}

func (e *Engine) NewCore(audioCh <-chan []byte, resultCh chan<- []*model.Result) (model.RecognizerCoreInterface, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.model == nil {
		return nil, errors.New("vosk model is closed")
	}

	var (
		rec *voskapi.VoskRecognizer
		err error
	)
	if e.opts.Grammar != "" {
		rec, err = voskapi.NewRecognizerGrm(e.model, e.opts.SampleRate, e.opts.Grammar)
	} else {
		rec, err = voskapi.NewRecognizer(e.model, e.opts.SampleRate)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create vosk recognizer: %w", err)
	}
	if e.opts.Words {
		rec.SetWords(1)
	}

	core, err := vosk.NewRecognizer(&recognizer{rec: rec}, audioCh, resultCh)
	if err != nil {
		rec.Free()
		return nil, err
	}
	return core, nil
}

// Close frees the model. Recognizers created before Close keep working until
// they are freed because the library reference-counts the model.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.model == nil {
		return nil
	}
	e.model.Free()
	e.model = nil
	slog.Info("vosk model released")
	return nil
}

var _ myvosk.VoskRecognizer = (*recognizer)(nil)

type recognizer struct {
	rec *voskapi.VoskRecognizer
}

func (r *recognizer) AcceptWaveform(b []byte) int { return r.rec.AcceptWaveform(b) }
func (r *recognizer) PartialResult() []byte       { return []byte(r.rec.PartialResult()) }
func (r *recognizer) Result() []byte              { return []byte(r.rec.Result()) }
func (r *recognizer) FinalResult() []byte         { return []byte(r.rec.FinalResult()) }
func (r *recognizer) Free()                       { r.rec.Free() }
