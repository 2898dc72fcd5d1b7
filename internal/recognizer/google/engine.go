// Package google streams audio to Cloud Speech-to-Text v2 and reports the
// hypotheses in the same shape as the Vosk engines.
package google

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	speech "cloud.google.com/go/speech/apiv2"
	"google.golang.org/api/option"

	myspeech "github.com/uts/vosk-transcriber/internal/interfaces/speech"
	"github.com/uts/vosk-transcriber/internal/recognizer/model"
)

const EngineName = "google"

type Options struct {
	ProjectID string
	// Location is a Speech-to-Text region such as "global" or "us-central1".
	Location string
	Language string
	Model    string

	SampleRate int
	Channels   int
	// Words enables word time offsets in final results.
	Words bool
	// PhraseSet, when set, biases recognition towards its phrases.
	PhraseSet *PhraseSet

	// ReconnectInterval is how often the stream is re-opened. Streams are
	// limited to 5 minutes by the service.
	ReconnectInterval time.Duration
}

func (o Options) validate() error {
	if o.ProjectID == "" {
		return errors.New("project ID must be specified")
	}
	if o.Location == "" {
		return errors.New("location must be specified")
	}
	if o.Language == "" {
		return errors.New("language must be specified")
	}
	if o.SampleRate <= 0 {
		return errors.New("sample rate must be positive")
	}
	if o.Channels <= 0 {
		return errors.New("channels must be positive")
	}
	if o.ReconnectInterval < time.Minute {
		return errors.New("reconnect interval must be greater than or equal to 1 minute")
	}
	return nil
}

var _ model.Engine = (*Engine)(nil)

type Engine struct {
	client   myspeech.Client
	supplier *StreamSupplier
	opts     Options

	closeOnce sync.Once
	closeErr  error
}

// Dial creates a Speech-to-Text client using application default credentials.
func Dial(ctx context.Context, opts Options) (*Engine, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	var clientOpts []option.ClientOption
	if opts.Location != "global" {
		clientOpts = append(clientOpts, option.WithEndpoint(fmt.Sprintf("%s-speech.googleapis.com:443", opts.Location)))
	}
	client, err := speech.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create speech client: %w", err)
	}

	e, err := NewEngine(client, opts)
	if err != nil {
		client.Close()
		return nil, err
	}
	slog.Info("google speech client ready",
		slog.String("project", opts.ProjectID),
		slog.String("location", opts.Location),
		slog.String("language", opts.Language))
	return e, nil
}

func NewEngine(client myspeech.Client, opts Options) (*Engine, error) {
	if client == nil {
		return nil, errors.New("client must be specified")
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &Engine{
		client:   client,
		supplier: NewStreamSupplier(client, opts),
		opts:     opts,
	}, nil
}

func (e *Engine) Name() string {
	return EngineName
}

func (e *Engine) NewCore(audioCh <-chan []byte, resultCh chan<- []*model.Result) (model.RecognizerCoreInterface, error) {
	return NewRecognizer(e.supplier, audioCh, resultCh, e.opts.ReconnectInterval)
}

func (e *Engine) Close() error {
	e.closeOnce.Do(func() {
		e.closeErr = e.client.Close()
	})
	return e.closeErr
}
