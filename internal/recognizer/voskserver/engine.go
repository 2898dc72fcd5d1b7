// Package voskserver recognizes speech with a remote Vosk WebSocket server.
package voskserver

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"github.com/uts/vosk-transcriber/internal/recognizer/model"
)

const EngineName = "vosk-server"

type Options struct {
	URL        string
	SampleRate int
	// Words enables word timings in final results.
	Words bool
	// Grammar restricts the vocabulary, e.g. `["yes", "no", "[unk]"]`.
	Grammar     string
	DialTimeout time.Duration
}

var _ model.Engine = (*Engine)(nil)

// Engine opens one WebSocket connection per recognizer. The model lives on
// the server, so there is nothing to release on Close.
type Engine struct {
	opts   Options
	dialer *websocket.Dialer
}

func NewEngine(opts Options) (*Engine, error) {
	if opts.URL == "" {
		return nil, errors.New("server URL must be specified")
	}
	u, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return nil, fmt.Errorf("server URL must use ws or wss, got %q", u.Scheme)
	}
	if opts.SampleRate <= 0 {
		return nil, errors.New("sample rate must be positive")
	}
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = 10 * time.Second
	}

	return &Engine{
		opts: opts,
		dialer: &websocket.Dialer{
			HandshakeTimeout: opts.DialTimeout,
		},
	}, nil
}

func (e *Engine) Name() string {
	return EngineName
}

func (e *Engine) NewCore(audioCh <-chan []byte, resultCh chan<- []*model.Result) (model.RecognizerCoreInterface, error) {
	return NewRecognizer(e.dialer, e.opts, audioCh, resultCh)
}

func (e *Engine) Close() error {
	return nil
}
