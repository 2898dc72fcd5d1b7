package voskserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/uts/vosk-transcriber/internal/recognizer/model"
)

var _ model.RecognizerCoreInterface = (*Recognizer)(nil)

// eofMessage asks the server for the final result. The server closes the
// connection after answering it.
var eofMessage = []byte(`{"eof" : 1}`)

type configMessage struct {
	Config recognizerConfig `json:"config"`
}

type recognizerConfig struct {
	SampleRate int             `json:"sample_rate"`
	Words      bool            `json:"words,omitempty"`
	PhraseList json.RawMessage `json:"phrase_list,omitempty"`
}

// serverMessage tells partial and final documents apart by which key is
// present, since either may be empty.
type serverMessage struct {
	Partial *string `json:"partial"`
	Text    *string `json:"text"`
}

type Recognizer struct {
	dialer   *websocket.Dialer
	opts     Options
	audioCh  <-chan []byte
	resultCh chan<- []*model.Result

	eofSent atomic.Bool
}

func NewRecognizer(
	dialer *websocket.Dialer,
	opts Options,
	audioCh <-chan []byte,
	resultCh chan<- []*model.Result,
) (*Recognizer, error) {
	if dialer == nil {
		return nil, errors.New("dialer must be specified")
	}
	if audioCh == nil {
		return nil, errors.New("audio channel must be specified")
	}
	if resultCh == nil {
		return nil, errors.New("result channel must be specified")
	}
	if opts.Grammar != "" && !json.Valid([]byte(opts.Grammar)) {
		return nil, errors.New("grammar must be a JSON list")
	}

	return &Recognizer{
		dialer:   dialer,
		opts:     opts,
		audioCh:  audioCh,
		resultCh: resultCh,
	}, nil
}

func (r *Recognizer) Start(ctx context.Context) error {
	defer close(r.resultCh)

	conn, _, err := r.dialer.DialContext(ctx, r.opts.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", r.opts.URL, err)
	}
	defer conn.Close()
	slog.Debug("voskserver: connected", slog.String("url", r.opts.URL))

	config := configMessage{Config: recognizerConfig{
		SampleRate: r.opts.SampleRate,
		Words:      r.opts.Words,
	}}
	if r.opts.Grammar != "" {
		config.Config.PhraseList = json.RawMessage(r.opts.Grammar)
	}
	if err := conn.WriteJSON(config); err != nil {
		return fmt.Errorf("failed to send config: %w", err)
	}

	eg, egCtx := errgroup.WithContext(ctx)

	// Closing the connection is the only way to unblock ReadMessage.
	stop := context.AfterFunc(egCtx, func() { conn.Close() })
	defer stop()

	eg.Go(func() error {
		if err := r.send(egCtx, conn); err != nil {
			return fmt.Errorf("error occurred in audio sender: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if err := r.receive(egCtx, conn); err != nil {
			return fmt.Errorf("error occurred in response receiver: %w", err)
		}
		return nil
	})

	err = eg.Wait()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (r *Recognizer) send(ctx context.Context, conn *websocket.Conn) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case audio, ok := <-r.audioCh:
			if !ok {
				slog.Debug("voskserver: audio channel closed, requesting final result")
				r.eofSent.Store(true)
				if err := conn.WriteMessage(websocket.TextMessage, eofMessage); err != nil {
					return fmt.Errorf("failed to send eof: %w", err)
				}
				return nil
			}
			if err := conn.WriteMessage(websocket.BinaryMessage, audio); err != nil {
				return fmt.Errorf("failed to send audio: %w", err)
			}
		}
	}
}

func (r *Recognizer) receive(ctx context.Context, conn *websocket.Conn) error {
	var lastPartial string
	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if r.eofSent.Load() {
				return nil
			}
			return fmt.Errorf("connection closed before the final result: %w", err)
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg serverMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			return fmt.Errorf("failed to parse server message: %w", err)
		}

		var result *model.Result
		switch {
		case msg.Text != nil:
			result, err = model.ParseFinal(payload)
			lastPartial = ""
		case msg.Partial != nil:
			result, err = model.ParsePartial(payload)
			if err == nil && result.Transcript == lastPartial {
				continue
			}
		default:
			continue
		}
		if err != nil {
			return err
		}
		if result.Transcript == "" {
			continue
		}
		if !result.IsFinal {
			lastPartial = result.Transcript
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case r.resultCh <- []*model.Result{result}:
		}
	}
}
