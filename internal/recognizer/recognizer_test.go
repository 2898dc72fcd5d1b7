package recognizer

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/uts/vosk-transcriber/internal/recognizer/model"
	"github.com/uts/vosk-transcriber/internal/testutil"
)

// echoEngine returns an engine whose cores emit a partial for every chunk and
// a final with the concatenated audio when the audio channel is closed.
func echoEngine() *model.EngineMock {
	return &model.EngineMock{
		NameFunc: func() string { return "echo" },
		NewCoreFunc: func(audioCh <-chan []byte, resultCh chan<- []*model.Result) (model.RecognizerCoreInterface, error) {
			return &model.RecognizerCoreInterfaceMock{
				StartFunc: func(ctx context.Context) error {
					defer close(resultCh)
					var all []string
					for {
						select {
						case <-ctx.Done():
							return ctx.Err()
						case audio, ok := <-audioCh:
							if !ok {
								resultCh <- []*model.Result{model.NewResult(strings.Join(all, " "), true, nil)}
								return nil
							}
							all = append(all, string(audio))
							resultCh <- []*model.Result{model.NewResult(string(audio), false, nil)}
						}
					}
				},
			}, nil
		},
	}
}

func TestNew(t *testing.T) {
	handler := &ResultHandlerMock{}
	tests := []struct {
		name    string
		engine  model.Engine
		source  io.Reader
		handler ResultHandler
		opts    Options
		wantErr bool
	}{
		{name: "success", engine: echoEngine(), source: &bytes.Buffer{}, handler: handler, opts: Options{ChunkSize: 4}},
		{name: "no engine", source: &bytes.Buffer{}, handler: handler, opts: Options{ChunkSize: 4}, wantErr: true},
		{name: "no source", engine: echoEngine(), handler: handler, opts: Options{ChunkSize: 4}, wantErr: true},
		{name: "no handler", engine: echoEngine(), source: &bytes.Buffer{}, opts: Options{ChunkSize: 4}, wantErr: true},
		{name: "zero chunk size", engine: echoEngine(), source: &bytes.Buffer{}, handler: handler, wantErr: true},
		{
			name: "engine failure",
			engine: &model.EngineMock{
				NameFunc: func() string { return "broken" },
				NewCoreFunc: func(<-chan []byte, chan<- []*model.Result) (model.RecognizerCoreInterface, error) {
					return nil, errors.New("no model")
				},
			},
			source:  &bytes.Buffer{},
			handler: handler,
			opts:    Options{ChunkSize: 4},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.engine, tt.source, tt.handler, tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPipeline_Run(t *testing.T) {
	t.Run("dispatches results in order", func(t *testing.T) {
		var got []string
		handler := &ResultHandlerMock{
			OnPartialFunc: func(r *model.Result) { got = append(got, "partial:"+r.Transcript) },
			OnFinalFunc:   func(r *model.Result) { got = append(got, "final:"+r.Transcript) },
		}
		var read int
		p, err := New(echoEngine(), strings.NewReader("aaaabbbbcc"), handler, Options{
			ChunkSize: 4,
			OnRead:    func(n int) { read += n },
		})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		if err := p.Run(context.Background()); err != nil {
			t.Fatalf("Pipeline.Run() error = %v", err)
		}

		want := []string{"partial:aaaa", "partial:bbbb", "partial:cc", "final:aaaa bbbb cc"}
		if diff := cmp.Diff(got, want); diff != "" {
			t.Errorf("unexpected results (-got +want):\n%s", diff)
		}
		if read != 10 {
			t.Errorf("read bytes = %d, want 10", read)
		}
	})

	t.Run("monitor stops with source", func(t *testing.T) {
		handler := &ResultHandlerMock{
			OnPartialFunc: func(*model.Result) {},
			OnFinalFunc:   func(*model.Result) {},
		}
		p, err := New(echoEngine(), strings.NewReader("aaaa"), handler, Options{
			ChunkSize:         4,
			InactivityTimeout: time.Hour,
		})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		if err := p.Run(context.Background()); err != nil {
			t.Errorf("Pipeline.Run() error = %v, want nil", err)
		}
	})

	t.Run("inactive source", func(t *testing.T) {
		handler := &ResultHandlerMock{
			OnPartialFunc: func(*model.Result) {},
			OnFinalFunc:   func(*model.Result) {},
		}
		// never produces data
		source := testutil.NewChannelReader()
		p, err := New(echoEngine(), source, handler, Options{
			ChunkSize:         4,
			InactivityTimeout: 10 * time.Millisecond,
		})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		done := make(chan error, 1)
		go func() { done <- p.Run(context.Background()) }()

		// the reader stays blocked until the source reports EOF.
		select {
		case <-time.After(50 * time.Millisecond):
		case err := <-done:
			t.Fatalf("Pipeline.Run() returned early: %v", err)
		}
		close(source.EOFCh)

		if err := <-done; !errors.Is(err, ErrInactive) {
			t.Errorf("Pipeline.Run() error = %v, want %v", err, ErrInactive)
		}
	})

	t.Run("read error", func(t *testing.T) {
		handler := &ResultHandlerMock{
			OnPartialFunc: func(*model.Result) {},
			OnFinalFunc:   func(*model.Result) {},
		}
		wantErr := errors.New("device lost")
		source := &testutil.IOReaderMock{
			ReadFunc: func([]byte) (int, error) { return 0, wantErr },
		}
		p, err := New(echoEngine(), source, handler, Options{ChunkSize: 4})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}

		if err := p.Run(context.Background()); !errors.Is(err, wantErr) {
			t.Errorf("Pipeline.Run() error = %v, want %v", err, wantErr)
		}
	})
}
