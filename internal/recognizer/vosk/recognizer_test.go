package vosk

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	myvosk "github.com/uts/vosk-transcriber/internal/interfaces/vosk"
	"github.com/uts/vosk-transcriber/internal/recognizer/model"
)

func TestNewRecognizer(t *testing.T) {
	type args struct {
		recognizer myvosk.VoskRecognizer
		audioCh    <-chan []byte
		resultCh   chan<- []*model.Result
	}
	baseArgs := args{
		recognizer: &myvosk.VoskRecognizerMock{},
		audioCh:    make(chan []byte),
		resultCh:   make(chan []*model.Result),
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name:    "success",
			args:    baseArgs,
			wantErr: false,
		},
		{
			name: "no recognizer",
			args: func() args {
				a := baseArgs
				a.recognizer = nil
				return a
			}(),
			wantErr: true,
		},
		{
			name: "no audio channel",
			args: func() args {
				a := baseArgs
				a.audioCh = nil
				return a
			}(),
			wantErr: true,
		},
		{
			name: "no result channel",
			args: func() args {
				a := baseArgs
				a.resultCh = nil
				return a
			}(),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRecognizer(tt.args.recognizer, tt.args.audioCh, tt.args.resultCh)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRecognizer() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil {
				return
			}
			if got == nil {
				t.Errorf("NewRecognizer() = nil, want non-nil")
			}
		})
	}
}

func TestRecognizer_Start(t *testing.T) {
	ignoreRaw := cmpopts.IgnoreFields(model.Result{}, "Raw")

	t.Run("flushes final result when audio ends", func(t *testing.T) {
		waveforms := map[string]int{"hello": 0, "silence": 0, "world": 1}
		recognizer := &myvosk.VoskRecognizerMock{
			AcceptWaveformFunc: func(b []byte) int {
				return waveforms[string(b)]
			},
			PartialResultFunc: func() []byte {
				return []byte(`{"partial":"hello"}`)
			},
			ResultFunc: func() []byte {
				return []byte(`{"text":"hello world"}`)
			},
			FinalResultFunc: func() []byte {
				return []byte(`{"text":"again"}`)
			},
			FreeFunc: func() {},
		}
		audioCh := make(chan []byte, 3)
		resultCh := make(chan []*model.Result, 3)
		r := &Recognizer{
			recognizer: recognizer,
			audioCh:    audioCh,
			resultCh:   resultCh,
		}

		audioCh <- []byte("hello")
		audioCh <- []byte("world")
		close(audioCh)

		if err := r.Start(context.Background()); err != nil {
			t.Fatalf("Recognizer.Start() error = %v, want nil", err)
		}

		var got []*model.Result
		for results := range resultCh {
			got = append(got, results...)
		}
		want := []*model.Result{
			{Transcript: "hello", IsFinal: false},
			{Transcript: "hello world", IsFinal: true},
			{Transcript: "again", IsFinal: true},
		}
		if diff := cmp.Diff(got, want, ignoreRaw); diff != "" {
			t.Errorf("unexpected results (-got +want):\n%s", diff)
		}
		if got := len(recognizer.FreeCalls()); got != 1 {
			t.Errorf("Free() called %d times, want 1", got)
		}
	})

	t.Run("skips empty hypotheses", func(t *testing.T) {
		recognizer := &myvosk.VoskRecognizerMock{
			AcceptWaveformFunc: func(b []byte) int { return 0 },
			PartialResultFunc:  func() []byte { return []byte(`{"partial":""}`) },
			FinalResultFunc:    func() []byte { return []byte(`{"text":""}`) },
			FreeFunc:           func() {},
		}
		audioCh := make(chan []byte, 1)
		resultCh := make(chan []*model.Result, 1)
		r := &Recognizer{recognizer: recognizer, audioCh: audioCh, resultCh: resultCh}

		audioCh <- []byte("silence")
		close(audioCh)

		if err := r.Start(context.Background()); err != nil {
			t.Fatalf("Recognizer.Start() error = %v, want nil", err)
		}
		if results, ok := <-resultCh; ok {
			t.Errorf("unexpected results: %v", results)
		}
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())

		recognizer := &myvosk.VoskRecognizerMock{FreeFunc: func() {}}
		r := &Recognizer{
			recognizer: recognizer,
			audioCh:    make(chan []byte),
			resultCh:   make(chan []*model.Result),
		}

		var wg sync.WaitGroup
		wg.Add(1)
		var err error
		go func() {
			defer wg.Done()
			err = r.Start(ctx)
		}()

		cancel()
		wg.Wait()

		if !errors.Is(err, context.Canceled) {
			t.Errorf("Recognizer.Start() error = %v, want %v", err, context.Canceled)
		}
		if got := len(recognizer.FinalResultCalls()); got != 0 {
			t.Errorf("FinalResult() called %d times, want 0", got)
		}
	})

	t.Run("waveform error", func(t *testing.T) {
		recognizer := &myvosk.VoskRecognizerMock{
			AcceptWaveformFunc: func(b []byte) int { return -1 },
			FreeFunc:           func() {},
		}
		audioCh := make(chan []byte, 1)
		r := &Recognizer{recognizer: recognizer, audioCh: audioCh, resultCh: make(chan []*model.Result)}

		audioCh <- []byte("broken")

		if err := r.Start(context.Background()); err == nil {
			t.Error("Recognizer.Start() error = nil, want an error")
		}
		if got := len(recognizer.ResultCalls()); got != 0 {
			t.Errorf("Result() called %d times, want 0", got)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		recognizer := &myvosk.VoskRecognizerMock{
			AcceptWaveformFunc: func(b []byte) int { return 1 },
			ResultFunc:         func() []byte { return []byte(`{"text":`) },
			FreeFunc:           func() {},
		}
		audioCh := make(chan []byte, 1)
		r := &Recognizer{recognizer: recognizer, audioCh: audioCh, resultCh: make(chan []*model.Result)}

		audioCh <- []byte("broken")

		if err := r.Start(context.Background()); err == nil {
			t.Error("Recognizer.Start() error = nil, want an error")
		}
	})
}
