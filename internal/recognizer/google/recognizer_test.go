package google

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/uts/vosk-transcriber/internal/recognizer/model"
)

func TestNewRecognizer(t *testing.T) {
	type args struct {
		supplier          StreamSupplierInterface
		audioCh           <-chan []byte
		resultCh          chan<- []*model.Result
		reconnectInterval time.Duration
	}
	baseArgs := args{
		supplier:          &StreamSupplierInterfaceMock{},
		audioCh:           make(chan []byte),
		resultCh:          make(chan []*model.Result),
		reconnectInterval: time.Minute,
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name:    "valid",
			args:    baseArgs,
			wantErr: false,
		},
		{
			name: "nil supplier",
			args: func() args {
				a := baseArgs
				a.supplier = nil
				return a
			}(),
			wantErr: true,
		},
		{
			name: "nil audio channel",
			args: func() args {
				a := baseArgs
				a.audioCh = nil
				return a
			}(),
			wantErr: true,
		},
		{
			name: "nil result channel",
			args: func() args {
				a := baseArgs
				a.resultCh = nil
				return a
			}(),
			wantErr: true,
		},
		{
			name: "reconnect interval less than 1 minute",
			args: func() args {
				a := baseArgs
				a.reconnectInterval = time.Second
				return a
			}(),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRecognizer(tt.args.supplier, tt.args.audioCh, tt.args.resultCh, tt.args.reconnectInterval)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRecognizer() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRecognizer_Start(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		resultCh := make(chan []*model.Result)
		ok := func(ctx context.Context) error { return nil }
		r := &Recognizer{
			audioSender:       &AudioSenderInterfaceMock{StartFunc: ok},
			responseReceiver:  &ResponseReceiverInterfaceMock{StartFunc: ok},
			responseProcessor: &ResponseProcessorInterfaceMock{StartFunc: ok},
			resultCh:          resultCh,
		}

		if err := r.Start(context.Background()); err != nil {
			t.Errorf("Recognizer.Start() error = %v, want nil", err)
		}
		if _, open := <-resultCh; open {
			t.Error("result channel is not closed")
		}
	})

	t.Run("component error cancels the others", func(t *testing.T) {
		errSend := errors.New("send failed")
		waitCancel := func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}
		r := &Recognizer{
			audioSender:       &AudioSenderInterfaceMock{StartFunc: func(ctx context.Context) error { return errSend }},
			responseReceiver:  &ResponseReceiverInterfaceMock{StartFunc: waitCancel},
			responseProcessor: &ResponseProcessorInterfaceMock{StartFunc: waitCancel},
			resultCh:          make(chan []*model.Result),
		}

		if err := r.Start(context.Background()); !errors.Is(err, errSend) {
			t.Errorf("Recognizer.Start() error = %v, want %v", err, errSend)
		}
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		waitCancel := func(ctx context.Context) error {
			<-ctx.Done()
			return errors.New("stream closed")
		}
		r := &Recognizer{
			audioSender:       &AudioSenderInterfaceMock{StartFunc: waitCancel},
			responseReceiver:  &ResponseReceiverInterfaceMock{StartFunc: waitCancel},
			responseProcessor: &ResponseProcessorInterfaceMock{StartFunc: waitCancel},
			resultCh:          make(chan []*model.Result),
		}

		if err := r.Start(ctx); !errors.Is(err, context.Canceled) {
			t.Errorf("Recognizer.Start() error = %v, want %v", err, context.Canceled)
		}
	})
}
