package google

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"cloud.google.com/go/speech/apiv2/speechpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//go:generate moq -rm -out response_receiver_mock.go . ResponseReceiverInterface
type ResponseReceiverInterface interface {
	Start(ctx context.Context) error
}

var _ ResponseReceiverInterface = (*ResponseReceiver)(nil)

// ResponseReceiver reads every stream handed over by the sender until EOF.
// A nil response is sent after each stream ends. responseCh is closed when
// the sender has no more streams.
type ResponseReceiver struct {
	responseCh      chan<- *speechpb.StreamingRecognizeResponse
	receiveStreamCh <-chan speechpb.Speech_StreamingRecognizeClient
}

func NewResponseReceiver(
	responseCh chan<- *speechpb.StreamingRecognizeResponse,
	receiveStreamCh <-chan speechpb.Speech_StreamingRecognizeClient,
) *ResponseReceiver {
	return &ResponseReceiver{
		responseCh:      responseCh,
		receiveStreamCh: receiveStreamCh,
	}
}

func (r *ResponseReceiver) Start(ctx context.Context) error {
	slog.Debug("ResponseReceiver: start")
	defer close(r.responseCh)

	for {
		var stream speechpb.Speech_StreamingRecognizeClient
		select {
		case <-ctx.Done():
			return ctx.Err()
		case s, ok := <-r.receiveStreamCh:
			if !ok {
				return nil
			}
			stream = s
		}

		if err := r.drain(ctx, stream); err != nil {
			return err
		}
		if err := r.send(ctx, nil); err != nil {
			return err
		}
		slog.Debug("ResponseReceiver: stream finished")
	}
}

func (r *ResponseReceiver) drain(ctx context.Context, stream speechpb.Speech_StreamingRecognizeClient) error {
	for {
		resp, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			if status.Code(err) == codes.Canceled && ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("failed to receive response: %w", err)
		}
		if err := r.send(ctx, resp); err != nil {
			return err
		}
	}
}

func (r *ResponseReceiver) send(ctx context.Context, resp *speechpb.StreamingRecognizeResponse) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case r.responseCh <- resp:
		return nil
	}
}
