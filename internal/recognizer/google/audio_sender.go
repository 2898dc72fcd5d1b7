package google

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/speech/apiv2/speechpb"
)

//go:generate moq -rm -out audio_sender_mock.go . AudioSenderInterface
type AudioSenderInterface interface {
	Start(ctx context.Context) error
}

var _ AudioSenderInterface = (*AudioSender)(nil)

// AudioSender writes audio chunks to the current stream and replaces the
// stream every reconnectInterval. Every stream it opens is handed to the
// receiver in order; receiveStreamCh is closed once the last one is
// half-closed.
type AudioSender struct {
	supplier          StreamSupplierInterface
	audioCh           <-chan []byte
	receiveStreamCh   chan<- speechpb.Speech_StreamingRecognizeClient
	reconnectInterval time.Duration
}

func NewAudioSender(
	supplier StreamSupplierInterface,
	audioCh <-chan []byte,
	receiveStreamCh chan<- speechpb.Speech_StreamingRecognizeClient,
	reconnectInterval time.Duration,
) *AudioSender {
	return &AudioSender{
		supplier:          supplier,
		audioCh:           audioCh,
		receiveStreamCh:   receiveStreamCh,
		reconnectInterval: reconnectInterval,
	}
}

func (s *AudioSender) Start(ctx context.Context) error {
	slog.Debug("AudioSender: start")
	defer close(s.receiveStreamCh)

	stream, err := s.supply(ctx)
	if err != nil {
		return err
	}

	timer := time.NewTimer(s.reconnectInterval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			slog.Debug("AudioSender: reconnecting")

			newStream, err := s.supply(ctx)
			if err != nil {
				return err
			}
			if err := stream.CloseSend(); err != nil {
				return fmt.Errorf("failed to close send direction of stream on reconnect: %w", err)
			}
			stream = newStream
			timer.Reset(s.reconnectInterval)
		case audio, ok := <-s.audioCh:
			if !ok {
				slog.Debug("AudioSender: audio channel closed")
				if err := stream.CloseSend(); err != nil {
					return fmt.Errorf("failed to close send direction of stream on EOF: %w", err)
				}
				return nil
			}

			if err := stream.Send(&speechpb.StreamingRecognizeRequest{
				StreamingRequest: &speechpb.StreamingRecognizeRequest_Audio{
					Audio: audio,
				},
			}); err != nil {
				return fmt.Errorf("failed to send audio data: %w", err)
			}
		}
	}
}

func (s *AudioSender) supply(ctx context.Context) (speechpb.Speech_StreamingRecognizeClient, error) {
	stream, err := s.supplier.Supply(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to supply stream: %w", err)
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case s.receiveStreamCh <- stream:
	}
	return stream, nil
}
