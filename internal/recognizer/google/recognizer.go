package google

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/speech/apiv2/speechpb"
	"golang.org/x/sync/errgroup"

	"github.com/uts/vosk-transcriber/internal/recognizer/model"
)

var _ model.RecognizerCoreInterface = (*Recognizer)(nil)

type Recognizer struct {
	audioSender       AudioSenderInterface
	responseReceiver  ResponseReceiverInterface
	responseProcessor ResponseProcessorInterface

	resultCh chan<- []*model.Result
}

func NewRecognizer(
	supplier StreamSupplierInterface,
	audioCh <-chan []byte,
	resultCh chan<- []*model.Result,
	reconnectInterval time.Duration,
) (*Recognizer, error) {
	if supplier == nil {
		return nil, errors.New("stream supplier must be specified")
	}
	if audioCh == nil {
		return nil, errors.New("audio channel must be specified")
	}
	if resultCh == nil {
		return nil, errors.New("result channel must be specified")
	}
	if reconnectInterval < time.Minute {
		return nil, errors.New("reconnect interval must be greater than or equal to 1 minute")
	}

	receiveStreamCh := make(chan speechpb.Speech_StreamingRecognizeClient, 1)
	responseCh := make(chan *speechpb.StreamingRecognizeResponse, 1)

	return &Recognizer{
		audioSender:       NewAudioSender(supplier, audioCh, receiveStreamCh, reconnectInterval),
		responseReceiver:  NewResponseReceiver(responseCh, receiveStreamCh),
		responseProcessor: NewResponseProcessor(responseCh, resultCh),
		resultCh:          resultCh,
	}, nil
}

func (r *Recognizer) Start(ctx context.Context) error {
	defer close(r.resultCh)

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := r.audioSender.Start(egCtx); err != nil {
			return fmt.Errorf("error occurred in audio sender: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if err := r.responseReceiver.Start(egCtx); err != nil {
			return fmt.Errorf("error occurred in response receiver: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		if err := r.responseProcessor.Start(egCtx); err != nil {
			return fmt.Errorf("error occurred in response processor: %w", err)
		}
		return nil
	})

	err := eg.Wait()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
