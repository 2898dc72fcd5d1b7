package google

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/speech/apiv2/speechpb"

	myspeech "github.com/uts/vosk-transcriber/internal/interfaces/speech"
)

//go:generate moq -rm -out stream_supplier_mock.go . StreamSupplierInterface
type StreamSupplierInterface interface {
	// Supply opens a stream and sends its configuration request.
	Supply(ctx context.Context) (speechpb.Speech_StreamingRecognizeClient, error)
}

var _ StreamSupplierInterface = (*StreamSupplier)(nil)

type StreamSupplier struct {
	client myspeech.Client

	// recognizerFullName is the full name of the recognizer.
	recognizerFullName string
	config             *speechpb.StreamingRecognitionConfig
}

func NewStreamSupplier(client myspeech.Client, opts Options) *StreamSupplier {
	return &StreamSupplier{
		client:             client,
		recognizerFullName: RecognizerFullname(opts.ProjectID, opts.Location),
		config:             streamingConfig(opts),
	}
}

// RecognizerFullname names the implicit "_" recognizer, which needs no
// provisioning and takes its whole configuration from the request.
func RecognizerFullname(projectID, location string) string {
	return fmt.Sprintf("projects/%s/locations/%s/recognizers/_", projectID, location)
}

func streamingConfig(opts Options) *speechpb.StreamingRecognitionConfig {
	config := &speechpb.StreamingRecognitionConfig{
		Config: &speechpb.RecognitionConfig{
			DecodingConfig: &speechpb.RecognitionConfig_ExplicitDecodingConfig{
				ExplicitDecodingConfig: &speechpb.ExplicitDecodingConfig{
					Encoding:          speechpb.ExplicitDecodingConfig_LINEAR16,
					SampleRateHertz:   int32(opts.SampleRate),
					AudioChannelCount: int32(opts.Channels),
				},
			},
			Model:         opts.Model,
			LanguageCodes: []string{opts.Language},
			Features: &speechpb.RecognitionFeatures{
				EnableWordTimeOffsets:      opts.Words,
				EnableAutomaticPunctuation: true,
			},
		},
		StreamingFeatures: &speechpb.StreamingRecognitionFeatures{
			InterimResults: true,
		},
	}
	if opts.PhraseSet != nil {
		config.Config.Adaptation = opts.PhraseSet.toProto()
	}
	return config
}

func (s *StreamSupplier) Supply(ctx context.Context) (speechpb.Speech_StreamingRecognizeClient, error) {
	stream, err := s.client.StreamingRecognize(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create stream: %w", err)
	}

	if err := stream.Send(&speechpb.StreamingRecognizeRequest{
		Recognizer: s.recognizerFullName,
		StreamingRequest: &speechpb.StreamingRecognizeRequest_StreamingConfig{
			StreamingConfig: s.config,
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to send initial request: %w", err)
	}

	slog.Debug("StreamSupplier: stream opened")
	return stream, nil
}
