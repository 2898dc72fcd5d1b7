package model

import "context"

// RecognizerCoreInterface consumes audio chunks and publishes recognition
// results. When the audio channel is closed the core flushes the final
// hypothesis, closes its result channel and returns nil. Cancelling ctx
// aborts without a flush.
//
//go:generate moq -rm -out recognizer_mock.go . RecognizerCoreInterface
type RecognizerCoreInterface interface {
	Start(ctx context.Context) error
}

// Engine builds recognizer cores on top of a shared, already loaded model.
//
//go:generate moq -rm -out engine_mock.go . Engine
type Engine interface {
	Name() string
	NewCore(audioCh <-chan []byte, resultCh chan<- []*Result) (RecognizerCoreInterface, error)
	Close() error
}
