package recognizer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

//go:generate moq -rm -out audio_reader_mock.go . AudioReaderInterface
type AudioReaderInterface interface {
	Start(ctx context.Context) error
}

var _ AudioReaderInterface = &AudioReader{}

// AudioReader splits an audio source into fixed-size chunks. It owns audioCh
// and closes it when the source is exhausted, which tells the recognizer core
// to flush its final result.
type AudioReader struct {
	reader     io.Reader
	audioCh    chan<- []byte
	bufferSize int
	// activityCh, when set, receives a signal for every chunk read.
	activityCh chan<- struct{}
	// onRead, when set, is called with the size of every chunk read.
	onRead func(n int)
}

func NewAudioReader(
	reader io.Reader,
	audioCh chan<- []byte,
	bufferSize int,
) *AudioReader {
	return &AudioReader{
		reader:     reader,
		audioCh:    audioCh,
		bufferSize: bufferSize,
	}
}

// WithActivity makes the reader signal ch after each chunk.
func (r *AudioReader) WithActivity(ch chan<- struct{}) *AudioReader {
	r.activityCh = ch
	return r
}

// WithReadHook makes the reader report the size of each chunk to fn.
func (r *AudioReader) WithReadHook(fn func(n int)) *AudioReader {
	r.onRead = fn
	return r
}

func (r *AudioReader) Start(ctx context.Context) error {
	slog.Debug("AudioReader: start")
	defer close(r.audioCh)

	buf := make([]byte, r.bufferSize)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, err := io.ReadFull(r.reader, buf)
		if n > 0 {
			if sendErr := r.send(ctx, buf[:n]); sendErr != nil {
				return sendErr
			}
		}
		switch {
		case err == nil:
			continue
		case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			slog.Debug("AudioReader: EOF received")
			return nil
		default:
			return fmt.Errorf("failed to read audio: %w", err)
		}
	}
}

func (r *AudioReader) send(ctx context.Context, chunk []byte) error {
	// Send copied buffer to audio channel.
	audio := append(make([]byte, 0, len(chunk)), chunk...)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case r.audioCh <- audio:
	}

	if r.onRead != nil {
		r.onRead(len(audio))
	}
	if r.activityCh != nil {
		select {
		case r.activityCh <- struct{}{}:
		default:
		}
	}
	return nil
}
