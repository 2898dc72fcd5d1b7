package history

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/uts/vosk-transcriber/internal/store"
)

const recordTimeout = 5 * time.Second

var _ store.Saver = (*RecordingSaver)(nil)

// RecordingSaver saves through next and then records the result in the
// history. A history failure is logged and does not fail the save.
type RecordingSaver struct {
	next     store.Saver
	recorder Recorder
	source   Source
}

func NewRecordingSaver(next store.Saver, recorder Recorder, source Source) (*RecordingSaver, error) {
	if next == nil {
		return nil, errors.New("saver must be specified")
	}
	if recorder == nil {
		return nil, errors.New("recorder must be specified")
	}
	return &RecordingSaver{next: next, recorder: recorder, source: source}, nil
}

func (s *RecordingSaver) SaveTranscription(sessionName string, voskJSON []byte) (*store.Saved, error) {
	saved, err := s.next.SaveTranscription(sessionName, voskJSON)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
	defer cancel()
	if _, err := s.recorder.Record(ctx, Entry{
		SessionName: saved.SessionName,
		Source:      s.source,
		TextPath:    saved.TextPath,
		JSONPath:    saved.JSONPath,
		Text:        saved.Text,
		CreatedAt:   saved.CreatedAt,
	}); err != nil {
		slog.Warn("failed to record transcription history", "component", "history", "error", err)
	}
	return saved, nil
}
