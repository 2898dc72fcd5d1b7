// Package store persists transcriptions as a raw JSON document and a plain
// text file sharing the same session name and timestamp.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/uts/vosk-transcriber/internal/file"
	"github.com/uts/vosk-transcriber/internal/recognizer/model"
)

const (
	timestampLayout   = "2006-01-02_15-04-05"
	defaultName       = "session"
	maxSessionNameLen = 50
)

var (
	invalidNameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
)

// Saved describes the files written for one transcription.
type Saved struct {
	SessionName string
	JSONPath    string
	TextPath    string
	Text        string
	CreatedAt   time.Time
}

//go:generate moq -rm -out store_mock.go . Saver
type Saver interface {
	SaveTranscription(sessionName string, voskJSON []byte) (*Saved, error)
}

var _ Saver = (*Store)(nil)

type Store struct {
	tempDir           string
	transcriptionsDir string
	now               func() time.Time
}

func New(tempDir, transcriptionsDir string) (*Store, error) {
	if tempDir == "" {
		return nil, errors.New("temp directory must be specified")
	}
	if transcriptionsDir == "" {
		return nil, errors.New("transcriptions directory must be specified")
	}
	return &Store{
		tempDir:           tempDir,
		transcriptionsDir: transcriptionsDir,
		now:               time.Now,
	}, nil
}

// SaveTranscription writes voskJSON to <temp>/<name>_<ts>.json and the text it
// carries to <transcriptions>/<name>_<ts>.txt.
func (s *Store) SaveTranscription(sessionName string, voskJSON []byte) (*Saved, error) {
	for _, dir := range []string{s.tempDir, s.transcriptionsDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	createdAt := s.now()
	base := SanitizeSessionName(sessionName) + "_" + createdAt.Format(timestampLayout)

	jsonPath := filepath.Join(s.tempDir, base+".json")
	if err := file.WriteAtomic(jsonPath, voskJSON, 0o644); err != nil {
		return nil, fmt.Errorf("failed to save json: %w", err)
	}
	slog.Info("json saved", "component", "store", "path", jsonPath)

	text := ExtractText(voskJSON)
	textPath := filepath.Join(s.transcriptionsDir, base+".txt")
	if err := file.WriteAtomic(textPath, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("failed to save transcription: %w", err)
	}
	slog.Info("transcription saved", "component", "store", "path", textPath)

	return &Saved{
		SessionName: sessionName,
		JSONPath:    jsonPath,
		TextPath:    textPath,
		Text:        text,
		CreatedAt:   createdAt,
	}, nil
}

// ExtractText returns the trimmed "text" field of a Vosk result. A document
// without the field yields "", and input that is not JSON is returned as is.
func ExtractText(voskJSON []byte) string {
	var doc struct {
		Text *string `json:"text"`
	}
	if err := json.Unmarshal(voskJSON, &doc); err != nil {
		slog.Warn("failed to parse vosk json", "component", "store", "error", err)
		return string(voskJSON)
	}
	if doc.Text == nil {
		return ""
	}
	return strings.TrimSpace(*doc.Text)
}

// SanitizeSessionName turns a user supplied session name into a file name
// fragment.
func SanitizeSessionName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return defaultName
	}

	name = invalidNameChars.ReplaceAllString(name, "_")
	name = whitespaceRuns.ReplaceAllString(name, "_")

	if r := []rune(name); len(r) > maxSessionNameLen {
		name = string(r[:maxSessionNameLen])
	}
	return name
}

// MergeFinals combines the final hypotheses of one run into a single Vosk
// result document.
func MergeFinals(results []*model.Result) []byte {
	texts := make([]string, 0, len(results))
	var words []model.Word
	for _, r := range results {
		if r == nil || !r.IsFinal {
			continue
		}
		if t := strings.TrimSpace(r.Transcript); t != "" {
			texts = append(texts, t)
		}
		words = append(words, r.Words...)
	}

	doc := struct {
		Result []model.Word `json:"result,omitempty"`
		Text   string       `json:"text"`
	}{
		Result: words,
		Text:   strings.Join(texts, " "),
	}
	// Marshalling strings and floats cannot fail.
	b, _ := json.Marshal(doc)
	return b
}
