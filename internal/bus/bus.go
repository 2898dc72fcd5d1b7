// Package bus publishes transcripts to NATS so that other processes can
// follow a transcription as it happens.
package bus

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/uts/vosk-transcriber/internal/recognizer/model"
	"github.com/uts/vosk-transcriber/internal/transcription"
)

const (
	SubjectPartial = "partial"
	SubjectFinal   = "final"
)

//go:generate moq -rm -out bus_mock.go . Publisher
type Publisher interface {
	Publish(subject string, data []byte) error
}

var _ Publisher = (*nats.Conn)(nil)

// Connect dials the NATS server at url.
func Connect(url string, timeout time.Duration) (*nats.Conn, error) {
	if url == "" {
		return nil, errors.New("nats url must be specified")
	}
	conn, err := nats.Connect(url,
		nats.Name("vosk-transcriber"),
		nats.Timeout(timeout),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("disconnected from NATS", "component", "bus", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			slog.Info("reconnected to NATS", "component", "bus", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}
	slog.Info("connected to NATS", "component", "bus", "url", url)
	return conn, nil
}

// Transcript is the payload of every published message.
type Transcript struct {
	Session   string       `json:"session"`
	Text      string       `json:"text"`
	Final     bool         `json:"final"`
	Words     []model.Word `json:"words,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

var _ transcription.Listener = (*Listener)(nil)

// Listener publishes partial and final transcripts to <prefix>.partial and
// <prefix>.final. Publish failures are logged and never interrupt the
// transcription.
type Listener struct {
	publisher Publisher
	prefix    string
	session   string
	clock     func() time.Time
}

func NewListener(publisher Publisher, prefix, session string) (*Listener, error) {
	if publisher == nil {
		return nil, errors.New("publisher must be specified")
	}
	prefix = strings.Trim(prefix, ".")
	if prefix == "" {
		return nil, errors.New("subject prefix must be specified")
	}
	return &Listener{
		publisher: publisher,
		prefix:    prefix,
		session:   session,
		clock:     time.Now,
	}, nil
}

func (l *Listener) Subject(kind string) string {
	return l.prefix + "." + kind
}

func (l *Listener) OnPartial(result *model.Result) {
	l.publish(SubjectPartial, result)
}

func (l *Listener) OnFinal(result *model.Result) {
	l.publish(SubjectFinal, result)
}

func (l *Listener) OnError(error) {}

func (l *Listener) OnComplete() {}

func (l *Listener) publish(kind string, result *model.Result) {
	text := strings.TrimSpace(result.Transcript)
	if text == "" {
		return
	}
	data, err := json.Marshal(Transcript{
		Session:   l.session,
		Text:      text,
		Final:     result.IsFinal,
		Words:     result.Words,
		Timestamp: l.clock().UTC(),
	})
	if err != nil {
		slog.Warn("failed to marshal transcript", "component", "bus", "error", err)
		return
	}
	if err := l.publisher.Publish(l.Subject(kind), data); err != nil {
		slog.Warn("failed to publish transcript", "component", "bus", "subject", l.Subject(kind), "error", err)
	}
}
