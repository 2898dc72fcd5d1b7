// Package session drives a single live transcription that can be started,
// stopped, saved and cleared from the outside, and streams its progress to
// subscribers.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/uts/vosk-transcriber/internal/metrics"
	"github.com/uts/vosk-transcriber/internal/recognizer/model"
	"github.com/uts/vosk-transcriber/internal/store"
	"github.com/uts/vosk-transcriber/internal/transcription"
)

var (
	ErrAlreadyRunning = errors.New("session is already running")
	ErrNotRunning     = errors.New("session is not running")
	ErrNothingToSave  = errors.New("there is no transcription to save")
	ErrClosed         = errors.New("session is closed")
)

type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
)

type Status string

const (
	StatusIdle       Status = "Idle"
	StatusListening  Status = "Listening..."
	StatusProcessing Status = "Processing..."
	StatusCompleted  Status = "Completed"
	StatusError      Status = "Error"
)

// Command is a runnable, cancellable transcription.
//
//go:generate moq -rm -out session_mock.go . Command Runner
type Command interface {
	Run(ctx context.Context, audioFile string, listener transcription.Listener) error
	Cancel()
}

var _ Command = (*transcription.Command)(nil)

// Runner runs work in the background.
type Runner interface {
	Go(name string, fn func(ctx context.Context)) error
}

// CommandFactory builds a fresh live command for every run of the named
// session.
type CommandFactory func(name string) (Command, error)

// Snapshot is the externally visible state of a session.
type Snapshot struct {
	State      State  `json:"state"`
	Status     Status `json:"status"`
	Name       string `json:"name"`
	Transcript string `json:"transcript"`
	Error      string `json:"error,omitempty"`
}

var _ transcription.Listener = (*Session)(nil)

type Session struct {
	runner      Runner
	newCommand  CommandFactory
	saver       store.Saver
	defaultName string

	mu         sync.Mutex
	state      State
	status     Status
	name       string
	transcript []string
	lastErr    error
	cmd        Command
	runID      uint64
	closed     bool

	subs    map[int]chan Event
	nextSub int
}

func New(runner Runner, newCommand CommandFactory, saver store.Saver, defaultName string) (*Session, error) {
	if runner == nil {
		return nil, errors.New("runner must be specified")
	}
	if newCommand == nil {
		return nil, errors.New("command factory must be specified")
	}
	if saver == nil {
		return nil, errors.New("saver must be specified")
	}
	if defaultName == "" {
		defaultName = transcription.DefaultSessionName
	}
	return &Session{
		runner:      runner,
		newCommand:  newCommand,
		saver:       saver,
		defaultName: defaultName,
		state:       StateStopped,
		status:      StatusIdle,
		name:        defaultName,
		subs:        map[int]chan Event{},
	}, nil
}

// Start begins a live transcription under name, or the default name when
// name is blank.
func (s *Session) Start(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.state == StateRunning {
		return ErrAlreadyRunning
	}

	if name = strings.TrimSpace(name); name == "" {
		name = s.defaultName
	}
	cmd, err := s.newCommand(name)
	if err != nil {
		return fmt.Errorf("failed to create live command: %w", err)
	}

	s.runID++
	r := &run{session: s, id: s.runID}
	err = s.runner.Go("live-session", func(ctx context.Context) {
		if err := cmd.Run(ctx, "", r); err != nil {
			slog.Debug("live session run ended with error", "component", "session", "error", err)
		}
		s.finished(r.id)
	})
	if err != nil {
		return fmt.Errorf("failed to start live session: %w", err)
	}

	s.cmd = cmd
	s.name = name
	s.lastErr = nil
	s.state = StateRunning
	metrics.SetSessionRunning(true)
	s.setStatusLocked(StatusListening)
	slog.Info("live session started", "component", "session", "name", name)
	return nil
}

// Stop cancels the running transcription. Audio already captured is still
// recognized and its final text still reaches the transcript.
func (s *Session) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRunning {
		return ErrNotRunning
	}
	s.stopLocked()
	s.setStatusLocked(StatusProcessing)
	slog.Info("live session stopped", "component", "session", "name", s.name)
	return nil
}

func (s *Session) stopLocked() {
	if s.cmd != nil {
		s.cmd.Cancel()
	}
	s.state = StateStopped
	metrics.SetSessionRunning(false)
}

// Save writes the transcript under the session name.
func (s *Session) Save() (*store.Saved, error) {
	s.mu.Lock()
	text := strings.Join(s.transcript, " ")
	name := s.name
	s.mu.Unlock()

	if strings.TrimSpace(text) == "" {
		return nil, ErrNothingToSave
	}

	data, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode transcript: %w", err)
	}
	saved, err := s.saver.SaveTranscription(name, data)
	if err != nil {
		return nil, fmt.Errorf("failed to save transcript: %w", err)
	}

	s.mu.Lock()
	s.broadcastLocked(Event{Type: EventSaved, Text: saved.TextPath})
	s.mu.Unlock()
	return saved, nil
}

// Clear empties the transcript.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transcript = nil
	s.broadcastLocked(Event{Type: EventCleared})
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:      s.state,
		Status:     s.status,
		Name:       s.name,
		Transcript: strings.Join(s.transcript, " "),
	}
	if s.lastErr != nil {
		snap.Error = s.lastErr.Error()
	}
	return snap
}

// Close stops a running transcription and closes every subscription.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	if s.state == StateRunning {
		s.stopLocked()
	}
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
}

func (s *Session) OnPartial(result *model.Result) {
	s.partial(result)
}

func (s *Session) OnFinal(result *model.Result) {
	s.final(result)
}

func (s *Session) OnError(err error) {
	s.fail(s.currentRun(), err)
}

func (s *Session) OnComplete() {
	s.complete(s.currentRun())
}

func (s *Session) currentRun() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runID
}

func (s *Session) partial(result *model.Result) {
	text := strings.TrimSpace(result.Transcript)
	if text == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.broadcastLocked(Event{Type: EventPartial, Text: text})
}

func (s *Session) final(result *model.Result) {
	text := strings.TrimSpace(result.Transcript)
	if text == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = append(s.transcript, text)
	s.broadcastLocked(Event{Type: EventFinal, Text: text})
}

// fail records err. Errors of a superseded run are only logged.
func (s *Session) fail(id uint64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != s.runID {
		slog.Warn("error from a previous live session", "component", "session", "error", err)
		return
	}
	s.lastErr = err
	if s.state == StateRunning {
		s.stopLocked()
	}
	s.setStatusLocked(StatusError)
	s.broadcastLocked(Event{Type: EventError, Text: err.Error()})
}

func (s *Session) complete(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != s.runID {
		return
	}
	s.setStatusLocked(StatusCompleted)
}

// finished is called when the run goroutine returns, whatever the outcome.
func (s *Session) finished(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != s.runID {
		return
	}
	s.cmd = nil
	if s.state == StateRunning {
		// The capture ended without being stopped.
		s.state = StateStopped
		metrics.SetSessionRunning(false)
		s.broadcastLocked(s.statusEventLocked())
	}
}

func (s *Session) setStatusLocked(status Status) {
	s.status = status
	s.broadcastLocked(s.statusEventLocked())
}

func (s *Session) statusEventLocked() Event {
	return Event{Type: EventStatus, State: s.state, Status: s.status}
}

// run forwards the events of one transcription to its session.
type run struct {
	session *Session
	id      uint64
}

var _ transcription.Listener = (*run)(nil)

func (r *run) OnPartial(result *model.Result) { r.session.partial(result) }
func (r *run) OnFinal(result *model.Result)   { r.session.final(result) }
func (r *run) OnError(err error)              { r.session.fail(r.id, err) }
func (r *run) OnComplete()                    { r.session.complete(r.id) }
