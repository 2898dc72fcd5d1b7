package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/uts/vosk-transcriber/internal/recognizer/model"
	"github.com/uts/vosk-transcriber/internal/store"
	"github.com/uts/vosk-transcriber/internal/transcription"
)

func asyncRunner() *RunnerMock {
	return &RunnerMock{
		GoFunc: func(name string, fn func(ctx context.Context)) error {
			go fn(context.Background())
			return nil
		},
	}
}

// liveCommand reports a partial, waits to be cancelled and then flushes
// finals before completing, like a live capture does.
func liveCommand(finals ...string) *CommandMock {
	cancelled := make(chan struct{})
	var once sync.Once
	return &CommandMock{
		RunFunc: func(ctx context.Context, audioFile string, listener transcription.Listener) error {
			listener.OnPartial(model.NewResult("hel", false, nil))
			<-cancelled
			for _, f := range finals {
				listener.OnFinal(model.NewResult(f, true, nil))
			}
			listener.OnComplete()
			return nil
		},
		CancelFunc: func() {
			once.Do(func() { close(cancelled) })
		},
	}
}

func factoryOf(cmds ...*CommandMock) CommandFactory {
	var mu sync.Mutex
	return func(string) (Command, error) {
		mu.Lock()
		defer mu.Unlock()
		cmd := cmds[0]
		cmds = cmds[1:]
		return cmd, nil
	}
}

func waitFor(t *testing.T, events <-chan Event, match func(Event) bool) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case e, ok := <-events:
			if !ok {
				t.Fatal("event channel closed")
			}
			if match(e) {
				return
			}
		case <-timeout:
			t.Fatal("timed out waiting for event")
		}
	}
}

func hasStatus(status Status) func(Event) bool {
	return func(e Event) bool { return e.Type == EventStatus && e.Status == status }
}

func newSession(t *testing.T, runner Runner, factory CommandFactory, saver store.Saver) *Session {
	t.Helper()
	s, err := New(runner, factory, saver, "")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestNew(t *testing.T) {
	factory := func(string) (Command, error) { return &CommandMock{}, nil }
	tests := []struct {
		name    string
		runner  Runner
		factory CommandFactory
		saver   store.Saver
		wantErr bool
	}{
		{name: "valid", runner: &RunnerMock{}, factory: factory, saver: &store.SaverMock{}},
		{name: "nil runner", factory: factory, saver: &store.SaverMock{}, wantErr: true},
		{name: "nil factory", runner: &RunnerMock{}, saver: &store.SaverMock{}, wantErr: true},
		{name: "nil saver", runner: &RunnerMock{}, factory: factory, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.runner, tt.factory, tt.saver, "")
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			want := Snapshot{State: StateStopped, Status: StatusIdle, Name: transcription.DefaultSessionName}
			if diff := cmp.Diff(got.Snapshot(), want); diff != "" {
				t.Errorf("Snapshot() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestSession_StartStop(t *testing.T) {
	s := newSession(t, asyncRunner(), factoryOf(liveCommand("hello", "world")), &store.SaverMock{})
	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	if err := s.Start("  demo "); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if err := s.Start("again"); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("Start() error = %v, want %v", err, ErrAlreadyRunning)
	}
	waitFor(t, events, func(e Event) bool { return e.Type == EventPartial && e.Text == "hel" })

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if err := s.Stop(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("Stop() error = %v, want %v", err, ErrNotRunning)
	}
	waitFor(t, events, hasStatus(StatusCompleted))

	want := Snapshot{State: StateStopped, Status: StatusCompleted, Name: "demo", Transcript: "hello world"}
	if diff := cmp.Diff(s.Snapshot(), want); diff != "" {
		t.Errorf("Snapshot() mismatch (-got +want):\n%s", diff)
	}
}

func TestSession_RunError(t *testing.T) {
	errDevice := errors.New("device lost")
	cmd := &CommandMock{
		RunFunc: func(ctx context.Context, audioFile string, listener transcription.Listener) error {
			listener.OnError(errDevice)
			return errDevice
		},
		CancelFunc: func() {},
	}
	s := newSession(t, asyncRunner(), factoryOf(cmd), &store.SaverMock{})
	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	if err := s.Start(""); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	waitFor(t, events, func(e Event) bool { return e.Type == EventError && e.Text == errDevice.Error() })

	got := s.Snapshot()
	if got.State != StateStopped || got.Status != StatusError || got.Error != errDevice.Error() {
		t.Errorf("Snapshot() = %+v, want stopped with error", got)
	}
}

func TestSession_StartFailures(t *testing.T) {
	t.Run("factory error", func(t *testing.T) {
		errFactory := errors.New("no capture device")
		s := newSession(t, asyncRunner(), func(string) (Command, error) { return nil, errFactory }, &store.SaverMock{})

		if err := s.Start(""); !errors.Is(err, errFactory) {
			t.Errorf("Start() error = %v, want %v", err, errFactory)
		}
		if got := s.Snapshot().State; got != StateStopped {
			t.Errorf("State = %q, want %q", got, StateStopped)
		}
	})

	t.Run("runner error", func(t *testing.T) {
		errShutdown := errors.New("shut down")
		runner := &RunnerMock{GoFunc: func(name string, fn func(ctx context.Context)) error { return errShutdown }}
		s := newSession(t, runner, factoryOf(liveCommand()), &store.SaverMock{})

		if err := s.Start(""); !errors.Is(err, errShutdown) {
			t.Errorf("Start() error = %v, want %v", err, errShutdown)
		}
		if got := s.Snapshot().State; got != StateStopped {
			t.Errorf("State = %q, want %q", got, StateStopped)
		}
	})
}

func TestSession_Save(t *testing.T) {
	t.Run("nothing to save", func(t *testing.T) {
		s := newSession(t, asyncRunner(), factoryOf(), &store.SaverMock{})
		s.OnFinal(model.NewResult("  ", true, nil))

		if _, err := s.Save(); !errors.Is(err, ErrNothingToSave) {
			t.Errorf("Save() error = %v, want %v", err, ErrNothingToSave)
		}
	})

	t.Run("success", func(t *testing.T) {
		saver := &store.SaverMock{
			SaveTranscriptionFunc: func(sessionName string, voskJSON []byte) (*store.Saved, error) {
				return &store.Saved{SessionName: sessionName, TextPath: "transcriptions/demo.txt"}, nil
			},
		}
		s := newSession(t, asyncRunner(), factoryOf(), saver)
		s.OnFinal(model.NewResult("hello", true, nil))
		s.OnPartial(model.NewResult("ignored", false, nil))
		s.OnFinal(model.NewResult(" world ", true, nil))

		saved, err := s.Save()
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		if saved.TextPath != "transcriptions/demo.txt" {
			t.Errorf("Save() = %+v", saved)
		}
		calls := saver.SaveTranscriptionCalls()
		if len(calls) != 1 {
			t.Fatalf("SaveTranscription() called %d times, want 1", len(calls))
		}
		if calls[0].SessionName != transcription.DefaultSessionName {
			t.Errorf("session name = %q, want %q", calls[0].SessionName, transcription.DefaultSessionName)
		}
		if got, want := string(calls[0].VoskJSON), `{"text":"hello world"}`; got != want {
			t.Errorf("saved json = %s, want %s", got, want)
		}
	})

	t.Run("saver error", func(t *testing.T) {
		errDisk := errors.New("disk full")
		saver := &store.SaverMock{
			SaveTranscriptionFunc: func(sessionName string, voskJSON []byte) (*store.Saved, error) {
				return nil, errDisk
			},
		}
		s := newSession(t, asyncRunner(), factoryOf(), saver)
		s.OnFinal(model.NewResult("hello", true, nil))

		if _, err := s.Save(); !errors.Is(err, errDisk) {
			t.Errorf("Save() error = %v, want %v", err, errDisk)
		}
	})
}

func TestSession_Clear(t *testing.T) {
	s := newSession(t, asyncRunner(), factoryOf(), &store.SaverMock{})
	events, unsubscribe := s.Subscribe()
	defer unsubscribe()

	s.OnFinal(model.NewResult("hello", true, nil))
	s.Clear()

	waitFor(t, events, func(e Event) bool { return e.Type == EventCleared })
	if got := s.Snapshot().Transcript; got != "" {
		t.Errorf("Transcript = %q, want empty", got)
	}
}

func TestSession_Subscribe(t *testing.T) {
	t.Run("slow subscriber drops events", func(t *testing.T) {
		s := newSession(t, asyncRunner(), factoryOf(), &store.SaverMock{})
		events, unsubscribe := s.Subscribe()
		defer unsubscribe()

		done := make(chan struct{})
		go func() {
			defer close(done)
			for i := 0; i < subscriberBuffer*2; i++ {
				s.OnFinal(model.NewResult("word", true, nil))
			}
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("recognition blocked on a slow subscriber")
		}
		if got := len(events); got != subscriberBuffer {
			t.Errorf("buffered events = %d, want %d", got, subscriberBuffer)
		}
	})

	t.Run("first event is the current status", func(t *testing.T) {
		s := newSession(t, asyncRunner(), factoryOf(), &store.SaverMock{})
		events, unsubscribe := s.Subscribe()
		defer unsubscribe()

		got := <-events
		want := Event{Type: EventStatus, State: StateStopped, Status: StatusIdle}
		if diff := cmp.Diff(got, want, cmpopts.IgnoreFields(Event{}, "Time")); diff != "" {
			t.Errorf("first event mismatch (-got +want):\n%s", diff)
		}
	})

	t.Run("unsubscribe closes the channel", func(t *testing.T) {
		s := newSession(t, asyncRunner(), factoryOf(), &store.SaverMock{})
		events, unsubscribe := s.Subscribe()
		unsubscribe()
		unsubscribe()

		for range events {
		}
	})
}

func TestSession_Close(t *testing.T) {
	cmd := liveCommand()
	s := newSession(t, asyncRunner(), factoryOf(cmd), &store.SaverMock{})
	events, _ := s.Subscribe()

	if err := s.Start(""); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	s.Close()

	for range events {
	}
	if got := len(cmd.CancelCalls()); got != 1 {
		t.Errorf("Cancel() called %d times, want 1", got)
	}
	if err := s.Start(""); !errors.Is(err, ErrClosed) {
		t.Errorf("Start() error = %v, want %v", err, ErrClosed)
	}
}

func TestSession_StartPassesName(t *testing.T) {
	idle := &RunnerMock{
		GoFunc: func(name string, fn func(ctx context.Context)) error { return nil },
	}

	tests := []struct {
		name string
		give string
		want string
	}{
		{name: "given name", give: " standup ", want: "standup"},
		{name: "blank name", give: "  ", want: transcription.DefaultSessionName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			s := newSession(t, idle, func(name string) (Command, error) {
				got = name
				return &CommandMock{}, nil
			}, &store.SaverMock{})

			if err := s.Start(tt.give); err != nil {
				t.Fatalf("Start() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("factory name = %q, want %q", got, tt.want)
			}
			if s.Snapshot().Name != tt.want {
				t.Errorf("Snapshot().Name = %q, want %q", s.Snapshot().Name, tt.want)
			}
		})
	}
}
