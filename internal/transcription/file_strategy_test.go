package transcription

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/uts/vosk-transcriber/internal/audio"
	"github.com/uts/vosk-transcriber/internal/progress"
	"github.com/uts/vosk-transcriber/internal/punctuator"
	"github.com/uts/vosk-transcriber/internal/store"
	"github.com/uts/vosk-transcriber/internal/testutil"
	"github.com/uts/vosk-transcriber/internal/worker"
)

// wavConverter converts by writing pcm into a WAV file in dir.
func wavConverter(t *testing.T, dir string, pcm []byte) *audio.PCMConverterMock {
	return &audio.PCMConverterMock{
		ConvertToPCMFunc: func(_ context.Context, input string) (string, error) {
			out := filepath.Join(dir, audio.SanitizeFileName(filepath.Base(input))+"_converted.wav")
			testutil.WriteWAV(t, out, pcm, speechFormat.SampleRate, speechFormat.Channels)
			return out, nil
		},
	}
}

func okSaver() *store.SaverMock {
	return &store.SaverMock{
		SaveTranscriptionFunc: func(name string, _ []byte) (*store.Saved, error) {
			return &store.Saved{SessionName: name}, nil
		},
	}
}

type fakeProgress struct {
	total int64
	added int
	done  bool
}

func (p *fakeProgress) Track(_ string, total int64) progress.Tracker {
	p.total = total
	return p
}
func (p *fakeProgress) Add(n int) { p.added += n }
func (p *fakeProgress) Done()     { p.done = true }

func TestNewFileStrategy(t *testing.T) {
	deps := Deps{Engine: echoEngine(), Permits: permits(), Format: speechFormat}
	converter := &audio.PCMConverterMock{}
	saver := okSaver()

	tests := []struct {
		name      string
		deps      Deps
		converter audio.PCMConverter
		saver     store.Saver
		chunkSize int
		wantErr   bool
	}{
		{name: "success", deps: deps, converter: converter, saver: saver, chunkSize: 8000},
		{name: "no engine", deps: Deps{Permits: permits(), Format: speechFormat}, converter: converter, saver: saver, chunkSize: 8000, wantErr: true},
		{name: "no permits", deps: Deps{Engine: echoEngine(), Format: speechFormat}, converter: converter, saver: saver, chunkSize: 8000, wantErr: true},
		{name: "bad format", deps: Deps{Engine: echoEngine(), Permits: permits()}, converter: converter, saver: saver, chunkSize: 8000, wantErr: true},
		{name: "no converter", deps: deps, saver: saver, chunkSize: 8000, wantErr: true},
		{name: "no saver", deps: deps, converter: converter, chunkSize: 8000, wantErr: true},
		{name: "no chunk size", deps: deps, converter: converter, saver: saver, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewFileStrategy(tt.deps, tt.converter, tt.saver, tt.chunkSize, "")
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewFileStrategy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && s.sessionName != DefaultSessionName {
				t.Errorf("session name = %q, want %q", s.sessionName, DefaultSessionName)
			}
		})
	}
}

func TestFileStrategy_Execute(t *testing.T) {
	input := filepath.Join(t.TempDir(), "talk.mp3")
	if err := os.WriteFile(input, []byte("mp3"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Run("success", func(t *testing.T) {
		tempDir := t.TempDir()
		p := permits()
		saver := okSaver()
		progress := &fakeProgress{}
		s, err := NewFileStrategy(
			Deps{Engine: echoEngine(), Permits: p, Format: speechFormat},
			wavConverter(t, tempDir, []byte("aaaabbbbcc")),
			saver,
			4,
			"Talk",
		)
		if err != nil {
			t.Fatal(err)
		}
		s.WithProgress(progress)
		listener := &recordingListener{}

		if err := s.Execute(context.Background(), input, listener); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}

		want := []string{"partial:aaaa", "partial:bbbb", "partial:cc", "final:aaaa bbbb cc", "complete"}
		if diff := cmp.Diff(listener.Events(), want); diff != "" {
			t.Errorf("unexpected events (-got +want):\n%s", diff)
		}

		calls := saver.SaveTranscriptionCalls()
		if len(calls) != 1 {
			t.Fatalf("SaveTranscription() called %d times, want 1", len(calls))
		}
		if calls[0].SessionName != "Talk" {
			t.Errorf("session name = %s, want Talk", calls[0].SessionName)
		}
		if got := store.ExtractText(calls[0].VoskJSON); got != "aaaa bbbb cc" {
			t.Errorf("saved text = %q, want %q", got, "aaaa bbbb cc")
		}

		entries, _ := os.ReadDir(tempDir)
		if len(entries) != 0 {
			t.Errorf("converted file not removed: %v", entries)
		}
		if len(p.AcquireCalls()) != 1 || len(p.ReleaseCalls()) != 1 {
			t.Errorf("permits acquired %d released %d, want 1 and 1", len(p.AcquireCalls()), len(p.ReleaseCalls()))
		}
		if progress.total != 10 || progress.added != 10 || !progress.done {
			t.Errorf("unexpected progress: %+v", progress)
		}
	})

	t.Run("punctuates finals", func(t *testing.T) {
		saver := okSaver()
		s, _ := NewFileStrategy(
			Deps{
				Engine:  echoEngine(),
				Permits: permits(),
				Format:  speechFormat,
				Punctuator: &punctuator.PunctuatorInterfaceMock{
					PunctuateFunc: func(sentence string) (string, error) { return sentence + ".", nil },
				},
			},
			wavConverter(t, t.TempDir(), []byte("aaaa")),
			saver,
			4,
			"",
		)
		listener := &recordingListener{}

		if err := s.Execute(context.Background(), input, listener); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if got := store.ExtractText(saver.SaveTranscriptionCalls()[0].VoskJSON); got != "aaaa." {
			t.Errorf("saved text = %q, want %q", got, "aaaa.")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		p := permits()
		s, _ := NewFileStrategy(Deps{Engine: echoEngine(), Permits: p, Format: speechFormat}, &audio.PCMConverterMock{}, okSaver(), 4, "")

		if err := s.Execute(context.Background(), filepath.Join(t.TempDir(), "nope.mp3"), &recordingListener{}); err == nil {
			t.Fatal("Execute() error = nil, want an error")
		}
		if got := len(p.AcquireCalls()); got != 0 {
			t.Errorf("Acquire() called %d times, want 0", got)
		}
	})

	t.Run("conversion failure releases permit", func(t *testing.T) {
		p := permits()
		converter := &audio.PCMConverterMock{
			ConvertToPCMFunc: func(context.Context, string) (string, error) {
				return "", errors.New("ffmpeg failed with exit code 1")
			},
		}
		listener := &recordingListener{}
		s, _ := NewFileStrategy(Deps{Engine: echoEngine(), Permits: p, Format: speechFormat}, converter, okSaver(), 4, "")

		if err := s.Execute(context.Background(), input, listener); err == nil {
			t.Fatal("Execute() error = nil, want an error")
		}
		if got := len(p.ReleaseCalls()); got != 1 {
			t.Errorf("Release() called %d times, want 1", got)
		}
		// errors are reported by the command, not the strategy
		if got := listener.Events(); len(got) != 0 {
			t.Errorf("unexpected events: %v", got)
		}
	})

	t.Run("save failure", func(t *testing.T) {
		tempDir := t.TempDir()
		saver := &store.SaverMock{
			SaveTranscriptionFunc: func(string, []byte) (*store.Saved, error) {
				return nil, errors.New("disk full")
			},
		}
		listener := &recordingListener{}
		s, _ := NewFileStrategy(Deps{Engine: echoEngine(), Permits: permits(), Format: speechFormat}, wavConverter(t, tempDir, []byte("aaaa")), saver, 4, "")

		if err := s.Execute(context.Background(), input, listener); err == nil {
			t.Fatal("Execute() error = nil, want an error")
		}
		for _, e := range listener.Events() {
			if e == "complete" {
				t.Error("OnComplete() called after a failure")
			}
		}
		if entries, _ := os.ReadDir(tempDir); len(entries) != 0 {
			t.Errorf("converted file not removed: %v", entries)
		}
	})

	t.Run("permit not acquired", func(t *testing.T) {
		p := &worker.PermitsMock{
			AcquireFunc: func(ctx context.Context) error { return ctx.Err() },
		}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s, _ := NewFileStrategy(Deps{Engine: echoEngine(), Permits: p, Format: speechFormat}, &audio.PCMConverterMock{}, okSaver(), 4, "")

		if err := s.Execute(ctx, input, &recordingListener{}); !errors.Is(err, context.Canceled) {
			t.Errorf("Execute() error = %v, want %v", err, context.Canceled)
		}
	})
}
