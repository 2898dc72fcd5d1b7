package transcription

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/uts/vosk-transcriber/internal/recognizer/model"
)

func TestDecoratedInterimWriter_Write(t *testing.T) {
	wantFormat := "\033[H\033[2J" + "\033[32m" + "%s" + "\033[0m"

	t.Run("write once", func(t *testing.T) {
		buf := &bytes.Buffer{}
		w := &DecoratedInterimWriter{Writer: buf}
		if _, err := w.Write([]byte("test")); err != nil {
			t.Errorf("Write() error = %v, wantErr %v", err, false)
		}

		want := fmt.Sprintf(wantFormat, "test")
		if got := buf.String(); got != want {
			t.Errorf("Write() writes %v, want %v", got, want)
		}
	})

	t.Run("write twice", func(t *testing.T) {
		buf := &bytes.Buffer{}
		w := &DecoratedInterimWriter{Writer: buf}
		if _, err := w.Write([]byte("test1")); err != nil {
			t.Errorf("Write() error = %v, wantErr %v", err, false)
		}
		if _, err := w.Write([]byte("test2")); err != nil {
			t.Errorf("Write() error = %v, wantErr %v", err, false)
		}

		want := fmt.Sprintf(wantFormat, "test1") + fmt.Sprintf(wantFormat, "test2")
		if got := buf.String(); got != want {
			t.Errorf("Write() writes %v, want %v", got, want)
		}
	})
}

func TestDecoratedResultWriter_Write(t *testing.T) {
	buf := &bytes.Buffer{}
	w := &DecoratedResultWriter{Writer: buf}
	for _, p := range []string{"test1", "test2"} {
		if _, err := w.Write([]byte(p)); err != nil {
			t.Errorf("Write() error = %v, wantErr %v", err, false)
		}
	}

	if got, want := buf.String(), "\ntest1\ntest2"; got != want {
		t.Errorf("Write() writes %q, want %q", got, want)
	}
}

func TestConsoleListener(t *testing.T) {
	t.Run("renders results", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		output := &bytes.Buffer{}
		l := NewConsoleListener(stdout, stderr, output)

		l.OnPartial(model.NewResult("hel", false, nil))
		l.OnPartial(model.NewResult(" ", false, nil))
		l.OnFinal(model.NewResult("hello", true, nil))
		l.OnFinal(model.NewResult("", true, nil))
		l.OnFinal(model.NewResult("world", true, nil))
		l.OnComplete()

		want := "\033[H\033[2J\033[32mhel\033[0m" + "\nhello" + "\nworld" + "\n"
		if got := stdout.String(); got != want {
			t.Errorf("stdout = %q, want %q", got, want)
		}
		if got := output.String(); got != "hello\nworld\n" {
			t.Errorf("output = %q, want %q", got, "hello\nworld\n")
		}
		if stderr.Len() != 0 {
			t.Errorf("unexpected stderr: %q", stderr.String())
		}
	})

	t.Run("errors go to stderr", func(t *testing.T) {
		stderr := &bytes.Buffer{}
		l := NewConsoleListener(&bytes.Buffer{}, stderr, nil)

		l.OnFinal(model.NewResult("no output file", true, nil))
		l.OnError(errors.New("device lost"))

		if got := stderr.String(); !strings.Contains(got, "device lost") {
			t.Errorf("stderr = %q, want it to contain the error", got)
		}
	})
}
