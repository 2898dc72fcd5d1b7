package transcription

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/uts/vosk-transcriber/internal/recognizer/model"
)

var (
	clearScreen = []byte("\033[H\033[2J")
	greenColor  = []byte("\033[32m")
	resetColor  = []byte("\033[0m")
	newLine     = []byte("\n")
)

var _ io.Writer = (*DecoratedInterimWriter)(nil)

// DecoratedInterimWriter redraws the terminal with p in green.
type DecoratedInterimWriter struct {
	Writer io.Writer
	buf    bytes.Buffer
}

func (w *DecoratedInterimWriter) Write(p []byte) (n int, err error) {
	w.buf.Reset()
	w.buf.Write(clearScreen)
	w.buf.Write(greenColor)
	w.buf.Write(p)
	w.buf.Write(resetColor)

	return w.Writer.Write(w.buf.Bytes())
}

var _ io.Writer = (*DecoratedResultWriter)(nil)

// DecoratedResultWriter writes p on a new line.
type DecoratedResultWriter struct {
	Writer io.Writer
	buf    bytes.Buffer
}

func (w *DecoratedResultWriter) Write(p []byte) (n int, err error) {
	w.buf.Reset()
	w.buf.Write(newLine)
	w.buf.Write(p)

	return w.Writer.Write(w.buf.Bytes())
}

var _ Listener = (*ConsoleListener)(nil)

// ConsoleListener renders a transcription on a terminal. Finals are also
// appended, one per line, to an optional output writer.
type ConsoleListener struct {
	stdout  io.Writer
	interim io.Writer
	result  io.Writer
	errOut  io.Writer
	output  io.Writer

	mu sync.Mutex
}

func NewConsoleListener(stdout, stderr, output io.Writer) *ConsoleListener {
	return &ConsoleListener{
		stdout:  stdout,
		interim: &DecoratedInterimWriter{Writer: stdout},
		result:  &DecoratedResultWriter{Writer: stdout},
		errOut:  stderr,
		output:  output,
	}
}

func (l *ConsoleListener) OnPartial(result *model.Result) {
	text := strings.TrimSpace(result.Transcript)
	if text == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.interim.Write([]byte(text)); err != nil {
		slog.Debug("failed to write interim result", "component", "console", "error", err)
	}
}

func (l *ConsoleListener) OnFinal(result *model.Result) {
	text := strings.TrimSpace(result.Transcript)
	if text == "" {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, err := l.result.Write([]byte(text)); err != nil {
		slog.Debug("failed to write result", "component", "console", "error", err)
	}
	if l.output != nil {
		if _, err := l.output.Write([]byte(text + "\n")); err != nil {
			slog.Error("failed to write result to output", "component", "console", "error", err)
		}
	}
}

func (l *ConsoleListener) OnError(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.errOut, "\nerror: %v\n", err)
}

func (l *ConsoleListener) OnComplete() {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.stdout)
}
