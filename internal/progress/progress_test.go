package progress

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestManager(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		m := NewManager(Config{Enabled: false})
		tr := m.Track("audio.wav", 100)
		tr.Add(10)
		tr.Done()
		m.Wait()
	})

	t.Run("renders bar", func(t *testing.T) {
		buf := &bytes.Buffer{}
		m := NewManager(Config{Enabled: true, Writer: buf})

		tr := m.Track("audio.wav", 4096)
		tr.Add(2048)
		tr.Add(2048)
		tr.Done()
		waitReturns(t, m)

		if got := buf.String(); !strings.Contains(got, "audio.wav") {
			t.Errorf("output %q does not contain the bar name", got)
		}
	})

	t.Run("done before total", func(t *testing.T) {
		m := NewManager(Config{Enabled: true, Writer: &bytes.Buffer{}})

		tr := m.Track("short.wav", 4096)
		tr.Add(100)
		tr.Done()

		waitReturns(t, m)
	})

	t.Run("done at total", func(t *testing.T) {
		m := NewManager(Config{Enabled: true, Writer: &bytes.Buffer{}})

		tr := m.Track("full.wav", 100)
		tr.Add(100)
		tr.Done()

		waitReturns(t, m)
	})
}

// waitReturns fails the test when Manager.Wait is still blocked after a while.
func waitReturns(t *testing.T, m *Manager) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		m.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Manager.Wait() still blocked after Done()")
	}
}

func TestIsTTY(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("IsTTY(buffer) = true, want false")
	}
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTTY(f) {
		t.Error("IsTTY(regular file) = true, want false")
	}
}
