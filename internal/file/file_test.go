package file

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewAppendWriter(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := "test.txt"
		perm := os.FileMode(0o644)

		want := &AppendWriter{path, perm}
		got := NewAppendWriter(path, perm)
		if !reflect.DeepEqual(got, want) {
			t.Errorf("NewAppendWriter() = %v, want %v", got, want)
		}
	})
}

func TestAppendWriter_Write(t *testing.T) {
	t.Run("appends on every write", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.txt")
		w := NewAppendWriter(path, 0o644)

		for _, p := range []string{"hello\n", "world\n"} {
			got, err := w.Write([]byte(p))
			if err != nil {
				t.Fatalf("AppendWriter.Write() error = %v", err)
			}
			if got != len(p) {
				t.Errorf("AppendWriter.Write() = %v, want %v", got, len(p))
			}
		}

		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if diff := cmp.Diff(string(b), "hello\nworld\n"); diff != "" {
			t.Errorf("mismatch (-got +want):\n%s", diff)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "test.txt")
		w := NewAppendWriter(path, 0o644)

		if _, err := w.Write([]byte("test")); err == nil {
			t.Error("AppendWriter.Write() error = nil, want an error")
		}
	})
}

func TestWriteAtomic(t *testing.T) {
	t.Run("replaces content", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.txt")
		if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
			t.Fatal(err)
		}

		if err := WriteAtomic(path, []byte("new"), 0o644); err != nil {
			t.Fatalf("WriteAtomic() error = %v", err)
		}

		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(b) != "new" {
			t.Errorf("content = %q, want %q", b, "new")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("directory has %d entries, want 1", len(entries))
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.txt")
		if err := WriteAtomic(path, []byte("new"), 0o644); err == nil {
			t.Error("WriteAtomic() error = nil, want an error")
		}
	})

	t.Run("target is a directory", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "target")
		if err := os.Mkdir(target, 0o755); err != nil {
			t.Fatal(err)
		}
		// rename over a non-empty directory fails
		if err := os.WriteFile(filepath.Join(target, "keep"), nil, 0o644); err != nil {
			t.Fatal(err)
		}

		if err := WriteAtomic(target, []byte("new"), 0o644); err == nil {
			t.Fatal("WriteAtomic() error = nil, want an error")
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("temporary file left behind: %d entries", len(entries))
		}
	})
}
