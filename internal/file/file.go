package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// AppendWriter is an io.Writer that opens the file, appends to it and closes
// it again on every Write, so that the file can be followed or rotated by
// other processes while a long session is running.
type AppendWriter struct {
	path string
	perm os.FileMode
}

var _ io.Writer = (*AppendWriter)(nil)

func NewAppendWriter(path string, perm os.FileMode) *AppendWriter {
	return &AppendWriter{path, perm}
}

func (w *AppendWriter) Write(p []byte) (int, error) {
	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, w.perm)
	if err != nil {
		return 0, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	n, err := file.Write(p)
	if err != nil {
		return n, fmt.Errorf("failed to write to file: %w", err)
	}

	return n, nil
}

// WriteAtomic writes data to a temporary file next to path and renames it into
// place. Readers see either the old content or the complete new content.
func WriteAtomic(path string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return errors.Join(fmt.Errorf("failed to write temporary file: %w", err), tmp.Close())
	}
	if err := tmp.Chmod(perm); err != nil {
		return errors.Join(fmt.Errorf("failed to set file mode: %w", err), tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move file into place: %w", err)
	}

	return nil
}
