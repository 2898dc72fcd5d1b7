package audio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var invalidFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

//go:generate moq -rm -out converter_mock.go . PCMConverter
type PCMConverter interface {
	ConvertToPCM(ctx context.Context, input string) (string, error)
}

var _ PCMConverter = (*Converter)(nil)

// Converter normalises audio files with ffmpeg.
type Converter struct {
	ffmpeg  string
	tempDir string
	timeout time.Duration
	format  Format
}

func NewConverter(ffmpeg, tempDir string, timeout time.Duration, format Format) (*Converter, error) {
	if ffmpeg == "" {
		return nil, errors.New("ffmpeg binary must be specified")
	}
	if tempDir == "" {
		return nil, errors.New("temp directory must be specified")
	}
	if timeout <= 0 {
		return nil, errors.New("timeout must be positive")
	}
	if err := format.Validate(); err != nil {
		return nil, fmt.Errorf("invalid format: %w", err)
	}
	return &Converter{
		ffmpeg:  ffmpeg,
		tempDir: tempDir,
		timeout: timeout,
		format:  format,
	}, nil
}

// ConvertToPCM writes a PCM WAV copy of input to
// <temp>/<sanitized name>_converted.wav and returns its path.
func (c *Converter) ConvertToPCM(ctx context.Context, input string) (string, error) {
	if _, err := os.Stat(input); err != nil {
		return "", fmt.Errorf("input file does not exist: %w", err)
	}
	if err := os.MkdirAll(c.tempDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	absInput, err := filepath.Abs(input)
	if err != nil {
		return "", fmt.Errorf("failed to resolve input path: %w", err)
	}
	output, err := filepath.Abs(filepath.Join(c.tempDir, SanitizeFileName(filepath.Base(input))+"_converted.wav"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve output path: %w", err)
	}

	slog.Info("converting audio", "component", "converter", "input", absInput, "output", output)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.ffmpeg,
		"-i", absInput,
		"-ar", strconv.Itoa(c.format.SampleRate),
		"-ac", strconv.Itoa(c.format.Channels),
		"-sample_fmt", "s16",
		"-f", "wav",
		"-y",
		output,
	)
	// children of a killed ffmpeg wrapper may keep the output pipe open
	cmd.WaitDelay = time.Second

	out, err := cmd.CombinedOutput()
	slog.Debug("ffmpeg finished", "component", "converter", "output", string(out))
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("ffmpeg timed out after %s", c.timeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			slog.Error("ffmpeg failed", "component", "converter", "code", exitErr.ExitCode(), "output", string(out))
			return "", fmt.Errorf("ffmpeg failed with exit code %d", exitErr.ExitCode())
		}
		return "", fmt.Errorf("failed to run ffmpeg: %w", err)
	}

	info, err := os.Stat(output)
	if err != nil || info.Size() == 0 {
		return "", errors.New("converted file is empty or missing")
	}

	slog.Info("conversion succeeded", "component", "converter", "output", output, "bytes", info.Size())
	return output, nil
}

// SanitizeFileName drops the extension of name and replaces every character
// outside [a-zA-Z0-9._-] with '_'.
func SanitizeFileName(name string) string {
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	return invalidFileChars.ReplaceAllString(name, "_")
}
