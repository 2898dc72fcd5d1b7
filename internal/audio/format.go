// Package audio prepares audio for recognition: file conversion with ffmpeg,
// WAV parsing and live capture through an external command.
package audio

import (
	"errors"
	"fmt"
)

// Format describes signed little-endian PCM.
type Format struct {
	SampleRate int
	SampleBits int
	Channels   int
}

// FrameSize is the number of bytes of one sample for every channel.
func (f Format) FrameSize() int {
	return f.SampleBits / 8 * f.Channels
}

// BytesPerSecond is the data rate of the format.
func (f Format) BytesPerSecond() int {
	return f.SampleRate * f.FrameSize()
}

func (f Format) String() string {
	return fmt.Sprintf("%d Hz, %d-bit, %d ch", f.SampleRate, f.SampleBits, f.Channels)
}

// Validate accepts 16-bit formats only, which is what the recognizers take.
func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return errors.New("sample rate must be positive")
	}
	if f.SampleBits != 16 {
		return fmt.Errorf("unsupported sample size %d bits: only 16-bit signed little-endian PCM is supported", f.SampleBits)
	}
	if f.Channels <= 0 {
		return errors.New("channels must be positive")
	}
	return nil
}
