package audio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
)

const (
	wavFormatPCM        = 1
	wavFormatExtensible = 0xFFFE
)

// PCMFile is the data chunk of a WAV file.
type PCMFile struct {
	io.Reader
	// Size is the length of the PCM data in bytes.
	Size   int64
	Format Format

	file *os.File
}

func (p *PCMFile) Close() error {
	return p.file.Close()
}

// OpenPCM opens a WAV file and positions the returned reader at its PCM data.
// The file must match want.
func OpenPCM(path string, want Format) (*PCMFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}

	pcm, err := readPCM(f, want)
	if err != nil {
		return nil, errors.Join(err, f.Close())
	}
	pcm.file = f
	return pcm, nil
}

func readPCM(f *os.File, want Format) (*PCMFile, error) {
	d := wav.NewDecoder(f)
	if !d.IsValidFile() {
		return nil, errors.New("not a valid wav file")
	}
	if d.WavAudioFormat != wavFormatPCM && d.WavAudioFormat != wavFormatExtensible {
		return nil, fmt.Errorf("unsupported wav encoding %d: PCM is required", d.WavAudioFormat)
	}

	got := Format{
		SampleRate: int(d.SampleRate),
		SampleBits: int(d.BitDepth),
		Channels:   int(d.NumChans),
	}
	if got != want {
		return nil, fmt.Errorf("unexpected audio format %s, want %s", got, want)
	}

	if err := d.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("failed to find pcm data: %w", err)
	}

	size := d.PCMLen()
	return &PCMFile{
		Reader: io.LimitReader(d.PCMChunk, size),
		Size:   size,
		Format: got,
	}, nil
}
