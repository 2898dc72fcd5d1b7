// Package progress renders byte progress bars for file transcriptions.
package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

// Reporter creates a tracker per unit of work.
type Reporter interface {
	Track(name string, total int64) Tracker
}

type Tracker interface {
	Add(n int)
	Done()
}

type Config struct {
	Enabled bool
	Writer  io.Writer
}

var _ Reporter = (*Manager)(nil)

type Manager struct {
	container *mpb.Progress
	enabled   bool
	mu        sync.Mutex
}

func NewManager(config Config) *Manager {
	if !config.Enabled {
		return &Manager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	return &Manager{
		container: mpb.New(
			mpb.WithOutput(writer),
			mpb.WithRefreshRate(120*time.Millisecond),
		),
		enabled: true,
	}
}

func (m *Manager) Track(name string, total int64) Tracker {
	if !m.enabled || m.container == nil {
		return &Bar{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// A zero total keeps completion manual so Done can finish a short bar.
	bar := m.container.AddBar(0,
		mpb.PrependDecorators(
			decor.Name(name+" ", decor.WC{W: len(name) + 1, C: decor.DindentRight}),
			decor.CountersKibiByte("% .1f / % .1f", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.AverageETA(decor.ET_STYLE_GO, decor.WCSyncWidth), " ✓ ",
			),
			decor.OnComplete(
				decor.AverageSpeed(decor.SizeB1024(0), "% .1f", decor.WCSyncSpace), "",
			),
		),
	)
	bar.SetTotal(total, false)
	return &Bar{bar: bar}
}

// Wait blocks until every bar is complete and rendered.
func (m *Manager) Wait() {
	if m.enabled && m.container != nil {
		m.container.Wait()
	}
}

func (m *Manager) Shutdown() {
	if m.enabled && m.container != nil {
		m.container.Shutdown()
	}
}

// Bar is a Tracker. The zero value discards progress.
type Bar struct {
	bar *mpb.Bar
}

func (b *Bar) Add(n int) {
	if b.bar != nil {
		b.bar.IncrBy(n)
	}
}

// Done completes the bar at its current value.
func (b *Bar) Done() {
	if b.bar != nil {
		b.bar.SetTotal(-1, true)
	}
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return stat.Mode()&os.ModeCharDevice != 0
}
