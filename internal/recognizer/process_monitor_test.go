package recognizer

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"
)

func TestNewProcessMonitor(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		processCh := make(chan struct{})
		timeoutDuration := 1 * time.Second
		want := &ProcessMonitor{
			processCh:       processCh,
			timeoutDuration: timeoutDuration,
		}

		if got := NewProcessMonitor(processCh, timeoutDuration); !reflect.DeepEqual(got, want) {
			t.Errorf("NewProcessMonitor() = %v, want %v", got, want)
		}
	})
}

func TestProcessMonitor_Start(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		m := NewProcessMonitor(make(chan struct{}), time.Microsecond)

		if got := m.Start(context.Background()); !errors.Is(got, ErrInactive) {
			t.Errorf("ProcessMonitor.Start() = %v, want %v", got, ErrInactive)
		}
	})

	t.Run("canceled by others", func(t *testing.T) {
		m := NewProcessMonitor(make(chan struct{}), time.Hour)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var wg sync.WaitGroup
		wg.Add(1)
		var got error
		go func() {
			defer wg.Done()
			got = m.Start(ctx)
		}()

		cancel()
		wg.Wait()

		if !errors.Is(got, context.Canceled) {
			t.Errorf("ProcessMonitor.Start() = %v, want %v", got, context.Canceled)
		}
	})

	t.Run("activity channel closed", func(t *testing.T) {
		processCh := make(chan struct{})
		close(processCh)
		m := NewProcessMonitor(processCh, time.Hour)

		if got := m.Start(context.Background()); got != nil {
			t.Errorf("ProcessMonitor.Start() = %v, want nil", got)
		}
	})

	t.Run("extend timeout", func(t *testing.T) {
		processCh := make(chan struct{})
		m := &ProcessMonitor{
			processCh:       processCh,
			timeoutDuration: 100 * time.Millisecond,
		}

		done := make(chan error, 1)
		go func() {
			done <- m.Start(context.Background())
		}()

		// extend timeout every 50ms for 200ms
		ticker := time.NewTicker(50 * time.Millisecond)
		for i := 0; i < 4; i++ {
			<-ticker.C
			select {
			case err := <-done:
				t.Fatalf("unexpected timeout: %v", err)
			case processCh <- struct{}{}:
			}
		}
		ticker.Stop()

		// Stop extending timeout and wait for it to occur.
		if got := <-done; !errors.Is(got, ErrInactive) {
			t.Errorf("ProcessMonitor.Start() = %v, want %v", got, ErrInactive)
		}
	})
}
