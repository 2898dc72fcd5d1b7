// Package worker bounds the number of recognizers running at once and runs
// transcription work on named goroutines.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/uts/vosk-transcriber/internal/metrics"
)

// ErrShutdown is returned by Go after Shutdown.
var ErrShutdown = errors.New("pool is shut down")

//go:generate moq -rm -out pool_mock.go . Permits
type Permits interface {
	Acquire(ctx context.Context) error
	Release()
}

var _ Permits = (*Pool)(nil)

// Pool holds a fixed number of recognizer permits.
type Pool struct {
	sem     *semaphore.Weighted
	size    int64
	inUse   atomic.Int64
	counter atomic.Int64
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	mu       sync.Mutex
	shutdown bool
}

func NewPool(size int) (*Pool, error) {
	if size < 1 {
		return nil, errors.New("pool size must be greater than or equal to 1")
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Pool{
		sem:    semaphore.NewWeighted(int64(size)),
		size:   int64(size),
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Acquire blocks until a permit is free or ctx is done.
func (p *Pool) Acquire(ctx context.Context) error {
	slog.Debug("acquiring recognizer permit", "component", "worker")
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("failed to acquire recognizer permit: %w", err)
	}
	p.inUse.Add(1)
	metrics.PermitAcquired()
	slog.Debug("recognizer permit acquired", "component", "worker", "available", p.Available())
	return nil
}

func (p *Pool) Release() {
	p.inUse.Add(-1)
	p.sem.Release(1)
	metrics.PermitReleased()
	slog.Debug("recognizer permit released", "component", "worker", "available", p.Available())
}

// Available reports the number of free permits.
func (p *Pool) Available() int {
	return int(p.size - p.inUse.Load())
}

// Go runs fn on a goroutine named name-N. The context passed to fn is
// cancelled by Shutdown. A panic in fn is logged and does not crash the
// process.
func (p *Pool) Go(name string, fn func(ctx context.Context)) error {
	p.mu.Lock()
	if p.shutdown {
		p.mu.Unlock()
		return ErrShutdown
	}
	p.wg.Add(1)
	p.mu.Unlock()

	workerName := fmt.Sprintf("%s-%d", name, p.counter.Add(1))
	go func() {
		defer p.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				metrics.WorkerPanicked()
				slog.Error("uncaught panic in worker",
					"component", "worker",
					"worker", workerName,
					"panic", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		slog.Debug("worker started", "component", "worker", "worker", workerName)
		fn(p.ctx)
		slog.Debug("worker finished", "component", "worker", "worker", workerName)
	}()
	return nil
}

// Shutdown cancels running workers and waits for them until ctx is done.
func (p *Pool) Shutdown(ctx context.Context) error {
	slog.Info("shutting down workers", "component", "worker")
	p.mu.Lock()
	p.shutdown = true
	p.mu.Unlock()
	p.cancel()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("workers did not finish: %w", ctx.Err())
	}
}
