// Package batcher buffers items and hands them to a flush callback in rate-limited batches.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once the batcher has been stopped.
var ErrStopped = errors.New("batcher stopped")

// Config controls when batches are flushed.
type Config struct {
	// FlushSize flushes as soon as this many items are buffered.
	FlushSize int
	// FlushInterval flushes whatever is buffered at this period.
	FlushInterval time.Duration
	// RPS caps flushes per second.
	RPS int
	// DrainTimeout bounds the final flush after the batcher is stopped or its context ends.
	DrainTimeout time.Duration
}

// DefaultConfig returns settings suited to low-volume event publishing.
func DefaultConfig() Config {
	return Config{
		FlushSize:     100,
		FlushInterval: time.Second,
		RPS:           10,
		DrainTimeout:  5 * time.Second,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.FlushSize <= 0 {
		c.FlushSize = d.FlushSize
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = d.FlushInterval
	}
	if c.RPS <= 0 {
		c.RPS = d.RPS
	}
	if c.DrainTimeout <= 0 {
		c.DrainTimeout = d.DrainTimeout
	}
	return c
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flush  func(context.Context, []T) error
	cfg    Config
	items  chan T
	rl     ratelimit.Limiter
	logger *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once

	// mu guards stopped; Add sends under the read lock so sealing waits for in-flight sends.
	mu      sync.RWMutex
	stopped bool
}

// New constructs a Batcher. Zero fields of cfg take DefaultConfig values.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, cfg Config) *Batcher[T] {
	cfg = cfg.withDefaults()
	return &Batcher[T]{
		flush:  flush,
		cfg:    cfg,
		items:  make(chan T, cfg.FlushSize*2),
		rl:     ratelimit.New(cfg.RPS),
		logger: logger,
		stop:   make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop ends the flushing loop after draining buffered items. It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item, blocking while the buffer is full. Items accepted by Add are
// always flushed, including by the final drain.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.stopped {
		return ErrStopped
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.items <- item:
		return nil
	}
}

// seal rejects further Adds. The returned channel closes once no Add can still be
// sending; the caller keeps consuming items until then.
func (b *Batcher[T]) seal() <-chan struct{} {
	sealed := make(chan struct{})
	go func() {
		b.mu.Lock()
		b.stopped = true
		b.mu.Unlock()
		close(sealed)
	}()
	return sealed
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.FlushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.FlushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		if err := b.flush(ctx, buf); err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
	}

	// shutdown seals the batcher and flushes everything queued with a context that outlives ctx.
	shutdown := func() {
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.cfg.DrainTimeout)
		defer cancel()

		collect := func(item T) {
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				flush(dctx)
			}
		}

		sealed := b.seal()
	sealing:
		for {
			select {
			case <-sealed:
				break sealing
			case item := <-b.items:
				collect(item)
			}
		}

		for {
			select {
			case item := <-b.items:
				collect(item)
			default:
				flush(dctx)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			shutdown()
			return

		case <-b.stop:
			shutdown()
			return

		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.cfg.FlushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
