// Package batcher groups items into batches flushed by size or by age.
package batcher

import (
	"context"
	"errors"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	DefaultSize     = 100
	DefaultInterval = time.Second
)

// ErrStopped is returned by Add once Run has returned.
var ErrStopped = errors.New("batcher stopped")

// FlushFunc receives a batch it owns.
type FlushFunc[T any] func(ctx context.Context, batch []T) error

// Config tunes a Batcher. RPS bounds flushes per second, zero for unlimited.
type Config struct {
	Size     int
	Interval time.Duration
	RPS      int
}

// Batcher collects items from Add and hands them to the flush function from the Run goroutine.
type Batcher[T any] struct {
	cfg    Config
	flush  FlushFunc[T]
	items  chan T
	done   chan struct{}
	limit  ratelimit.Limiter
	logger *zap.Logger
}

// New constructs a Batcher. Zero config values fall back to the package defaults.
func New[T any](cfg Config, flush FlushFunc[T], logger *zap.Logger) *Batcher[T] {
	if cfg.Size <= 0 {
		cfg.Size = DefaultSize
	}
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultInterval
	}
	limit := ratelimit.NewUnlimited()
	if cfg.RPS > 0 {
		limit = ratelimit.New(cfg.RPS)
	}
	return &Batcher[T]{
		cfg:    cfg,
		flush:  flush,
		items:  make(chan T, cfg.Size*2),
		done:   make(chan struct{}),
		limit:  limit,
		logger: logger,
	}
}

// Add hands item to the batcher. It blocks while the buffer is full.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.done:
		return ErrStopped
	default:
	}

	select {
	case b.items <- item:
		return nil
	case <-b.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run flushes batches until ctx is canceled. Items accepted before that are flushed with a
// context that is not canceled. Run must be called once.
func (b *Batcher[T]) Run(ctx context.Context) error {
	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	batch := make([]T, 0, b.cfg.Size)
	for {
		select {
		case item := <-b.items:
			batch = append(batch, item)
			if len(batch) >= b.cfg.Size {
				batch = b.send(ctx, batch)
			}
		case <-ticker.C:
			batch = b.send(ctx, batch)
		case <-ctx.Done():
			close(b.done)
			for {
				select {
				case item := <-b.items:
					batch = append(batch, item)
				default:
					b.send(context.WithoutCancel(ctx), batch)
					return nil
				}
			}
		}
	}
}

// send flushes batch and returns an empty buffer for the next one.
func (b *Batcher[T]) send(ctx context.Context, batch []T) []T {
	if len(batch) == 0 {
		return batch
	}

	b.limit.Take()
	if err := b.flush(ctx, batch); err != nil {
		b.logger.Error("batch not flushed", zap.Int("size", len(batch)), zap.Error(err))
	} else {
		b.logger.Debug("batch flushed", zap.Int("size", len(batch)))
	}
	return make([]T, 0, b.cfg.Size)
}
