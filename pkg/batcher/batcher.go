// Package batcher accumulates items and hands them to a sink in bounded batches.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Batcher collects items from Add and flushes them to the sink callback when
// the buffer fills or the interval elapses, whichever comes first. Flushes
// are paced by a rate limiter so a burst of input cannot overwhelm the sink.
type Batcher[T any] struct {
	sink     func(context.Context, []T) error
	input    chan T
	size     int
	interval time.Duration
	limiter  ratelimit.Limiter
	logger   *zap.Logger

	wg   sync.WaitGroup
	quit chan struct{}
}

// New constructs a Batcher that flushes through sink.
func New[T any](logger *zap.Logger, sink func(context.Context, []T) error, flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	return &Batcher[T]{
		logger:   logger,
		sink:     sink,
		input:    make(chan T, flushSize*2),
		size:     flushSize,
		interval: flushInterval,
		limiter:  ratelimit.New(rps),
		quit:     make(chan struct{}),
	}
}

// Start launches the background flush loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes whatever is buffered and stops the loop.
func (b *Batcher[T]) Stop() {
	close(b.quit)
	b.wg.Wait()
}

// Add queues an item for the next batch. It fails with context.Canceled once
// the batcher has been stopped.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.quit:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.input <- item:
		return nil
	}
}

// drainInto empties the input buffer into pending so items accepted by Add
// before shutdown make it into the final flush.
func (b *Batcher[T]) drainInto(pending []T) []T {
	for {
		select {
		case item := <-b.input:
			pending = append(pending, item)
		default:
			return pending
		}
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	pending := make([]T, 0, b.size)

	for {
		select {
		case <-ctx.Done():
			b.flush(context.WithoutCancel(ctx), b.drainInto(pending))
			return

		case <-b.quit:
			b.flush(context.WithoutCancel(ctx), b.drainInto(pending))
			return

		case item := <-b.input:
			pending = append(pending, item)
			if len(pending) >= b.size {
				pending = b.flush(ctx, pending)
			}

		case <-ticker.C:
			pending = b.flush(ctx, pending)
		}
	}
}

// flush drains pending through the sink. Errors are logged, not returned:
// the loop keeps accepting input either way.
func (b *Batcher[T]) flush(ctx context.Context, pending []T) []T {
	if len(pending) == 0 {
		return pending
	}

	b.limiter.Take()
	if err := b.sink(ctx, pending); err != nil {
		b.logger.Error("batch not flushed", zap.Error(err), zap.Int("items", len(pending)))
	} else {
		b.logger.Debug("batch flushed", zap.Int("items", len(pending)))
	}
	return pending[:0]
}
