// Package workerpool fans work items out over a fixed set of goroutines.
package workerpool

import (
	"context"
	"sync"
)

// Process distributes items across workerCount goroutines and blocks until
// all of them are handled. The first error cancels the remaining work and is
// returned; a canceled parent context surfaces as its context error.
func Process[T any](ctx context.Context, workerCount int, items []T, fn func(context.Context, T) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
			cancel()
		})
	}

	queue := make(chan T)
	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range queue {
				if ctx.Err() != nil {
					return
				}
				if err := fn(ctx, item); err != nil {
					fail(err)
					return
				}
			}
		}()
	}

	go func() {
		defer close(queue)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case queue <- item:
			}
		}
	}()

	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
