// Package clock holds small timing helpers shared across the services.
package clock

import (
	"context"
	"time"
)

// SleepWithContext blocks for d unless ctx ends first, in which case it
// returns the context's error. A non-positive duration returns immediately.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
