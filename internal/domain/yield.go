package domain

import (
	"context"
	"runtime"
	"time"
)

// Yield is the cooperative pause between units of work. A non-positive d
// only yields the processor. It returns ctx.Err() if ctx ends first.
func Yield(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		runtime.Gosched()
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
