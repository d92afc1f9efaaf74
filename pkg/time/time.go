package time

import (
	"context"
	"time"
)

// DelayFunc blocks for the given duration or until ctx is done.
type DelayFunc func(ctx context.Context, duration time.Duration) error

// Sleep is the wall-clock DelayFunc.
func Sleep(ctx context.Context, duration time.Duration) error {
	if duration <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// NoDelay returns immediately unless ctx is already done.
func NoDelay(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
