package time

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSleep(t *testing.T) {
	t.Run("waits", func(t *testing.T) {
		start := time.Now()
		if err := Sleep(context.Background(), 5*time.Millisecond); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
			t.Errorf("got elapsed %v, expected at least %v", elapsed, 5*time.Millisecond)
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if err := Sleep(ctx, time.Hour); !errors.Is(err, context.Canceled) {
			t.Errorf("got error %v, expected %v", err, context.Canceled)
		}
	})
}

func TestNoDelay(t *testing.T) {
	if err := NoDelay(context.Background(), time.Hour); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
