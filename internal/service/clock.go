package service

import (
	"context"
	"time"
)

// Clock abstracts the simulated-latency sleep so callers can swap the real
// timer out for an instant one in tests.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock sleeps in real time, honouring context cancellation.
type SystemClock struct{}

func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InstantClock resolves immediately. Tests use it so the 800ms simulated
// backend answers synchronously.
type InstantClock struct{}

func (InstantClock) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
