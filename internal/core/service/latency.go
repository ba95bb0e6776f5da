package service

import (
	"context"
	"time"
)

// DefaultLatency is the artificial round trip every mock operation waits out.
const DefaultLatency = 500 * time.Millisecond

// simulateLatency blocks for d, or until ctx is done.
func simulateLatency(ctx context.Context, d time.Duration) error {
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

func nowUTC(now func() time.Time) time.Time {
	if now == nil {
		return time.Now().UTC()
	}
	return now().UTC()
}
