package retry

import (
	"context"
	"time"
)

// SetSleep replaces the backoff sleep so tests can record delays without waiting.
func (r *Retryer) SetSleep(fn func(ctx context.Context, d time.Duration) error) {
	r.sleep = fn
}

func (r *Retryer) Delay(n int, lastErr error) time.Duration {
	return r.delay(n, lastErr)
}
