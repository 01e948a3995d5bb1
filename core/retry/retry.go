package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// Classifier reports whether an error is worth another attempt.
type Classifier func(err error) bool

// DelayHinter is implemented by errors that carry a server-provided wait, such
// as a Retry-After header on a rate-limited response.
type DelayHinter interface {
	RetryDelay() time.Duration
}

// ExhaustedError is returned when every attempt failed with a retryable error.
type ExhaustedError struct {
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("operation failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// Retryer runs operations with exponential backoff.
type Retryer struct {
	config    Config
	retryable Classifier
	logger    *zap.Logger
	sleep     func(ctx context.Context, d time.Duration) error
}

// NewRetryer creates a Retryer. A nil classifier retries every error except
// context cancellation.
func NewRetryer(config Config, retryable Classifier, logger *zap.Logger) *Retryer {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 1
	}
	if config.BackoffFactor < 1 {
		config.BackoffFactor = 1
	}
	if retryable == nil {
		retryable = func(error) bool { return true }
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Retryer{
		config:    config,
		retryable: retryable,
		logger:    logger,
		sleep:     sleepContext,
	}
}

// Do executes op until it succeeds, returns a non-retryable error, the context
// ends, or MaxAttempts is reached. Non-retryable errors are returned unwrapped.
func Do[T any](ctx context.Context, r *Retryer, op func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error
	start := time.Now()

	for attempt := 1; attempt <= r.config.MaxAttempts; attempt++ {
		if attempt > 1 {
			delay := r.delay(attempt-1, lastErr)
			r.logger.Debug("Retrying after delay",
				zap.Int("attempt", attempt),
				zap.Int("max_attempts", r.config.MaxAttempts),
				zap.Duration("delay", delay),
				zap.Error(lastErr))

			if err := r.sleep(ctx, delay); err != nil {
				return zero, fmt.Errorf("retry cancelled by context: %w", err)
			}
		}

		result, err := op(ctx)
		if err == nil {
			if attempt > 1 {
				r.logger.Info("Operation succeeded after retry",
					zap.Int("attempt", attempt),
					zap.Duration("elapsed", time.Since(start)))
			}
			return result, nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || !r.retryable(err) {
			return zero, err
		}
	}

	r.logger.Warn("Max retry attempts reached",
		zap.Int("attempts", r.config.MaxAttempts),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(lastErr))

	return zero, &ExhaustedError{Attempts: r.config.MaxAttempts, Err: lastErr}
}

// delay computes the wait before retry number n (1-based).
func (r *Retryer) delay(n int, lastErr error) time.Duration {
	d := float64(r.config.initialDelay()) * math.Pow(r.config.BackoffFactor, float64(n-1))
	if maxDelay := float64(r.config.maxDelay()); maxDelay > 0 && d > maxDelay {
		d = maxDelay
	}
	if r.config.Jitter {
		d += rand.Float64() * 0.1 * d
	}

	delay := time.Duration(d)
	var hint DelayHinter
	if errors.As(lastErr, &hint) && hint.RetryDelay() > delay {
		delay = hint.RetryDelay()
	}
	return delay
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
