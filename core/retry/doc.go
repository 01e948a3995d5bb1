// Package retry runs remote calls with exponential backoff.
//
// A Retryer is built from Config (attempts, initial and maximum delay, backoff
// factor, jitter) and a Classifier that decides which errors are transient. Errors
// implementing DelayHinter stretch the wait to at least the hinted duration, which
// is how a Retry-After header on a 429 response is honoured.
//
// Non-retryable errors are returned as-is so callers can still match them with
// errors.As; exhausting all attempts yields an *ExhaustedError wrapping the last
// failure.
//
//	r := retry.NewRetryer(cfg.Retry, calendly.IsRetryable, logger)
//	user, err := retry.Do(ctx, r, func(ctx context.Context) (string, error) {
//	    return fetch(ctx)
//	})
package retry
