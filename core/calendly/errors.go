package calendly

import (
	"errors"
	"fmt"
	"time"
)

// AuthError means the credential was rejected (401/403). It is never retried
// and aborts the enclosing sync pass.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("calendly rejected credential (HTTP %d): %s", e.StatusCode, e.Message)
}

// NetworkError covers transport failures, per-call timeouts and 5xx responses.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("calendly request %s failed with HTTP %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("calendly request %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// RateLimitError is returned for HTTP 429.
type RateLimitError struct {
	URL        string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("calendly rate limit hit on %s (retry after %s)", e.URL, e.RetryAfter)
}

// RetryDelay lets the retryer wait at least as long as the server asked.
func (e *RateLimitError) RetryDelay() time.Duration {
	return e.RetryAfter
}

// APIError is any other non-2xx response.
type APIError struct {
	URL        string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("calendly request %s failed with HTTP %d: %s", e.URL, e.StatusCode, e.Message)
}

// ValidationError marks a single collection item that failed payload validation.
// The listing continues past it.
type ValidationError struct {
	Resource string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid calendly payload for %q: %v", e.Resource, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsAuth reports whether err is (or wraps) an *AuthError.
func IsAuth(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsRetryable reports whether err is a transient network or rate-limit failure.
func IsRetryable(err error) bool {
	var netErr *NetworkError
	var rateErr *RateLimitError
	return errors.As(err, &netErr) || errors.As(err, &rateErr)
}

// IsValidation reports whether err is a per-item *ValidationError.
func IsValidation(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
