package calendly

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"meeting-sync/core/retry"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Client is the authenticated accessor for the Calendly API.
type Client struct {
	baseURL  string
	pageSize int
	timeout  time.Duration
	http     *http.Client
	retryer  *retry.Retryer
	validate *validator.Validate
	logger   *zap.Logger
}

// NewClient creates a client bound to the configured personal access token.
func NewClient(cfg Config, retryer *retry.Retryer, logger *zap.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.PAT) == "" {
		return nil, errors.New("calendly personal access token is not configured")
	}
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid calendly base url %q", cfg.BaseURL)
	}
	if retryer == nil {
		retryer = retry.NewRetryer(retry.DefaultConfig(), IsRetryable, logger)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	transport := &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.PAT, TokenType: "Bearer"}),
		Base:   http.DefaultTransport,
	}

	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		pageSize: cfg.pageSize(),
		timeout:  cfg.timeout(),
		http:     &http.Client{Transport: transport},
		retryer:  retryer,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}, nil
}

// GetIdentity resolves the URI of the user owning the token.
func (c *Client) GetIdentity(ctx context.Context) (string, error) {
	var user userResponse
	if err := c.getJSON(ctx, c.baseURL+"/users/me", &user); err != nil {
		return "", err
	}
	if err := c.validate.Struct(user); err != nil {
		return "", &ValidationError{Resource: "users/me", Err: err}
	}
	return user.Resource.URI, nil
}

// ListScheduledEvents lazily walks every page of the user's scheduled events.
// Items failing validation are yielded with a *ValidationError and iteration
// continues; a request failure is yielded once and ends the sequence.
func (c *Client) ListScheduledEvents(ctx context.Context, userURI string) iter.Seq2[RemoteEvent, error] {
	q := url.Values{}
	q.Set("user", userURI)
	q.Set("count", strconv.Itoa(c.pageSize))
	first := c.baseURL + "/scheduled_events?" + q.Encode()

	return paginate(ctx, c, first, func(ev RemoteEvent) string { return ev.URI })
}

// ListInvitees lazily walks every page of one event's invitees.
func (c *Client) ListInvitees(ctx context.Context, eventID string) iter.Seq2[RemoteInvitee, error] {
	q := url.Values{}
	q.Set("count", strconv.Itoa(c.pageSize))
	first := c.baseURL + "/scheduled_events/" + url.PathEscape(eventID) + "/invitees?" + q.Encode()

	return paginate(ctx, c, first, func(inv RemoteInvitee) string {
		if inv.URI != "" {
			return inv.URI
		}
		return eventID
	})
}

func paginate[T any](ctx context.Context, c *Client, first string, resourceOf func(T) string) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		next := first
		seen := map[string]struct{}{}

		for next != "" {
			if _, dup := seen[next]; dup {
				c.logger.Warn("Calendly returned a repeated page cursor, stopping", zap.String("url", next))
				return
			}
			seen[next] = struct{}{}

			var page collectionPage[T]
			if err := c.getJSON(ctx, next, &page); err != nil {
				var zero T
				yield(zero, err)
				return
			}

			for _, item := range page.Collection {
				var err error
				if vErr := c.validate.Struct(item); vErr != nil {
					err = &ValidationError{Resource: resourceOf(item), Err: vErr}
				}
				if !yield(item, err) {
					return
				}
			}

			next = ""
			if page.Pagination.NextPage != nil {
				next = *page.Pagination.NextPage
			}
		}
	}
}

// getJSON performs a GET with retries and decodes the response body into out.
func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	body, err := retry.Do(ctx, c.retryer, func(ctx context.Context) ([]byte, error) {
		return c.fetch(ctx, rawURL)
	})
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &APIError{URL: rawURL, StatusCode: http.StatusOK, Message: "malformed response: " + err.Error()}
	}
	return nil
}

// fetch performs one bounded HTTP attempt and maps failures to typed errors.
func (c *Client) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &NetworkError{URL: rawURL, Err: err}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &AuthError{StatusCode: resp.StatusCode, Message: errorMessage(body, resp.Status)}
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitError{URL: rawURL, RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), time.Now())}
	case resp.StatusCode == http.StatusRequestTimeout || resp.StatusCode >= 500:
		return nil, &NetworkError{URL: rawURL, StatusCode: resp.StatusCode, Err: errors.New(errorMessage(body, resp.Status))}
	default:
		return nil, &APIError{URL: rawURL, StatusCode: resp.StatusCode, Message: errorMessage(body, resp.Status)}
	}
}

func errorMessage(body []byte, fallback string) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Title != "" {
			return eb.Title
		}
	}
	return fallback
}

// parseRetryAfter accepts both delta-seconds and HTTP-date forms.
func parseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}
