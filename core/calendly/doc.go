// Package calendly is the authenticated accessor for the Calendly v2 REST API.
//
// Only three resources are used:
//   - GET /users/me: the identity owning the personal access token.
//   - GET /scheduled_events?user=...: the user's scheduled events.
//   - GET /scheduled_events/{uuid}/invitees: the invitees of one event.
//
// The bearer token is injected once through Config and attached to every request
// by an oauth2 static token transport. Collections are exposed as lazy iter.Seq2
// sequences that follow pagination.next_page until it is null, so a consumer that
// stops early (the reconciler only wants the first invitee) never fetches the
// remaining pages.
//
// # Errors
//
// Every call is bounded by Config.TimeoutSeconds and wrapped in core/retry:
//   - *AuthError (401/403) is returned immediately and never retried.
//   - *NetworkError (transport failure, timeout, 408, 5xx) and *RateLimitError
//     (429, honouring Retry-After) are retried with backoff.
//   - *APIError covers any other status.
//   - *ValidationError is yielded for a single collection item that fails
//     go-playground/validator checks; the listing continues after it.
package calendly
