// Package notify publishes a message to NATS after every reconciliation pass.
//
// Downstream consumers subscribe to the configured subject to learn that the
// local meeting store has been refreshed, instead of polling the read API. The
// payload is the JSON form of the pass report: run id, trigger, success flag,
// processed/skipped/failed counters and timestamps.
//
// Publishing is optional (empty nats.url disables it) and best effort: the
// Publisher.Hook registered on the reconcile slot logs failures and never fails
// the pass.
package notify
