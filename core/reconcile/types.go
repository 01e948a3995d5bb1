package reconcile

import (
	"context"
	"errors"
	"time"
)

// Trigger identifies what started a reconciliation pass.
type Trigger string

const (
	// TriggerTimer is a scheduler tick.
	TriggerTimer Trigger = "timer"
	// TriggerManual is an on-demand request (HTTP or CLI).
	TriggerManual Trigger = "manual"
)

// ErrInProgress is returned by TryRun when a pass already occupies the slot.
var ErrInProgress = errors.New("a reconciliation pass is already in progress")

// Result counts the outcome of one pass.
type Result struct {
	// Processed is the number of events upserted.
	Processed int `json:"processed"`
	// Skipped is the number of events without any invitee.
	Skipped int `json:"skipped"`
	// Failed is the number of events whose fetch, validation or upsert failed.
	Failed int `json:"failed"`
}

// Report describes one finished pass.
type Report struct {
	// RunID uniquely identifies the pass.
	RunID string `json:"run_id"`
	// Trigger is what started the pass.
	Trigger Trigger `json:"trigger"`
	// StartedAt is when the pass acquired the slot.
	StartedAt time.Time `json:"started_at"`
	// FinishedAt is when the pass released the slot.
	FinishedAt time.Time `json:"finished_at"`
	// Result holds the per-event counters, including those of a pass that failed fatally.
	Result Result `json:"result"`
	// Error is the fatal error text, empty on success.
	Error string `json:"error,omitempty"`
}

// Succeeded reports whether the pass completed without a fatal error.
func (r Report) Succeeded() bool {
	return r.Error == ""
}

// Duration is the wall-clock time the pass held the slot.
func (r Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// RunFunc performs one reconciliation pass.
type RunFunc func(ctx context.Context) (Result, error)

// Hook observes every finished pass (archiving, notifications).
type Hook func(ctx context.Context, report Report)
