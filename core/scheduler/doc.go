// Package scheduler fires reconciliation passes on a fixed interval.
//
// A Scheduler owns its lifecycle explicitly (Start/Stop) instead of running a
// free global timer, so the start command can stop it on shutdown and tests can
// drive it. Ticks go through Runner.TryRun on the shared reconcile.Slot: a tick
// that finds a pass in flight, whether fired by a previous tick or by POST /sync,
// is skipped. Failed passes are logged and retried on the next tick; they never
// crash the process.
package scheduler
