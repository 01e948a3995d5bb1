// Package reconcile coordinates reconciliation passes between the remote
// scheduling service and the local store.
//
// The central type is Slot, the single execution slot shared by the scheduler
// tick and on-demand triggers (POST /sync, the sync CLI command). The slot is
// built on golang.org/x/sync/singleflight:
//
//   - Run executes a pass, or joins the one already in flight and receives its
//     report. Two passes never execute concurrently, so no two writers race on
//     the same external event id.
//   - TryRun returns ErrInProgress instead of waiting; the scheduler uses it so
//     that a tick arriving during a long pass is skipped rather than queued.
//
// Every finished pass produces a Report (run id, trigger, timestamps, Result
// counters and fatal error text). The latest report is kept for the status
// endpoint, and hooks registered with OnComplete receive each report (archive
// to object storage, publish to NATS).
//
// # Usage
//
//	slot := reconcile.NewSlot(reconciler.Run, logger)
//	slot.OnComplete(archive.Store)
//	report, err := slot.Run(ctx, reconcile.TriggerManual)
package reconcile
