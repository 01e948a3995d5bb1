// Package calendlysync pulls scheduled events from Calendly into the local
// meetings store.
//
// A Reconciler performs one pass: it resolves the authenticated user, streams
// that user's scheduled events, resolves each event's first invitee and upserts
// the normalized record. Failures scoped to a single event are counted and do not
// stop the pass. Passes are serialized by a reconcile.Slot, which the HTTP
// handler, the CLI and the scheduler share. Finished pass reports can be
// archived to object storage.
package calendlysync
