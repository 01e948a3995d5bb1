package calendlysync

import (
	"context"
	"fmt"
	"iter"

	"meeting-sync/core/calendly"
	"meeting-sync/core/reconcile"
	"meeting-sync/core/utils"
	"meeting-sync/feature/meetings/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RemoteClient is the slice of the Calendly API a pass needs.
type RemoteClient interface {
	GetIdentity(ctx context.Context) (string, error)
	ListScheduledEvents(ctx context.Context, userURI string) iter.Seq2[calendly.RemoteEvent, error]
	ListInvitees(ctx context.Context, eventID string) iter.Seq2[calendly.RemoteInvitee, error]
}

// Store is where reconciled events are written.
type Store interface {
	Upsert(ctx context.Context, event *models.CalendarEvent) error
}

// Reconciler runs one pass of pulling Calendly events into the local store.
type Reconciler struct {
	remote RemoteClient
	store  Store
	cfg    reconcile.Config
	logger *zap.Logger
}

// NewReconciler creates a reconciler.
func NewReconciler(remote RemoteClient, store Store, cfg reconcile.Config, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{remote: remote, store: store, cfg: cfg.Normalized(), logger: logger}
}

type inviteeOutcome struct {
	invitee calendly.RemoteInvitee
	found   bool
	err     error
}

// Run performs one pass. Events are streamed page by page and processed in
// batches: invitees of a batch are fetched concurrently, then the batch is
// upserted in fetch order. A failure scoped to one event is counted and the
// pass continues; an identity, authentication or listing failure aborts it.
// The returned Result is meaningful even when err is non-nil.
func (r *Reconciler) Run(ctx context.Context) (reconcile.Result, error) {
	var result reconcile.Result

	userURI, err := r.remote.GetIdentity(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to resolve calendly user: %w", err)
	}

	batch := make([]calendly.RemoteEvent, 0, r.cfg.BatchSize)
	for event, err := range r.remote.ListScheduledEvents(ctx, userURI) {
		if err != nil {
			if calendly.IsValidation(err) {
				result.Failed++
				r.logger.Warn("Skipping malformed scheduled event", zap.Error(err))
				continue
			}
			if batchErr := r.processBatch(ctx, batch, &result); batchErr != nil {
				return result, batchErr
			}
			return result, fmt.Errorf("failed to list scheduled events: %w", err)
		}

		batch = append(batch, event)
		if len(batch) < r.cfg.BatchSize {
			continue
		}
		if err := r.processBatch(ctx, batch, &result); err != nil {
			return result, err
		}
		batch = batch[:0]
	}

	if err := r.processBatch(ctx, batch, &result); err != nil {
		return result, err
	}
	return result, nil
}

func (r *Reconciler) processBatch(ctx context.Context, batch []calendly.RemoteEvent, result *reconcile.Result) error {
	if len(batch) == 0 {
		return nil
	}

	outcomes := make([]inviteeOutcome, len(batch))
	var g errgroup.Group
	g.SetLimit(r.cfg.Workers)
	for i, event := range batch {
		g.Go(func() error {
			inv, found, err := r.firstInvitee(ctx, utils.LastPathSegment(event.URI))
			outcomes[i] = inviteeOutcome{invitee: inv, found: found, err: err}
			return nil
		})
	}
	_ = g.Wait()

	for i, event := range batch {
		out := outcomes[i]
		log := r.logger.With(zap.String("event_uri", event.URI))

		switch {
		case out.err != nil && calendly.IsAuth(out.err):
			return fmt.Errorf("failed to fetch invitees: %w", out.err)
		case out.err != nil:
			result.Failed++
			log.Warn("Failed to fetch invitees", zap.Error(out.err))
		case !out.found:
			result.Skipped++
			log.Debug("Event has no invitees")
		default:
			if err := r.upsert(ctx, event, out.invitee); err != nil {
				result.Failed++
				log.Warn("Failed to store event", zap.Error(err))
				continue
			}
			result.Processed++
		}
	}
	return nil
}

// firstInvitee returns the first invitee of the event and stops paging there.
func (r *Reconciler) firstInvitee(ctx context.Context, eventID string) (calendly.RemoteInvitee, bool, error) {
	if eventID == "" {
		return calendly.RemoteInvitee{}, false, fmt.Errorf("event has no identifier")
	}
	for inv, err := range r.remote.ListInvitees(ctx, eventID) {
		if err != nil {
			return calendly.RemoteInvitee{}, false, err
		}
		return inv, true, nil
	}
	return calendly.RemoteInvitee{}, false, nil
}

func (r *Reconciler) upsert(ctx context.Context, event calendly.RemoteEvent, invitee calendly.RemoteInvitee) error {
	record, err := Normalize(event, invitee)
	if err != nil {
		return err
	}
	return r.store.Upsert(ctx, &record)
}
