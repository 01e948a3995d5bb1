package cmd

import (
	"context"
	"fmt"

	"meeting-sync/core/calendly"
	"meeting-sync/core/config"
	"meeting-sync/core/database"
	"meeting-sync/core/notify"
	"meeting-sync/core/reconcile"
	"meeting-sync/core/retry"
	"meeting-sync/core/storage"
	"meeting-sync/feature/calendlysync"
	"meeting-sync/feature/integrity"
	"meeting-sync/feature/meetings"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds the wired components shared by the server and the CLI.
type runtime struct {
	db        *gorm.DB
	store     *meetings.Store
	remote    *calendly.Client
	objects   storage.Client
	slot      *reconcile.Slot
	archive   *calendlysync.Archive
	publisher *notify.Publisher
	logger    *zap.Logger
}

// openStore connects to the database and migrates the events table.
func openStore(ctx context.Context, cfg *config.Config) (*gorm.DB, *meetings.Store, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	store := meetings.NewStore(db, cfg.Query.Location())
	if err := store.Migrate(ctx); err != nil {
		closeDB(db)
		return nil, nil, err
	}
	return db, store, nil
}

// newRuntime wires storage, the Calendly client, the sync slot and its hooks.
// Archive and notification failures at startup are logged and the hook left out.
func newRuntime(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*runtime, error) {
	db, store, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	retryer := retry.NewRetryer(cfg.Retry, calendly.IsRetryable, logg)
	client, err := calendly.NewClient(cfg.Calendly, retryer, logg)
	if err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to create calendly client: %w", err)
	}

	reconciler := calendlysync.NewReconciler(client, store, cfg.Reconcile, logg)
	rt := &runtime{
		db:     db,
		store:  store,
		remote: client,
		slot:   reconcile.NewSlot(reconciler.Run, logg),
		logger: logg,
	}

	if cfg.Storage.Enabled {
		if objects, archive, err := newArchive(ctx, cfg.Storage, logg); err != nil {
			logg.Warn("Sync report archive unavailable", zap.Error(err))
		} else {
			rt.objects = objects
			rt.archive = archive
			rt.slot.OnComplete(archive.Hook)
		}
	}

	if cfg.Nats.Enabled() {
		if publisher, err := notify.Connect(cfg.Nats, logg); err != nil {
			logg.Warn("Sync notifications unavailable", zap.Error(err))
		} else {
			rt.publisher = publisher
			rt.slot.OnComplete(publisher.Hook)
		}
	}

	return rt, nil
}

func newArchive(ctx context.Context, cfg storage.Config, logg *zap.Logger) (storage.Client, *calendlysync.Archive, error) {
	client, err := storage.NewClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := storage.EnsureBucket(ctx, client, cfg.Bucket, cfg.Region); err != nil {
		return nil, nil, err
	}
	logg.Info("Sync report archive enabled", zap.String("bucket", cfg.Bucket))
	return client, calendlysync.NewArchive(client, cfg.Bucket, logg), nil
}

// integrityOptions exposes the runtime's dependencies to the integrity checks.
func (r *runtime) integrityOptions(cfg storage.Config) integrity.Options {
	return integrity.Options{
		DB:       r.db,
		Client:   r.objects,
		Bucket:   cfg.Bucket,
		Region:   cfg.Region,
		Resolver: r.remote,
	}
}

// Close releases the notification connection and the database.
func (r *runtime) Close() {
	if r.publisher != nil {
		if err := r.publisher.Close(); err != nil {
			r.logger.Warn("Failed to drain NATS connection", zap.Error(err))
		}
	}
	closeDB(r.db)
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
