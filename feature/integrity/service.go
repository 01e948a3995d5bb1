package integrity

import (
	"context"
	"errors"
	"fmt"

	"meeting-sync/core/storage"
	"meeting-sync/feature/calendlysync"
	"meeting-sync/feature/integrity/checks"
	"meeting-sync/feature/meetings/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrStorageDisabled is returned by storage checks when archiving is off.
var ErrStorageDisabled = errors.New("report archive is disabled")

// Service handles integrity checks.
type Service struct {
	db       *gorm.DB
	client   storage.Client
	bucket   string
	region   string
	resolver checks.IdentityResolver
	logger   *zap.Logger
}

// Options are the dependencies of the service. Client may be nil when the
// report archive is disabled.
type Options struct {
	DB       *gorm.DB
	Client   storage.Client
	Bucket   string
	Region   string
	Resolver checks.IdentityResolver
}

// NewService creates a new integrity service.
func NewService(opts Options, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		db:       opts.DB,
		client:   opts.Client,
		bucket:   opts.Bucket,
		region:   opts.Region,
		resolver: opts.Resolver,
		logger:   logger,
	}
}

// CheckSchema compares the events table against the model.
func (s *Service) CheckSchema(ctx context.Context) (*checks.SchemaReport, error) {
	if s.db == nil {
		return checks.CheckSchema(nil, &models.CalendarEvent{})
	}
	return checks.CheckSchema(s.db.WithContext(ctx), &models.CalendarEvent{})
}

// FixSchema migrates the events table.
func (s *Service) FixSchema(ctx context.Context) error {
	if s.db == nil {
		return fmt.Errorf("database connection is nil")
	}
	return s.db.WithContext(ctx).AutoMigrate(&models.CalendarEvent{})
}

// CheckStorage checks the report archive bucket.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	if s.client == nil {
		return nil, ErrStorageDisabled
	}
	return checks.CheckStorage(ctx, s.client, s.bucket, calendlysync.ReportPrefix)
}

// FixStorage creates the report archive bucket.
func (s *Service) FixStorage(ctx context.Context) error {
	if s.client == nil {
		return ErrStorageDisabled
	}
	return checks.FixStorage(ctx, s.client, s.bucket, s.region, s.logger)
}

// CheckCredential validates the Calendly credential.
func (s *Service) CheckCredential(ctx context.Context) checks.CredentialReport {
	if s.resolver == nil {
		return checks.CredentialReport{Status: "unreachable", Error: "calendly client is not configured"}
	}
	return checks.CheckCredential(ctx, s.resolver)
}

// CheckAll runs every check and collects the results by name.
func (s *Service) CheckAll(ctx context.Context) map[string]any {
	report := make(map[string]any)

	if schema, err := s.CheckSchema(ctx); err != nil {
		report["schema"] = map[string]any{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	if store, err := s.CheckStorage(ctx); err != nil {
		status := "error"
		if errors.Is(err, ErrStorageDisabled) {
			status = "disabled"
		}
		report["storage"] = map[string]any{"status": status, "error": err.Error()}
	} else {
		report["storage"] = store
	}

	report["calendly"] = s.CheckCredential(ctx)
	return report
}
