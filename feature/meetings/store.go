package meetings

import (
	"context"
	"fmt"
	"time"

	"meeting-sync/core/utils"
	"meeting-sync/feature/meetings/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StorageError wraps any failure of the persistence layer.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Store persists calendar events.
type Store struct {
	db  *gorm.DB
	loc *time.Location
}

// NewStore creates a store. Calendar dates passed to ListActiveOn are
// interpreted in loc.
func NewStore(db *gorm.DB, loc *time.Location) *Store {
	if loc == nil {
		loc = time.UTC
	}
	return &Store{db: db, loc: loc}
}

// Migrate creates or updates the calendly_events table.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&models.CalendarEvent{}); err != nil {
		return &StorageError{Op: "migrate", Err: err}
	}
	return nil
}

// Upsert inserts the event, or overwrites every mutable column of the row with
// the same external id. It is a single statement, so readers never observe a
// partially updated row.
func (s *Store) Upsert(ctx context.Context, event *models.CalendarEvent) error {
	if event.ExternalID == "" {
		return &StorageError{Op: "upsert", Err: fmt.Errorf("external id is required")}
	}

	// The surrogate id never takes part in conflict resolution.
	row := *event
	row.ID = 0
	row.StartTime = row.StartTime.UTC()
	row.EndTime = row.EndTime.UTC()

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "calendly_event_id"}},
			DoUpdates: clause.AssignmentColumns(models.MutableColumns),
		}).
		Create(&row).Error
	if err != nil {
		return &StorageError{Op: "upsert", Err: err}
	}
	event.ID = row.ID
	return nil
}

// ListAll returns every stored event, latest start first.
func (s *Store) ListAll(ctx context.Context) ([]models.CalendarEvent, error) {
	var events []models.CalendarEvent
	err := s.db.WithContext(ctx).
		Order("event_start DESC").
		Order("id DESC").
		Find(&events).Error
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	return events, nil
}

// ListActiveOn returns active events starting on the given calendar date
// (YYYY-MM-DD, in the store's location), earliest first.
func (s *Store) ListActiveOn(ctx context.Context, date string) ([]models.CalendarEvent, error) {
	from, to, err := utils.DayBounds(date, s.loc)
	if err != nil {
		return nil, &StorageError{Op: "list active", Err: fmt.Errorf("invalid date %q: %w", date, err)}
	}

	var events []models.CalendarEvent
	err = s.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Where("event_start >= ? AND event_start < ?", from, to).
		Order("event_start ASC").
		Order("id ASC").
		Find(&events).Error
	if err != nil {
		return nil, &StorageError{Op: "list active", Err: err}
	}
	return events, nil
}

// FindByExternalID returns the event with the given external id, or nil.
func (s *Store) FindByExternalID(ctx context.Context, externalID string) (*models.CalendarEvent, error) {
	var events []models.CalendarEvent
	err := s.db.WithContext(ctx).
		Where("calendly_event_id = ?", externalID).
		Limit(1).
		Find(&events).Error
	if err != nil {
		return nil, &StorageError{Op: "find", Err: err}
	}
	if len(events) == 0 {
		return nil, nil
	}
	return &events[0], nil
}
