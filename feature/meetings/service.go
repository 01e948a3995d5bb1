package meetings

import (
	"context"
	"time"

	"meeting-sync/core/utils"
	"meeting-sync/feature/meetings/models"

	"go.uber.org/zap"
)

// Reader is the read side of the store.
type Reader interface {
	ListAll(ctx context.Context) ([]models.CalendarEvent, error)
	ListActiveOn(ctx context.Context, date string) ([]models.CalendarEvent, error)
}

// Service is the read-only facade over the store for API consumers.
type Service struct {
	store  Reader
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

// NewService creates a query service computing "today" in loc.
func NewService(store Reader, loc *time.Location, logger *zap.Logger) *Service {
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, loc: loc, now: time.Now, logger: logger}
}

// Today returns the current calendar date in the service's fixed offset.
func (s *Service) Today() string {
	return utils.DateIn(s.now(), s.loc)
}

// GetAllEvents returns every event, latest start first. On failure it returns an
// empty, non-nil slice together with the error.
func (s *Service) GetAllEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	events, err := s.store.ListAll(ctx)
	if err != nil {
		return []models.CalendarEvent{}, err
	}
	return nonNil(events), nil
}

// GetTodayActiveMeetings returns today's active meetings, earliest first. On
// failure it returns an empty, non-nil slice together with the error.
func (s *Service) GetTodayActiveMeetings(ctx context.Context) ([]models.CalendarEvent, error) {
	today := s.Today()
	events, err := s.store.ListActiveOn(ctx, today)
	if err != nil {
		return []models.CalendarEvent{}, err
	}
	s.logger.Debug("Loaded today's active meetings", zap.String("date", today), zap.Int("count", len(events)))
	return nonNil(events), nil
}

func nonNil(events []models.CalendarEvent) []models.CalendarEvent {
	if events == nil {
		return []models.CalendarEvent{}
	}
	return events
}
