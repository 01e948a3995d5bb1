package meetings

import (
	"meeting-sync/core/logger"
	"meeting-sync/feature/meetings/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// EventsResponse is the envelope returned by the read endpoints.
type EventsResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message,omitempty"`
	Data    []models.CalendarEvent `json:"data"`
}

// Handler handles HTTP requests for stored meetings.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the meeting routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/events")
	group.Get("/", h.HandleGetAllEvents)
	group.Get("/today", h.HandleGetTodayMeetings)
	group.Get("/today.ics", h.HandleGetTodayCalendar)
}

// HandleGetAllEvents returns every stored meeting.
// @Summary List meetings
// @Description Returns every synced meeting, latest start first.
// @Tags events
// @Produce json
// @Success 200 {object} EventsResponse
// @Failure 500 {object} EventsResponse
// @Router /events [get]
func (h *Handler) HandleGetAllEvents(c *fiber.Ctx) error {
	events, err := h.service.GetAllEvents(c.UserContext())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to load events", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(EventsResponse{
			Success: false,
			Message: "Failed to fetch events",
			Data:    events,
		})
	}
	return c.JSON(EventsResponse{Success: true, Data: events})
}

// HandleGetTodayMeetings returns today's active meetings.
// @Summary Today's meetings
// @Description Returns active meetings starting today in the configured UTC offset, earliest first.
// @Tags events
// @Produce json
// @Success 200 {object} EventsResponse
// @Failure 500 {object} EventsResponse
// @Router /events/today [get]
func (h *Handler) HandleGetTodayMeetings(c *fiber.Ctx) error {
	events, err := h.service.GetTodayActiveMeetings(c.UserContext())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to load today's meetings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(EventsResponse{
			Success: false,
			Message: "Failed to fetch today's meetings",
			Data:    events,
		})
	}
	return c.JSON(EventsResponse{Success: true, Data: events})
}

// HandleGetTodayCalendar returns today's active meetings as an iCalendar feed.
// @Summary Today's meetings as iCalendar
// @Tags events
// @Produce text/calendar
// @Success 200 {string} string
// @Failure 500 {object} EventsResponse
// @Router /events/today.ics [get]
func (h *Handler) HandleGetTodayCalendar(c *fiber.Ctx) error {
	events, err := h.service.GetTodayActiveMeetings(c.UserContext())
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to build today's calendar", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(EventsResponse{
			Success: false,
			Message: "Failed to fetch today's meetings",
			Data:    events,
		})
	}

	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	return c.SendString(BuildCalendar(events, h.service.now()))
}
