package calendlysync

import (
	"context"
	"errors"

	"meeting-sync/core/logger"
	"meeting-sync/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SyncMessage is returned when an on-demand pass completes.
const SyncMessage = "Calendly events synced successfully"

// Trigger runs passes and reports their state.
type Trigger interface {
	Run(ctx context.Context, trigger reconcile.Trigger) (reconcile.Report, error)
	Running() bool
	Last() (reconcile.Report, bool)
}

// SyncResponse is the envelope of POST /sync.
type SyncResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    *reconcile.Result `json:"data,omitempty"`
}

// StatusResponse is the envelope of GET /sync/status.
type StatusResponse struct {
	Success bool       `json:"success"`
	Data    SyncStatus `json:"data"`
}

// SyncStatus describes the sync slot.
type SyncStatus struct {
	Running bool              `json:"running"`
	Last    *reconcile.Report `json:"last,omitempty"`
}

// ReportsResponse is the envelope of GET /sync/reports.
type ReportsResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Data    []string `json:"data"`
}

// Handler handles HTTP requests for synchronization.
type Handler struct {
	trigger Trigger
	archive *Archive
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler. archive may be nil when report
// archiving is disabled.
func NewHandler(trigger Trigger, archive *Archive, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{trigger: trigger, archive: archive, logger: logger}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/", h.HandleSync)
	group.Get("/status", h.HandleStatus)
	group.Get("/reports", h.HandleListReports)
	group.Get("/reports/:name", h.HandleGetReport)
}

// HandleSync runs a sync pass, or waits for the one already running.
// @Summary Sync Calendly events
// @Description Pulls scheduled events from Calendly and upserts them locally. Joins a pass already in progress.
// @Tags sync
// @Produce json
// @Success 200 {object} SyncResponse
// @Failure 500 {object} SyncResponse
// @Router /sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	report, err := h.trigger.Run(c.UserContext(), reconcile.TriggerManual)
	if err != nil {
		l.Error("Calendly sync failed", zap.String("run_id", report.RunID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(SyncResponse{
			Success: false,
			Message: err.Error(),
		})
	}

	l.Info("Calendly sync requested", zap.String("run_id", report.RunID))
	result := report.Result
	return c.JSON(SyncResponse{Success: true, Message: SyncMessage, Data: &result})
}

// HandleStatus reports whether a pass is running and the last report.
// @Summary Sync status
// @Tags sync
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /sync/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	status := SyncStatus{Running: h.trigger.Running()}
	if last, ok := h.trigger.Last(); ok {
		status.Last = &last
	}
	return c.JSON(StatusResponse{Success: true, Data: status})
}

// HandleListReports lists archived sync reports, newest first.
// @Summary List sync reports
// @Tags sync
// @Produce json
// @Param limit query int false "Maximum number of reports" default(20)
// @Success 200 {object} ReportsResponse
// @Failure 404 {object} ReportsResponse
// @Failure 500 {object} ReportsResponse
// @Router /sync/reports [get]
func (h *Handler) HandleListReports(c *fiber.Ctx) error {
	if h.archive == nil {
		return c.Status(fiber.StatusNotFound).JSON(ReportsResponse{
			Success: false,
			Message: "Report archive is disabled",
			Data:    []string{},
		})
	}

	names, err := h.archive.List(c.UserContext(), c.QueryInt("limit", 20))
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to list sync reports", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ReportsResponse{
			Success: false,
			Message: "Failed to list sync reports",
			Data:    []string{},
		})
	}
	return c.JSON(ReportsResponse{Success: true, Data: names})
}

// HandleGetReport returns one archived sync report.
// @Summary Get sync report
// @Tags sync
// @Produce json
// @Param name path string true "Report name as returned by /sync/reports"
// @Success 200 {object} reconcile.Report
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /sync/reports/{name} [get]
func (h *Handler) HandleGetReport(c *fiber.Ctx) error {
	if h.archive == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Report archive is disabled",
		})
	}

	report, err := h.archive.Get(c.UserContext(), c.Params("name"))
	if errors.Is(err, ErrReportNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Sync report not found",
		})
	}
	if err != nil {
		logger.WithRayID(h.logger, c).Error("Failed to load sync report", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to load sync report",
		})
	}
	return c.JSON(report)
}
