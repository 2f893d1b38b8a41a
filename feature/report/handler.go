package report

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"ornasync/core/logger"
	"ornasync/core/utils"
)

// Handler handles HTTP requests for run history.
type Handler struct {
	store *Store
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes registers the run history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/runs")
	group.Get("/", h.HandleListRuns)
	group.Get("/:id", h.HandleGetRun)
}

// HandleListRuns returns the most recent runs without their children.
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.store.log, c)

	limit := utils.ToInt(c.Query("limit"))
	runs, err := h.store.LastRuns(c.Context(), limit)
	if err != nil {
		l.Error("Run listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(runs)
}

// HandleGetRun returns one run with its mismatches and missing entities.
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.store.log, c)

	run, err := h.store.Run(c.Context(), c.Params("id"))
	if err != nil {
		l.Warn("Run lookup failed", zap.Error(err))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(run)
}
