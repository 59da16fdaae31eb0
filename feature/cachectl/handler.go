package cachectl

import (
	"errors"

	"pokemasdb/core/entity"
	"pokemasdb/core/logger"
	"pokemasdb/core/registry"
	"pokemasdb/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the cache lifecycle.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the cache routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/cache")
	group.Get("/status", h.HandleStatus)
	group.Post("/reinitialize", h.HandleReinitialize)
	group.Delete("/", h.HandleInvalidate)
}

// HandleStatus returns the registry status.
// @Summary Cache Status
// @Description Get the registry state, cache sizes and the outcome of the last build.
// @Tags cache
// @Produce json
// @Success 200 {object} registry.Status "Status"
// @Router /cache/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	return c.JSON(h.service.Status())
}

// HandleReinitialize rebuilds the caches.
// @Summary Reinitialize Caches
// @Description Drop and rebuild every cache. Runs in the background unless wait is true.
// @Tags cache
// @Produce json
// @Param wait query bool false "Block until the build finishes"
// @Success 200 {object} registry.Status "Rebuilt"
// @Success 202 {object} map[string]string "Accepted"
// @Failure 409 {object} map[string]string "Invalidated During Build"
// @Failure 502 {object} map[string]string "Source Failure"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /cache/reinitialize [post]
func (h *Handler) HandleReinitialize(c *fiber.Ctx) error {
	if !c.QueryBool("wait") {
		h.service.Submit(c.UserContext())
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"status": "accepted"})
	}

	if err := h.service.Rebuild(c.UserContext()); err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Cache rebuild failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(h.service.Status())
}

// HandleInvalidate drops the published caches.
// @Summary Invalidate Caches
// @Description Drop every cache. Lookups answer 503 until the next build.
// @Tags cache
// @Success 204 "No Content"
// @Router /cache [delete]
func (h *Handler) HandleInvalidate(c *fiber.Ctx) error {
	h.service.Invalidate()
	return c.SendStatus(fiber.StatusNoContent)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, registry.ErrInvalidated):
		return fiber.StatusConflict
	case errors.Is(err, source.ErrUnavailable),
		errors.Is(err, source.ErrTrainerNotFound),
		errors.Is(err, entity.ErrParse):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
