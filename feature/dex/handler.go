package dex

import (
	"errors"
	"net/url"

	"pokemasdb/core/aggregate"
	"pokemasdb/core/logger"
	"pokemasdb/core/registry"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for cache lookups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the lookup routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/trainers", h.HandleListTrainers)
	app.Get("/trainers/:name", h.HandleGetTrainer)
	app.Get("/pokemon", h.HandleListPokemon)
	app.Get("/pokemon/:name", h.HandleGetPokemon)
	app.Get("/moves", h.HandleListMoves)
	app.Get("/moves/:name", h.HandleGetMove)
	app.Get("/skills", h.HandleListSkills)
	app.Get("/skills/:name", h.HandleGetSkill)
}

// HandleGetTrainer returns one trainer record.
// @Summary Get Trainer
// @Description Get a trainer and its full pokemon records.
// @Tags dex
// @Produce json
// @Param name path string true "Trainer name (e.g. 'Sygna Suit Red')"
// @Success 200 {object} map[string]interface{} "Trainer"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Caches Not Initialized"
// @Router /trainers/{name} [get]
func (h *Handler) HandleGetTrainer(c *fiber.Ctx) error {
	return h.lookup(c, aggregate.KindTrainer)
}

// HandleGetPokemon returns the pokemon grouped under a name.
// @Summary Get Pokemon
// @Description Get every pokemon stored under a name, forms included.
// @Tags dex
// @Produce json
// @Param name path string true "Pokemon name (e.g. 'Charizard')"
// @Success 200 {array} map[string]interface{} "Pokemon"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Caches Not Initialized"
// @Router /pokemon/{name} [get]
func (h *Handler) HandleGetPokemon(c *fiber.Ctx) error {
	return h.lookup(c, aggregate.KindPokemon)
}

// HandleGetMove returns a move and its users.
// @Summary Get Move
// @Description Get a move and the pokemon that use it.
// @Tags dex
// @Produce json
// @Param name path string true "Move name (e.g. 'Flamethrower')"
// @Success 200 {object} map[string]interface{} "Move"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Caches Not Initialized"
// @Router /moves/{name} [get]
func (h *Handler) HandleGetMove(c *fiber.Ctx) error {
	return h.lookup(c, aggregate.KindMove)
}

// HandleGetSkill returns a passive skill and its users.
// @Summary Get Skill
// @Description Get a passive skill with its innate and sync grid users.
// @Tags dex
// @Produce json
// @Param name path string true "Skill name (e.g. 'Sharp Blade 3')"
// @Success 200 {object} map[string]interface{} "Skill"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "Caches Not Initialized"
// @Router /skills/{name} [get]
func (h *Handler) HandleGetSkill(c *fiber.Ctx) error {
	return h.lookup(c, aggregate.KindSkill)
}

// HandleListTrainers lists cached trainer names.
// @Summary List Trainers
// @Tags dex
// @Produce json
// @Success 200 {array} string "Names"
// @Failure 503 {object} map[string]string "Caches Not Initialized"
// @Router /trainers [get]
func (h *Handler) HandleListTrainers(c *fiber.Ctx) error {
	return h.list(c, aggregate.KindTrainer)
}

// HandleListPokemon lists cached pokemon names.
// @Summary List Pokemon
// @Tags dex
// @Produce json
// @Success 200 {array} string "Names"
// @Failure 503 {object} map[string]string "Caches Not Initialized"
// @Router /pokemon [get]
func (h *Handler) HandleListPokemon(c *fiber.Ctx) error {
	return h.list(c, aggregate.KindPokemon)
}

// HandleListMoves lists cached move names.
// @Summary List Moves
// @Tags dex
// @Produce json
// @Success 200 {array} string "Names"
// @Failure 503 {object} map[string]string "Caches Not Initialized"
// @Router /moves [get]
func (h *Handler) HandleListMoves(c *fiber.Ctx) error {
	return h.list(c, aggregate.KindMove)
}

// HandleListSkills lists cached skill names.
// @Summary List Skills
// @Tags dex
// @Produce json
// @Success 200 {array} string "Names"
// @Failure 503 {object} map[string]string "Caches Not Initialized"
// @Router /skills [get]
func (h *Handler) HandleListSkills(c *fiber.Ctx) error {
	return h.list(c, aggregate.KindSkill)
}

func (h *Handler) lookup(c *fiber.Ctx, kind aggregate.Kind) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid name"})
	}

	v, err := h.service.Lookup(kind, name)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(v)
}

func (h *Handler) list(c *fiber.Ctx, kind aggregate.Kind) error {
	names, err := h.service.Names(kind)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(names)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, registry.ErrNotInitialized):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	default:
		logger.WithRayID(h.service.logger, c).Error("Lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
