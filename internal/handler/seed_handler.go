package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/am-i-cooked/cooked-api/internal/service"
	"github.com/am-i-cooked/cooked-api/internal/utils"
)

// SeedHandler exposes the demo-data seeding endpoint.
type SeedHandler struct {
	service service.SeedService
	logger  zerolog.Logger
}

// NewSeedHandler constructs the handler.
func NewSeedHandler(service service.SeedService, logger zerolog.Logger) *SeedHandler {
	return &SeedHandler{
		service: service,
		logger:  logger.With().Str("component", "seed_handler").Logger(),
	}
}

// Register attaches the seed endpoint.
func (h *SeedHandler) Register(router fiber.Router) {
	router.Post("/seed", h.seed)
}

func (h *SeedHandler) seed(c *fiber.Ctx) error {
	token := c.Get("X-Seed-Token")

	created, err := h.service.SeedDemo(c.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSeedDisabled):
			return utils.SendError(c, fiber.StatusForbidden, "seeding is disabled")
		case errors.Is(err, service.ErrSeedUnauthorized):
			return utils.SendError(c, fiber.StatusUnauthorized, "invalid seed token")
		default:
			h.logger.Error().Err(err).Msg("seeding failed")
			return utils.SendError(c, fiber.StatusInternalServerError, "seeding failed")
		}
	}

	return utils.SendSuccess(c, "demo data seeded", fiber.Map{"records": created})
}
