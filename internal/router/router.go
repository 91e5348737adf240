package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/am-i-cooked/cooked-api/internal/config"
	"github.com/am-i-cooked/cooked-api/internal/handler"
	"github.com/am-i-cooked/cooked-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	CourseHandler     *handler.CourseHandler
	AssignmentHandler *handler.AssignmentHandler
	SettingsHandler   *handler.SettingsHandler
	DashboardHandler  *handler.DashboardHandler
	SeedHandler       *handler.SeedHandler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))

	if deps.DashboardHandler != nil {
		deps.DashboardHandler.Register(api)
	}

	if deps.CourseHandler != nil {
		deps.CourseHandler.Register(api.Group("/courses"))
	}

	if deps.AssignmentHandler != nil {
		deps.AssignmentHandler.Register(api.Group("/assignments"))
	}

	if deps.SettingsHandler != nil {
		deps.SettingsHandler.Register(api.Group("/settings"))
	}

	if deps.SeedHandler != nil {
		deps.SeedHandler.Register(api)
	}
}
