package router

import (
	"github.com/gofiber/fiber/v2"

	"registration-web/internal/config"
)

func Setup(app *fiber.App, cfg *config.Config) {
	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"app":    cfg.AppName,
		})
	})

	// API routes (JSON)
	api := app.Group("/api/v1")
	SetupAPIRoutes(api, cfg)
}
