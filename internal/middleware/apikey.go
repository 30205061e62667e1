package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"

	"registration-web/internal/config"
)

// APIKeyMiddleware rejects requests whose X-API-Key header does not match
// the configured key. An empty configured key disables the check.
func APIKeyMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.APIKey == "" {
			return c.Next()
		}

		key := c.Get("X-API-Key")
		if key == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "X-API-Key header is required",
			})
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(cfg.APIKey)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"message": "Invalid API key",
			})
		}

		return c.Next()
	}
}
