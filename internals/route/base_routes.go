package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

var startTime = time.Now()

// BaseRoutes: endpoint servis tanpa auth (uptime, versi).
func BaseRoutes(app *fiber.App) {
	app.Get("/api/status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":         "ok",
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})
}
