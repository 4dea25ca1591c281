package middlewares

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic dari handler mana pun supaya satu request
// rusak tidak menjatuhkan proses; panic dicatat dengan request-id lalu
// dijawab 500.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
			log.Printf("[PANIC] reqid=%v %s %s: %v", c.Locals("reqid"), c.Method(), c.OriginalURL(), e)
		},
	})
}
