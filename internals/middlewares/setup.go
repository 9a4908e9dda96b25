package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares wires the shared middleware stack in order.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
