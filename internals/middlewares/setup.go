package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "classdesk_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain in order:
// recovery → logger → cors → limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(WriteRateLimiter())
}
