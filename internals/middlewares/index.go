package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"steam_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the app-wide stack; order matters (recover outermost).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(Metrics())
	app.Use(GlobalRateLimiter())
}
