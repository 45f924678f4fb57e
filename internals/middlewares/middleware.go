package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"alumniku_backend/internals/middlewares/logger"
)

// SetupMiddlewares: pasang middleware global dalam urutan yang benar —
// recovery paling luar, lalu CORS, lalu access log.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
