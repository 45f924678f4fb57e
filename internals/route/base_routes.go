// file: internals/route/base_routes.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "alumniku_backend/internals/databases"
)

var startedAt = time.Now()

// BaseRoutes: endpoint operasional di luar fitur.
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "alumniku-backend",
			"status":  "ok",
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		if err := database.Ping(); err != nil {
			dbStatus = "down"
		}
		return c.JSON(fiber.Map{
			"status":  "ok",
			"db":      dbStatus,
			"uptime":  time.Since(startedAt).Round(time.Second).String(),
			"checked": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
