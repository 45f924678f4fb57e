// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	profileRoute "alumniku_backend/internals/features/alumni/profile/route"
	alumniRoute "alumniku_backend/internals/features/alumni/route"
	eventRoute "alumniku_backend/internals/features/events/route"
	messageRoute "alumniku_backend/internals/features/messages/route"
	authRoute "alumniku_backend/internals/features/users/auth/route"
	"alumniku_backend/internals/middlewares"
)

// SetupRoutes: satu pintu mount semua fitur.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	app.Use(middlewares.GlobalRateLimiter())

	BaseRoutes(app, db)

	authRoute.AuthRoutes(app, db)
	profileRoute.ProfileRoutes(app, db)
	alumniRoute.AlumniRoutes(app, db)
	eventRoute.EventRoutes(app, db)
	messageRoute.MessageRoutes(app, db)
}
