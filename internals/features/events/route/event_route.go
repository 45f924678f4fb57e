// file: internals/features/events/route/event_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alumniku_backend/internals/configs"
	controller "alumniku_backend/internals/features/events/controller"
	helperAuth "alumniku_backend/internals/helpers/auth"
	authMW "alumniku_backend/internals/middlewares/auth"
)

func EventRoutes(app *fiber.App, db *gorm.DB) {
	eventController := controller.NewEventController(db)

	base := app.Group("/api/events")

	// 🔓 Public read
	base.Get("/", eventController.List)
	base.Get("/:id", eventController.GetByID)

	// 🔒 Admin only write
	admin := base.Group("",
		authMW.AuthJWT(authMW.AuthJWTOpts{Secret: configs.JWTSecret, AllowCookieFallback: true}),
		authMW.RequireOperation(helperAuth.OpEventWrite),
	)
	admin.Post("/", eventController.Create)
	admin.Put("/:id", eventController.Update)
	admin.Delete("/:id", eventController.Delete)
}
