// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alumniku_backend/internals/configs"
	controller "alumniku_backend/internals/features/users/auth/controller"
	helperAuth "alumniku_backend/internals/helpers/auth"
	rateLimiter "alumniku_backend/internals/middlewares"
	authMW "alumniku_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)

	// 🔒 Protected
	protected := baseAuth.Group("",
		authMW.AuthJWT(authMW.AuthJWTOpts{Secret: configs.JWTSecret, AllowCookieFallback: true}),
	)
	protected.Get("/me",
		authMW.RequireOperation(helperAuth.OpAuthMe),
		authController.Me,
	)
}
