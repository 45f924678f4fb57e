// file: internals/features/alumni/profile/route/profile_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alumniku_backend/internals/configs"
	academicsController "alumniku_backend/internals/features/academics/controller"
	profileController "alumniku_backend/internals/features/alumni/profile/controller"
	helperAuth "alumniku_backend/internals/helpers/auth"
	authMW "alumniku_backend/internals/middlewares/auth"
)

func ProfileRoutes(app *fiber.App, db *gorm.DB) {
	profiles := profileController.NewProfileController(db)
	academics := academicsController.NewAcademicsController(db)

	base := app.Group("/api/profiles")

	// 🔓 Public: data referensi school & course
	base.Get("/schools-courses", academics.GetSchoolsAndCourses)

	// 🔒 Protected
	protected := base.Group("",
		authMW.AuthJWT(authMW.AuthJWTOpts{Secret: configs.JWTSecret, AllowCookieFallback: true}),
	)

	protected.Get("/me",
		authMW.RequireOperation(helperAuth.OpProfileMe),
		profiles.Me,
	)
	protected.Post("/",
		authMW.RequireOperation(helperAuth.OpProfileCreate),
		profiles.Create,
	)
	protected.Put("/:id",
		authMW.RequireOperation(helperAuth.OpProfileUpdate),
		profiles.Update,
	)
}
