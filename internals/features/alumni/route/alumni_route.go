// file: internals/features/alumni/route/alumni_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alumniku_backend/internals/configs"
	adminController "alumniku_backend/internals/features/alumni/admin/controller"
	directoryController "alumniku_backend/internals/features/alumni/directory/controller"
	helperAuth "alumniku_backend/internals/helpers/auth"
	authMW "alumniku_backend/internals/middlewares/auth"
)

func AlumniRoutes(app *fiber.App, db *gorm.DB) {
	directory := directoryController.NewDirectoryController(db)
	admin := adminController.NewAlumniAdminController(db)

	// Base: /api/alumni — semua butuh assertion valid
	alumni := app.Group("/api/alumni",
		authMW.AuthJWT(authMW.AuthJWTOpts{Secret: configs.JWTSecret, AllowCookieFallback: true}),
	)

	alumni.Get("/",
		authMW.RequireOperation(helperAuth.OpDirectoryList),
		directory.List,
	)
	alumni.Get("/stats",
		authMW.RequireOperation(helperAuth.OpDirectoryStats),
		directory.Stats,
	)

	// 🔒 Admin only — daftar sebelum "/:id" biar tidak ketangkap param route
	alumni.Put("/role",
		authMW.RequireOperation(helperAuth.OpRoleUpdate),
		admin.UpdateRole,
	)

	alumni.Get("/:id",
		authMW.RequireOperation(helperAuth.OpDirectoryDetail),
		directory.GetByID,
	)
	alumni.Delete("/:id",
		authMW.RequireOperation(helperAuth.OpUserDelete),
		admin.DeleteUser,
	)
}
