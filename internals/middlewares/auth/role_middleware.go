// file: internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "alumniku_backend/internals/helpers"
	helperAuth "alumniku_backend/internals/helpers/auth"
)

// RequireOperation: guard deklaratif — role caller dicek terhadap policy table,
// bukan hardcoded per call site.
// 401 kalau informasi role tidak ada (assertion invalid), 403 kalau role tidak
// termasuk allowed set. Dua kategori itu saja, tanpa detail tambahan.
func RequireOperation(op helperAuth.Operation) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(helperAuth.LocUserRole).(string)
		if !ok || role == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized: missing role information")
		}

		if !helperAuth.Allowed(op, role) {
			return helper.JsonError(c, fiber.StatusForbidden, "Forbidden: you are not authorized to access this resource")
		}

		return c.Next()
	}
}
