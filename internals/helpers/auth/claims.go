// file: internals/helpers/auth/claims.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Keys untuk c.Locals — diisi middleware AuthJWT, dibaca guard & controller.
const (
	LocUserID    = "user_id"
	LocUserEmail = "user_email"
	LocUserRole  = "user_role"
)

// GetUserID mengambil user id (UUID) dari Locals. 401 kalau tidak ada/invalid.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals(LocUserID).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(strings.TrimSpace(v))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in token")
	}
	return id, nil
}

// GetUserRole mengambil role dari Locals. Role berasal dari klaim token,
// BUKAN dari DB — perubahan role oleh admin baru terasa setelah login ulang.
func GetUserRole(c *fiber.Ctx) (string, error) {
	v, ok := c.Locals(LocUserRole).(string)
	if !ok || strings.TrimSpace(v) == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: missing role information")
	}
	return v, nil
}
