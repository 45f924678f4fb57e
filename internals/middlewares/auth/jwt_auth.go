// file: internals/middlewares/auth/jwt_auth.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helper "alumniku_backend/internals/helpers"
	helperAuth "alumniku_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

// AuthJWT memverifikasi signed assertion (HS256) dan meng-hydrate Locals
// {user_id, user_email, user_role} dari klaim. Role TIDAK dibaca ulang dari
// DB; assertion lama tetap membawa role lama sampai login ulang.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if o.AllowCookieFallback {
			raw = helper.GetRawAccessToken(c)
		} else if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		}
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma (exp divalidasi parser)
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid or expired token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token claims")
		}

		// 3) Hydrate Locals yang diharapkan guard & controller
		id := strClaim(claims, "id")
		if id == "" {
			id = strClaim(claims, "sub")
		}
		if _, err := uuid.Parse(id); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid user ID in token")
		}
		c.Locals(helperAuth.LocUserID, id)

		if email := strClaim(claims, "email"); email != "" {
			c.Locals(helperAuth.LocUserEmail, email)
		}
		if role := strClaim(claims, "role"); role != "" {
			c.Locals(helperAuth.LocUserRole, role)
		}

		return c.Next()
	}
}

func strClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
