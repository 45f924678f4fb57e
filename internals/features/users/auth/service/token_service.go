package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Masa berlaku assertion: fixed 1 hari.
const AccessTokenTTL = 24 * time.Hour

// IssueToken membuat signed assertion HS256 yang meng-embed {id, email, role}.
// Role di-snapshot saat issue; perubahan role baru terbawa di token berikutnya.
func IssueToken(secret string, userID uuid.UUID, email, role string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":    userID.String(),
		"email": email,
		"role":  role,
		"iat":   now.Unix(),
		"exp":   now.Add(AccessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
