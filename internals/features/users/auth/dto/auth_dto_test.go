package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	userModel "alumniku_backend/internals/features/users/user/model"
)

func TestRegisterRequest_Validate(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Struct(&RegisterRequest{Email: "a@b.com", Password: "secret-pass"}))

	// Password minimal 8 karakter
	assert.Error(t, v.Struct(&RegisterRequest{Email: "a@b.com", Password: "short"}))
	assert.Error(t, v.Struct(&RegisterRequest{Email: "bukan-email", Password: "secret-pass"}))
	assert.Error(t, v.Struct(&RegisterRequest{Password: "secret-pass"}))
}

func TestRegisterRequest_NormalizeEmail(t *testing.T) {
	req := RegisterRequest{Email: "  Maria@Example.COM ", Password: "secret-pass"}
	req.Normalize()
	assert.Equal(t, "maria@example.com", req.Email)
}

func TestLoginRequest_Validate(t *testing.T) {
	v := validator.New()

	assert.NoError(t, v.Struct(&LoginRequest{Email: "a@b.com", Password: "x"}))
	assert.Error(t, v.Struct(&LoginRequest{Email: "a@b.com"}))
	assert.Error(t, v.Struct(&LoginRequest{Password: "x"}))
}

func TestFromUserModel_NeverExposesPassword(t *testing.T) {
	u := userModel.UserModel{
		ID:        uuid.New(),
		Email:     "a@b.com",
		Password:  "$2a$10$hash",
		Role:      "registered_alumni",
		CreatedAt: time.Now(),
	}

	resp := FromUserModel(&u)
	assert.Equal(t, u.ID, resp.ID)
	assert.Equal(t, u.Email, resp.Email)
	assert.Equal(t, u.Role, resp.Role)
	// UserResponse memang tidak punya field password — assertion struktural
	// di sini cukup memastikan mapping tidak menambahkannya lewat embedding.
}
