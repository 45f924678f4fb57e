package service

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"alumniku_backend/internals/configs"
	"alumniku_backend/internals/constants"
	authDTO "alumniku_backend/internals/features/users/auth/dto"
	userModel "alumniku_backend/internals/features/users/user/model"
	helper "alumniku_backend/internals/helpers"
	helperAuth "alumniku_backend/internals/helpers/auth"
)

var validate = validator.New()

// isDuplicateKey: cek pelanggaran unique Postgres (SQLSTATE 23505).
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "23505")
}

/* ==========================
   REGISTER
========================== */

// Register membuat identitas baru. Role SELALU applied_alumni — bukan input
// klien, bukan default kolom. Email duplikat → 409.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		Email:    req.Email,
		Password: hashed,
		Role:     constants.RoleAppliedAlumni,
	}

	if err := db.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "User already exists with this email")
		}
		log.Println("[ERROR] register:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error registering user")
	}

	token, err := IssueToken(configs.JWTSecret, user.ID, user.Email, user.Role)
	if err != nil {
		log.Println("[ERROR] issue token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error registering user")
	}

	return helper.JsonCreated(c, "User registered successfully", authDTO.AuthResponse{
		Token: token,
		User:  authDTO.FromUserModel(&user),
	})
}

/* ==========================
   LOGIN
========================== */

// Login memverifikasi kredensial dan menerbitkan assertion 1 hari.
// Email tidak dikenal dan password salah menghasilkan pesan generic yang sama.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		log.Println("[ERROR] login lookup:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error during login")
	}

	if err := CheckPasswordHash(user.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := IssueToken(configs.JWTSecret, user.ID, user.Email, user.Role)
	if err != nil {
		log.Println("[ERROR] issue token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error during login")
	}

	return helper.JsonOK(c, "Login successful", authDTO.AuthResponse{
		Token: token,
		User:  authDTO.FromUserModel(&user),
	})
}

/* ==========================
   ME
========================== */

// Me resolve identitas caller dari store (bukan dari klaim saja).
func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching user data")
	}

	return helper.JsonOK(c, "", fiber.Map{"user": authDTO.FromUserModel(&user)})
}
