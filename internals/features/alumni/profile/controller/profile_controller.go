// file: internals/features/alumni/profile/controller/profile_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"alumniku_backend/internals/constants"
	dto "alumniku_backend/internals/features/alumni/profile/dto"
	model "alumniku_backend/internals/features/alumni/profile/model"
	userModel "alumniku_backend/internals/features/users/user/model"
	helper "alumniku_backend/internals/helpers"
	helperAuth "alumniku_backend/internals/helpers/auth"
)

/* =========================
   Controller
   ========================= */

type ProfileController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{
		DB:        db,
		Validator: validator.New(),
	}
}

// isDuplicateKey: cek pelanggaran unique Postgres (SQLSTATE 23505).
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "23505")
}

/*
=========================================================

	CREATE
	POST /api/profiles
	Insert profil + transisi role applied → registered dalam SATU transaksi.
	Profil kedua untuk user yang sama ditolak 409 oleh unique index user_id,
	dan transisi tidak terpicu ulang.

=========================================================
*/
func (ctl *ProfileController) Create(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.CreateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(userID)

	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}

		// Role bump pakai state DB (bukan klaim token) supaya transisi
		// tetap benar walau assertion caller sudah basi.
		var user userModel.UserModel
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			return err
		}
		next := constants.RoleAfterProfileCreate(user.Role)
		if next != user.Role {
			if err := tx.Model(&userModel.UserModel{}).
				Where("id = ?", userID).
				Update("role", next).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if txErr != nil {
		if isDuplicateKey(txErr) {
			return helper.JsonError(c, fiber.StatusConflict, "Profile already exists for this user")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating profile")
	}

	return helper.JsonCreated(c, "Profile created successfully", dto.FromModel(m))
}

/*
=========================================================

	UPDATE
	PUT /api/profiles/:id
	Owner identity match ATAU admin; role gate registered/admin sudah di route.

=========================================================
*/
func (ctl *ProfileController) Update(c *fiber.Ctx) error {
	profileID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid profile id")
	}

	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	role, err := helperAuth.GetUserRole(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var profile model.AlumniProfileModel
	if err := ctl.DB.First(&profile, "id = ?", profileID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating profile")
	}

	if profile.UserID != userID && role != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "You do not have permission to update this profile")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.ApplyToModel(&profile)

	if err := ctl.DB.Save(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating profile")
	}

	return helper.JsonUpdated(c, "Profile updated successfully", dto.FromModel(&profile))
}

/*
=========================================================

	ME
	GET /api/profiles/me
	Profil caller sendiri, join course + school.

=========================================================
*/
func (ctl *ProfileController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var profile model.AlumniProfileModel
	if err := ctl.DB.
		Preload("Course").
		Preload("Course.School").
		First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching profile")
	}

	return helper.JsonOK(c, "", fiber.Map{"profile": dto.FromModel(&profile)})
}
