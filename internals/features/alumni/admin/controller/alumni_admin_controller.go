// file: internals/features/alumni/admin/controller/alumni_admin_controller.go
package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "alumniku_backend/internals/features/users/user/model"
	helper "alumniku_backend/internals/helpers"
)

type AlumniAdminController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAlumniAdminController(db *gorm.DB) *AlumniAdminController {
	return &AlumniAdminController{DB: db, Validator: validator.New()}
}

// UpdateRoleRequest menerima dua ejaan field user id: snake_case dan
// camelCase yang dipakai klien web lama.
type UpdateRoleRequest struct {
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	UserIDCamel uuid.UUID `json:"userId"`
	Role        string    `json:"role" validate:"required,oneof=admin registered_alumni applied_alumni visitor"`
}

func (r *UpdateRoleRequest) Normalize() {
	if r.UserID == uuid.Nil {
		r.UserID = r.UserIDCamel
	}
}

/*
=========================================================

	PUT /api/alumni/role (admin only)
	any → any dari empat role, last-write-wins, tanpa audit trail.
	Assertion lama target tetap bawa role lama sampai login ulang.

=========================================================
*/
func (ctl *AlumniAdminController) UpdateRole(c *fiber.Ctx) error {
	var req UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "User ID and role are required")
	}
	req.Normalize()
	if err := ctl.Validator.Struct(req); err != nil {
		if req.UserID == uuid.Nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "User ID and role are required")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role")
	}

	res := ctl.DB.Model(&userModel.UserModel{}).
		Where("id = ?", req.UserID).
		Update("role", req.Role)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating alumni role")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	log.Printf("[INFO] role updated user=%s role=%s", req.UserID, req.Role)
	return helper.JsonUpdated(c, "User role updated successfully", nil)
}

/*
=========================================================

	DELETE /api/alumni/:id (admin only)
	Profil ikut terhapus (FK cascade); pesan bertahan dengan
	sender/recipient di-NULL-kan.

=========================================================
*/
func (ctl *AlumniAdminController) DeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	res := ctl.DB.Delete(&userModel.UserModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	log.Printf("[INFO] user deleted id=%s", id)
	return helper.JsonDeleted(c, "User deleted successfully", nil)
}
