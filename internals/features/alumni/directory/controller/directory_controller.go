// file: internals/features/alumni/directory/controller/directory_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "alumniku_backend/internals/features/alumni/profile/dto"
	model "alumniku_backend/internals/features/alumni/profile/model"
	eventModel "alumniku_backend/internals/features/events/model"
	helper "alumniku_backend/internals/helpers"
)

type DirectoryController struct {
	DB *gorm.DB
}

func NewDirectoryController(db *gorm.DB) *DirectoryController {
	return &DirectoryController{DB: db}
}

// queryAlias: baca query param dengan dukungan ejaan alternatif —
// klien web lama mengirim camelCase.
func queryAlias(c *fiber.Ctx, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(c.Query(k)); v != "" {
			return v
		}
	}
	return ""
}

// DirectoryEntry: profil + identitas pemiliknya untuk listing directory.
type DirectoryEntry struct {
	dto.ProfileResponse
	Email string `json:"email"`
	Role  string `json:"role"`
}

func toEntries(rows []model.AlumniProfileModel) []DirectoryEntry {
	out := make([]DirectoryEntry, 0, len(rows))
	for i := range rows {
		out = append(out, DirectoryEntry{
			ProfileResponse: dto.FromModel(&rows[i]),
			Email:           rows[i].User.Email,
			Role:            rows[i].User.Role,
		})
	}
	return out
}

/*
=========================================================

	LIST
	GET /api/alumni
	Query: school, course, graduation_year (alias: graduationYear), name (substring)
	Semua lewat ScopeVisibleAlumni — applied_alumni tidak pernah muncul.

=========================================================
*/
func (ctl *DirectoryController) List(c *fiber.Ctx) error {
	tx := ctl.DB.
		Model(&model.AlumniProfileModel{}).
		Scopes(model.ScopeVisibleAlumni).
		Preload("User").
		Preload("Course").
		Preload("Course.School")

	if v := strings.TrimSpace(c.Query("school")); v != "" {
		schoolID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school filter")
		}
		tx = tx.Joins("JOIN courses ON courses.id = alumni_profiles.course_id").
			Where("courses.school_id = ?", schoolID)
	}
	if v := strings.TrimSpace(c.Query("course")); v != "" {
		courseID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course filter")
		}
		tx = tx.Where("alumni_profiles.course_id = ?", courseID)
	}
	if v := queryAlias(c, "graduation_year", "graduationYear"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid graduation_year filter")
		}
		tx = tx.Where("alumni_profiles.graduation_year = ?", year)
	}
	if v := strings.TrimSpace(c.Query("name")); v != "" {
		like := "%" + v + "%"
		tx = tx.Where("alumni_profiles.first_name ILIKE ? OR alumni_profiles.last_name ILIKE ?", like, like)
	}

	var rows []model.AlumniProfileModel
	if err := tx.Order("alumni_profiles.last_name, alumni_profiles.first_name").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching alumni data")
	}

	return helper.JsonList(c, "", toEntries(rows), fiber.Map{"count": len(rows)})
}

/*
=========================================================

	DETAIL
	GET /api/alumni/:id
	404 juga kalau profil ada tapi tidak visible (role bukan registered).

=========================================================
*/
func (ctl *DirectoryController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid profile id")
	}

	var row model.AlumniProfileModel
	if err := ctl.DB.
		Scopes(model.ScopeVisibleAlumni).
		Preload("User").
		Preload("Course").
		Preload("Course.School").
		First(&row, "alumni_profiles.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Alumni profile not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching alumni profile")
	}

	entry := DirectoryEntry{
		ProfileResponse: dto.FromModel(&row),
		Email:           row.User.Email,
		Role:            row.User.Role,
	}
	return helper.JsonOK(c, "", fiber.Map{"profile": entry})
}

/*
=========================================================

	STATS
	GET /api/alumni/stats
	Count home-page, pakai predikat visibilitas yang sama dengan listing.

=========================================================
*/
func (ctl *DirectoryController) Stats(c *fiber.Ctx) error {
	var alumniCount int64
	if err := ctl.DB.
		Model(&model.AlumniProfileModel{}).
		Scopes(model.ScopeVisibleAlumni).
		Count(&alumniCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching stats")
	}

	var eventCount int64
	if err := ctl.DB.Model(&eventModel.EventModel{}).Count(&eventCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching stats")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"registered_alumni": alumniCount,
		"events":            eventCount,
	})
}
