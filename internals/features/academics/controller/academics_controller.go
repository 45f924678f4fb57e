package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "alumniku_backend/internals/features/academics/dto"
	model "alumniku_backend/internals/features/academics/model"
	helper "alumniku_backend/internals/helpers"
)

type AcademicsController struct {
	DB *gorm.DB
}

func NewAcademicsController(db *gorm.DB) *AcademicsController {
	return &AcademicsController{DB: db}
}

/*
=========================================================

	GET /api/profiles/schools-courses (public)
	Data referensi statis untuk form profil & filter directory.

=========================================================
*/
func (ctl *AcademicsController) GetSchoolsAndCourses(c *fiber.Ctx) error {
	var schools []model.SchoolModel
	if err := ctl.DB.Order("name").Find(&schools).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching schools and courses")
	}

	var courses []model.CourseModel
	if err := ctl.DB.
		Preload("School").
		Joins("JOIN schools ON schools.id = courses.school_id").
		Order("schools.name, courses.name").
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching schools and courses")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"schools": dto.FromSchoolModels(schools),
		"courses": dto.FromCourseModels(courses),
	})
}
