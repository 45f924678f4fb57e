// file: internals/features/events/controller/event_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "alumniku_backend/internals/features/events/dto"
	model "alumniku_backend/internals/features/events/model"
	helper "alumniku_backend/internals/helpers"
	helperAuth "alumniku_backend/internals/helpers/auth"
)

/* =========================
   Controller
   ========================= */

type EventController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{
		DB:        db,
		Validator: validator.New(),
	}
}

func (ctl *EventController) getID(c *fiber.Ctx) (uuid.UUID, error) {
	param := strings.TrimSpace(c.Params("id"))
	if param == "" {
		return uuid.Nil, errors.New("missing id")
	}
	id, err := uuid.Parse(param)
	if err != nil {
		return uuid.Nil, errors.New("invalid id")
	}
	return id, nil
}

/*
=========================================================

	LIST
	GET /api/events (public), urut event_date terbaru dulu

=========================================================
*/
func (ctl *EventController) List(c *fiber.Ctx) error {
	var rows []model.EventModel
	if err := ctl.DB.
		Preload("Creator").
		Order("event_date DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching events")
	}

	return helper.JsonList(c, "", dto.FromModels(rows), fiber.Map{"count": len(rows)})
}

/*
=========================================================

	DETAIL
	GET /api/events/:id (public)

=========================================================
*/
func (ctl *EventController) GetByID(c *fiber.Ctx) error {
	id, err := ctl.getID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var row model.EventModel
	if err := ctl.DB.Preload("Creator").First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching event")
	}

	return helper.JsonOK(c, "", fiber.Map{"event": dto.FromModel(&row)})
}

/*
=========================================================

	CREATE
	POST /api/events (admin only)

=========================================================
*/
func (ctl *EventController) Create(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserID(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title, date and location are required")
	}

	m := req.ToModel(userID)
	if err := ctl.DB.Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error creating event")
	}

	return helper.JsonCreated(c, "Event created successfully", dto.FromModel(m))
}

/*
=========================================================

	UPDATE
	PUT /api/events/:id (admin only)

=========================================================
*/
func (ctl *EventController) Update(c *fiber.Ctx) error {
	id, err := ctl.getID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	req.Normalize()
	if err := req.Validate(ctl.Validator); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Title, date and location are required")
	}

	res := ctl.DB.Model(&model.EventModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":       req.Title,
			"description": req.Description,
			"event_date":  req.EventDate,
			"location":    req.Location,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	return helper.JsonUpdated(c, "Event updated successfully", nil)
}

/*
=========================================================

	DELETE
	DELETE /api/events/:id (admin only)

=========================================================
*/
func (ctl *EventController) Delete(c *fiber.Ctx) error {
	id, err := ctl.getID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	res := ctl.DB.Delete(&model.EventModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error deleting event")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event not found")
	}

	return helper.JsonDeleted(c, "Event deleted successfully", nil)
}
