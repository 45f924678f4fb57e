package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	eventModel "alumniku_backend/internals/features/events/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=255"`
	Description string    `json:"description,omitempty"`
	EventDate   time.Time `json:"event_date" validate:"required"`
	Location    string    `json:"location" validate:"required,min=3,max=255"`
}

func (r *CreateEventRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Location = strings.TrimSpace(r.Location)
}

func (r *CreateEventRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

func (r *CreateEventRequest) ToModel(createdBy uuid.UUID) *eventModel.EventModel {
	return &eventModel.EventModel{
		Title:       r.Title,
		Description: r.Description,
		EventDate:   r.EventDate,
		Location:    r.Location,
		CreatedBy:   &createdBy,
	}
}

// UpdateEventRequest: full replace seperti perilaku PUT lama — semua field
// wajib kecuali description.
type UpdateEventRequest struct {
	Title       string    `json:"title" validate:"required,min=3,max=255"`
	Description string    `json:"description,omitempty"`
	EventDate   time.Time `json:"event_date" validate:"required"`
	Location    string    `json:"location" validate:"required,min=3,max=255"`
}

func (r *UpdateEventRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Location = strings.TrimSpace(r.Location)
}

func (r *UpdateEventRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type EventResponse struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	EventDate    time.Time  `json:"event_date"`
	Location     string     `json:"location"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty"`
	CreatorEmail string     `json:"creator_email,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromModel(m *eventModel.EventModel) EventResponse {
	resp := EventResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		EventDate:   m.EventDate,
		Location:    m.Location,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Creator != nil {
		resp.CreatorEmail = m.Creator.Email
	}
	return resp
}

func FromModels(rows []eventModel.EventModel) []EventResponse {
	out := make([]EventResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
