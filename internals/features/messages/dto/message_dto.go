package dto

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	msgModel "alumniku_backend/internals/features/messages/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// SendMessageRequest — tepat SATU target: recipient_id (individu),
// school_id (broadcast school), atau course_id (broadcast course).
type SendMessageRequest struct {
	RecipientID *uuid.UUID `json:"recipient_id,omitempty"`
	SchoolID    *uuid.UUID `json:"school_id,omitempty"`
	CourseID    *uuid.UUID `json:"course_id,omitempty"`
	Subject     string     `json:"subject" validate:"required,min=1,max=255"`
	Body        string     `json:"body" validate:"required,min=1"`
}

func (r *SendMessageRequest) Normalize() {
	r.Subject = strings.TrimSpace(r.Subject)
	r.Body = strings.TrimSpace(r.Body)
}

var (
	ErrNoTarget       = errors.New("at least one recipient is required")
	ErrMultipleTarget = errors.New("exactly one of recipient_id, school_id or course_id must be set")
)

// Validate: aturan field + invariant exactly-one-target (ditegakkan saat
// write, bukan constraint DB).
func (r *SendMessageRequest) Validate(v *validator.Validate) error {
	if err := v.Struct(r); err != nil {
		return err
	}
	targets := 0
	if r.RecipientID != nil {
		targets++
	}
	if r.SchoolID != nil {
		targets++
	}
	if r.CourseID != nil {
		targets++
	}
	if targets == 0 {
		return ErrNoTarget
	}
	if targets > 1 {
		return ErrMultipleTarget
	}
	return nil
}

func (r *SendMessageRequest) ToModel(senderID uuid.UUID) *msgModel.MessageModel {
	return &msgModel.MessageModel{
		SenderID:    &senderID,
		RecipientID: r.RecipientID,
		SchoolID:    r.SchoolID,
		CourseID:    r.CourseID,
		Subject:     r.Subject,
		Body:        r.Body,
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type MessageResponse struct {
	ID             uuid.UUID  `json:"id"`
	SenderID       *uuid.UUID `json:"sender_id,omitempty"`
	SenderEmail    string     `json:"sender_email,omitempty"`
	RecipientID    *uuid.UUID `json:"recipient_id,omitempty"`
	RecipientEmail string     `json:"recipient_email,omitempty"`
	SchoolID       *uuid.UUID `json:"school_id,omitempty"`
	SchoolName     string     `json:"school_name,omitempty"`
	CourseID       *uuid.UUID `json:"course_id,omitempty"`
	CourseName     string     `json:"course_name,omitempty"`
	Subject        string     `json:"subject"`
	Body           string     `json:"body"`
	IsRead         bool       `json:"is_read"`
	CreatedAt      time.Time  `json:"created_at"`
}

func FromModel(m *msgModel.MessageModel) MessageResponse {
	resp := MessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		RecipientID: m.RecipientID,
		SchoolID:    m.SchoolID,
		CourseID:    m.CourseID,
		Subject:     m.Subject,
		Body:        m.Body,
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
	if m.Sender != nil {
		resp.SenderEmail = m.Sender.Email
	}
	if m.Recipient != nil {
		resp.RecipientEmail = m.Recipient.Email
	}
	if m.School != nil {
		resp.SchoolName = m.School.Name
	}
	if m.Course != nil {
		resp.CourseName = m.Course.Name
	}
	return resp
}

func FromModels(rows []msgModel.MessageModel) []MessageResponse {
	out := make([]MessageResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
