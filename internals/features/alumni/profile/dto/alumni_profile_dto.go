package dto

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	profileModel "alumniku_backend/internals/features/alumni/profile/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateProfileRequest — create profil pertama kali (sekaligus trigger
// transisi role applied_alumni → registered_alumni).
type CreateProfileRequest struct {
	FirstName       string         `json:"first_name" validate:"required,min=1,max=100"`
	LastName        string         `json:"last_name" validate:"required,min=1,max=100"`
	Gender          *string        `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	GraduationYear  *int           `json:"graduation_year,omitempty" validate:"omitempty,min=1900,max=2100"`
	CourseID        uuid.UUID      `json:"course_id" validate:"required"`
	Bio             string         `json:"bio,omitempty"`
	CurrentPosition string         `json:"current_position,omitempty" validate:"omitempty,max=255"`
	Company         string         `json:"company,omitempty" validate:"omitempty,max=255"`
	ContactEmail    string         `json:"contact_email,omitempty" validate:"omitempty,email,max=255"`
	Phone           string         `json:"phone,omitempty" validate:"omitempty,max=50"`
	Linkedin        string         `json:"linkedin,omitempty" validate:"omitempty,max=255"`
	ProfilePicture  string         `json:"profile_picture,omitempty" validate:"omitempty,max=255"`
	Socials         map[string]any `json:"socials,omitempty"`
}

// Normalize — trim & normalisasi dasar
func (r *CreateProfileRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.ContactEmail = strings.TrimSpace(strings.ToLower(r.ContactEmail))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Linkedin = strings.TrimSpace(r.Linkedin)
	if r.Gender != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Gender))
		r.Gender = &v
	}
}

func (r *CreateProfileRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// ToModel — konversi ke model; user_id diisi dari klaim caller, bukan body.
func (r *CreateProfileRequest) ToModel(userID uuid.UUID) *profileModel.AlumniProfileModel {
	m := &profileModel.AlumniProfileModel{
		UserID:          userID,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Gender:          r.Gender,
		GraduationYear:  r.GraduationYear,
		CourseID:        r.CourseID,
		Bio:             r.Bio,
		CurrentPosition: r.CurrentPosition,
		Company:         r.Company,
		ContactEmail:    r.ContactEmail,
		Phone:           r.Phone,
		Linkedin:        r.Linkedin,
		ProfilePicture:  r.ProfilePicture,
	}
	if len(r.Socials) > 0 {
		m.Socials = datatypes.JSONMap(r.Socials)
	}
	return m
}

// UpdateProfileRequest — partial update (pointer agar bisa bedakan omit vs null)
type UpdateProfileRequest struct {
	FirstName       *string        `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName        *string        `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Gender          *string        `json:"gender,omitempty" validate:"omitempty,oneof=male female"`
	GraduationYear  *int           `json:"graduation_year,omitempty" validate:"omitempty,min=1900,max=2100"`
	CourseID        *uuid.UUID     `json:"course_id,omitempty"`
	Bio             *string        `json:"bio,omitempty"`
	CurrentPosition *string        `json:"current_position,omitempty" validate:"omitempty,max=255"`
	Company         *string        `json:"company,omitempty" validate:"omitempty,max=255"`
	ContactEmail    *string        `json:"contact_email,omitempty" validate:"omitempty,email,max=255"`
	Phone           *string        `json:"phone,omitempty" validate:"omitempty,max=50"`
	Linkedin        *string        `json:"linkedin,omitempty" validate:"omitempty,max=255"`
	ProfilePicture  *string        `json:"profile_picture,omitempty" validate:"omitempty,max=255"`
	Socials         map[string]any `json:"socials,omitempty"`
}

// Normalize — trims if present
func (r *UpdateProfileRequest) Normalize() {
	if r.FirstName != nil {
		v := strings.TrimSpace(*r.FirstName)
		r.FirstName = &v
	}
	if r.LastName != nil {
		v := strings.TrimSpace(*r.LastName)
		r.LastName = &v
	}
	if r.ContactEmail != nil {
		v := strings.TrimSpace(strings.ToLower(*r.ContactEmail))
		r.ContactEmail = &v
	}
	if r.Gender != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Gender))
		r.Gender = &v
	}
}

func (r *UpdateProfileRequest) Validate(v *validator.Validate) error {
	return v.Struct(r)
}

// ApplyToModel — terapkan perubahan parsial ke model existing
func (r *UpdateProfileRequest) ApplyToModel(m *profileModel.AlumniProfileModel) {
	if r.FirstName != nil {
		m.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		m.LastName = *r.LastName
	}
	if r.Gender != nil {
		m.Gender = r.Gender
	}
	if r.GraduationYear != nil {
		m.GraduationYear = r.GraduationYear
	}
	if r.CourseID != nil {
		m.CourseID = *r.CourseID
	}
	if r.Bio != nil {
		m.Bio = *r.Bio
	}
	if r.CurrentPosition != nil {
		m.CurrentPosition = *r.CurrentPosition
	}
	if r.Company != nil {
		m.Company = *r.Company
	}
	if r.ContactEmail != nil {
		m.ContactEmail = *r.ContactEmail
	}
	if r.Phone != nil {
		m.Phone = *r.Phone
	}
	if r.Linkedin != nil {
		m.Linkedin = *r.Linkedin
	}
	if r.ProfilePicture != nil {
		m.ProfilePicture = *r.ProfilePicture
	}
	if r.Socials != nil {
		m.Socials = datatypes.JSONMap(r.Socials)
	}
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type ProfileResponse struct {
	ID              uuid.UUID      `json:"id"`
	UserID          uuid.UUID      `json:"user_id"`
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	Gender          *string        `json:"gender,omitempty"`
	GraduationYear  *int           `json:"graduation_year,omitempty"`
	CourseID        uuid.UUID      `json:"course_id"`
	CourseName      string         `json:"course_name,omitempty"`
	SchoolName      string         `json:"school_name,omitempty"`
	Bio             string         `json:"bio,omitempty"`
	CurrentPosition string         `json:"current_position,omitempty"`
	Company         string         `json:"company,omitempty"`
	ContactEmail    string         `json:"contact_email,omitempty"`
	Phone           string         `json:"phone,omitempty"`
	Linkedin        string         `json:"linkedin,omitempty"`
	ProfilePicture  string         `json:"profile_picture,omitempty"`
	Socials         map[string]any `json:"socials,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func FromModel(m *profileModel.AlumniProfileModel) ProfileResponse {
	resp := ProfileResponse{
		ID:              m.ID,
		UserID:          m.UserID,
		FirstName:       m.FirstName,
		LastName:        m.LastName,
		Gender:          m.Gender,
		GraduationYear:  m.GraduationYear,
		CourseID:        m.CourseID,
		CourseName:      m.Course.Name,
		SchoolName:      m.Course.School.Name,
		Bio:             m.Bio,
		CurrentPosition: m.CurrentPosition,
		Company:         m.Company,
		ContactEmail:    m.ContactEmail,
		Phone:           m.Phone,
		Linkedin:        m.Linkedin,
		ProfilePicture:  m.ProfilePicture,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
	if len(m.Socials) > 0 {
		resp.Socials = map[string]any(m.Socials)
	}
	return resp
}

func FromModels(rows []profileModel.AlumniProfileModel) []ProfileResponse {
	out := make([]ProfileResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
