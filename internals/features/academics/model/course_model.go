package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	DegreeUndergraduate = "Undergraduate"
	DegreePostgraduate  = "Postgraduate"
)

// CourseModel: course milik tepat satu school.
type CourseModel struct {
	ID         uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SchoolID   uuid.UUID   `gorm:"type:uuid;not null;index" json:"school_id"`
	Name       string      `gorm:"size:255;not null" json:"name"`
	DegreeType string      `gorm:"size:100" json:"degree_type"`
	CreatedAt  time.Time   `gorm:"autoCreateTime" json:"created_at"`
	School     SchoolModel `gorm:"foreignKey:SchoolID;constraint:OnDelete:CASCADE" json:"-"`
}

func (CourseModel) TableName() string {
	return "courses"
}
