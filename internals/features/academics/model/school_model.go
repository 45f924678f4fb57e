package model

import (
	"time"

	"github.com/google/uuid"
)

// SchoolModel: data referensi statis, di-seed sekali, read-heavy.
type SchoolModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Color     string    `gorm:"size:20" json:"color,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (SchoolModel) TableName() string {
	return "schools"
}
