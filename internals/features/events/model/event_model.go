package model

import (
	"time"

	"github.com/google/uuid"

	userModel "alumniku_backend/internals/features/users/user/model"
)

// EventModel: pengumuman/acara, ditulis admin, world-readable.
type EventModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	EventDate   time.Time  `gorm:"not null;index" json:"event_date"`
	Location    string     `gorm:"size:255;not null" json:"location"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid" json:"created_by,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Creator *userModel.UserModel `gorm:"foreignKey:CreatedBy;constraint:OnDelete:SET NULL" json:"-"`
}

func (EventModel) TableName() string {
	return "events"
}
