package model

import (
	"time"

	"github.com/google/uuid"

	academicsModel "alumniku_backend/internals/features/academics/model"
	userModel "alumniku_backend/internals/features/users/user/model"
)

// MessageModel merepresentasikan tabel messages.
// Tepat satu dari recipient_id / school_id / course_id terisi (ditegakkan saat
// write). Broadcast disimpan satu baris saja, di-resolve saat read.
type MessageModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	SenderID    *uuid.UUID `gorm:"type:uuid;index" json:"sender_id,omitempty"`
	RecipientID *uuid.UUID `gorm:"type:uuid;index" json:"recipient_id,omitempty"`
	SchoolID    *uuid.UUID `gorm:"type:uuid;index" json:"school_id,omitempty"`
	CourseID    *uuid.UUID `gorm:"type:uuid;index" json:"course_id,omitempty"`
	Subject     string     `gorm:"size:255;not null" json:"subject"`
	Body        string     `gorm:"type:text;not null" json:"body"`
	IsRead      bool       `gorm:"not null;default:false" json:"is_read"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	Sender    *userModel.UserModel        `gorm:"foreignKey:SenderID;constraint:OnDelete:SET NULL" json:"-"`
	Recipient *userModel.UserModel        `gorm:"foreignKey:RecipientID;constraint:OnDelete:SET NULL" json:"-"`
	School    *academicsModel.SchoolModel `gorm:"foreignKey:SchoolID" json:"-"`
	Course    *academicsModel.CourseModel `gorm:"foreignKey:CourseID" json:"-"`
}

func (MessageModel) TableName() string {
	return "messages"
}

// IsBroadcast: baris tanpa recipient langsung.
func (m *MessageModel) IsBroadcast() bool {
	return m.RecipientID == nil
}
