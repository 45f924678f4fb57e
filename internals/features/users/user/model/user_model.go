package model

import (
	"time"

	"github.com/google/uuid"

	"alumniku_backend/internals/constants"
)

// UserModel merepresentasikan tabel users di database.
// Role selalu salah satu dari: admin, registered_alumni, applied_alumni, visitor.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;default:'visitor'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// SetDefaultValues memastikan role default sebelum insert mentah.
// Flow registrasi tetap meng-assign applied_alumni secara eksplisit.
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = constants.RoleVisitor
	}
}
