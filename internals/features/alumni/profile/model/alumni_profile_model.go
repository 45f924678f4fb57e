package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"alumniku_backend/internals/constants"
	academicsModel "alumniku_backend/internals/features/academics/model"
	userModel "alumniku_backend/internals/features/users/user/model"
)

// AlumniProfileModel merepresentasikan tabel alumni_profiles.
// user_id uniqueIndex: satu identitas maksimal satu profil (ditegakkan DB,
// bukan cuma existence check di aplikasi — menutup race check-then-act).
type AlumniProfileModel struct {
	ID              uuid.UUID         `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FirstName       string            `gorm:"size:100;not null" json:"first_name"`
	LastName        string            `gorm:"size:100;not null" json:"last_name"`
	Gender          *string           `gorm:"type:varchar(10)" json:"gender,omitempty"`
	GraduationYear  *int              `json:"graduation_year,omitempty"`
	CourseID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"course_id"`
	Bio             string            `gorm:"type:text" json:"bio,omitempty"`
	CurrentPosition string            `gorm:"size:255" json:"current_position,omitempty"`
	Company         string            `gorm:"size:255" json:"company,omitempty"`
	ContactEmail    string            `gorm:"size:255" json:"contact_email,omitempty"`
	Phone           string            `gorm:"size:50" json:"phone,omitempty"`
	Linkedin        string            `gorm:"size:255" json:"linkedin,omitempty"`
	ProfilePicture  string            `gorm:"size:255" json:"profile_picture,omitempty"`
	Socials         datatypes.JSONMap `gorm:"type:jsonb" json:"socials,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	User   userModel.UserModel        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Course academicsModel.CourseModel `gorm:"foreignKey:CourseID" json:"-"`
}

func (AlumniProfileModel) TableName() string {
	return "alumni_profiles"
}

// ScopeVisibleAlumni: predikat visibilitas tunggal untuk semua listing
// alumni-facing (directory, recipient list, counts). applied_alumni dan
// visitor tidak pernah ikut.
func ScopeVisibleAlumni(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN users ON users.id = alumni_profiles.user_id").
		Where("users.role = ?", constants.RoleRegisteredAlumni)
}
