// file: internals/features/messages/service/visibility.go
//
// Resolusi broadcast saat read: satu predikat murni (CanReceive) + mirror
// SQL-nya (ScopeInbox). Inbox listing, unread count, dan ownership check
// mark-read semua lewat sini — tidak ada join ad-hoc per call site.
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	profileModel "alumniku_backend/internals/features/alumni/profile/model"
	msgModel "alumniku_backend/internals/features/messages/model"
)

// ReaderMembership: keanggotaan pembaca hasil chain Profile → Course → School.
// Identitas tanpa profil tidak pernah match baris broadcast.
type ReaderMembership struct {
	HasProfile bool
	CourseID   uuid.UUID
	SchoolID   uuid.UUID
}

// LookupMembership memuat profil reader (plus course) sekali per request.
func LookupMembership(db *gorm.DB, readerID uuid.UUID) (ReaderMembership, error) {
	var profile profileModel.AlumniProfileModel
	err := db.Preload("Course").First(&profile, "user_id = ?", readerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReaderMembership{}, nil
		}
		return ReaderMembership{}, err
	}
	return ReaderMembership{
		HasProfile: true,
		CourseID:   profile.CourseID,
		SchoolID:   profile.Course.SchoolID,
	}, nil
}

// CanReceive: apakah sebuah pesan visible di inbox reader.
//   - recipient langsung → selalu visible untuk recipient itu;
//   - broadcast (recipient NULL) → match kalau reader punya profil dan
//     school/course target sama dengan keanggotaannya.
func CanReceive(m *msgModel.MessageModel, readerID uuid.UUID, mem ReaderMembership) bool {
	if m.RecipientID != nil {
		return *m.RecipientID == readerID
	}
	if !mem.HasProfile {
		return false
	}
	if m.SchoolID != nil && *m.SchoolID == mem.SchoolID {
		return true
	}
	if m.CourseID != nil && *m.CourseID == mem.CourseID {
		return true
	}
	return false
}

// ScopeInbox: mirror SQL dari CanReceive untuk query listing/count.
func ScopeInbox(readerID uuid.UUID, mem ReaderMembership) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if !mem.HasProfile {
			return db.Where("messages.recipient_id = ?", readerID)
		}
		return db.Where(
			"messages.recipient_id = ? OR (messages.recipient_id IS NULL AND (messages.school_id = ? OR messages.course_id = ?))",
			readerID, mem.SchoolID, mem.CourseID,
		)
	}
}
