package constants

import "fmt"

// Role identitas (kolom users.role). Harus selalu salah satu dari empat nilai ini.
const (
	RoleAdmin            = "admin"
	RoleRegisteredAlumni = "registered_alumni"
	RoleAppliedAlumni    = "applied_alumni"
	RoleVisitor          = "visitor"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyAlumniCanAccess = "❌ Hanya registered alumni atau admin yang boleh mengakses fitur %s."
	ErrAuthenticatedOnly   = "❌ Fitur %s hanya untuk pengguna yang sudah login."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorAlumni(feature string) string {
	return fmt.Sprintf(ErrOnlyAlumniCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleRegisteredAlumni,
		RoleAppliedAlumni,
		RoleVisitor,
	}

	// Boleh kirim/baca pesan internal
	MessagingRoles = []string{
		RoleAdmin,
		RoleRegisteredAlumni,
	}

	// Boleh membuat profil alumni (trigger transisi applied → registered)
	ProfileCreateRoles = []string{
		RoleAppliedAlumni,
		RoleRegisteredAlumni,
		RoleAdmin,
	}

	// Boleh update profil (owner check tetap di controller)
	ProfileUpdateRoles = []string{
		RoleRegisteredAlumni,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

// IsValidRole memastikan nilai role termasuk empat nilai yang sah.
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if role == r {
			return true
		}
	}
	return false
}

// RoleAfterProfileCreate: transisi satu arah saat profil pertama berhasil dibuat.
// applied_alumni → registered_alumni; role lain tidak berubah.
func RoleAfterProfileCreate(current string) string {
	if current == RoleAppliedAlumni {
		return RoleRegisteredAlumni
	}
	return current
}
