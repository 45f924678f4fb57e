package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRole(t *testing.T) {
	for _, r := range AllRoles {
		assert.Truef(t, IsValidRole(r), "%s harus valid", r)
	}
	assert.False(t, IsValidRole("superadmin"))
	assert.False(t, IsValidRole("Admin"))
	assert.False(t, IsValidRole(""))
}

func TestRoleAfterProfileCreate(t *testing.T) {
	// Satu-satunya transisi otomatis: applied → registered
	assert.Equal(t, RoleRegisteredAlumni, RoleAfterProfileCreate(RoleAppliedAlumni))

	// Role lain tidak berubah (idempotent untuk registered)
	assert.Equal(t, RoleRegisteredAlumni, RoleAfterProfileCreate(RoleRegisteredAlumni))
	assert.Equal(t, RoleAdmin, RoleAfterProfileCreate(RoleAdmin))
	assert.Equal(t, RoleVisitor, RoleAfterProfileCreate(RoleVisitor))
}
