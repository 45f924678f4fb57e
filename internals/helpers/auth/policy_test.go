package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"alumniku_backend/internals/constants"
)

func TestAllowed_RoleSets(t *testing.T) {
	cases := []struct {
		name string
		op   Operation
		role string
		want bool
	}{
		// Admin-only operations
		{"role update by admin", OpRoleUpdate, constants.RoleAdmin, true},
		{"role update by registered", OpRoleUpdate, constants.RoleRegisteredAlumni, false},
		{"user delete by applied", OpUserDelete, constants.RoleAppliedAlumni, false},
		{"event write by admin", OpEventWrite, constants.RoleAdmin, true},
		{"event write by visitor", OpEventWrite, constants.RoleVisitor, false},

		// Messaging: admin + registered_alumni saja
		{"message send by registered", OpMessageSend, constants.RoleRegisteredAlumni, true},
		{"message send by admin", OpMessageSend, constants.RoleAdmin, true},
		{"message send by applied", OpMessageSend, constants.RoleAppliedAlumni, false},
		{"message list by visitor", OpMessageList, constants.RoleVisitor, false},
		{"mark read by registered", OpMessageMarkRead, constants.RoleRegisteredAlumni, true},
		{"recipients by applied", OpMessageRecipients, constants.RoleAppliedAlumni, false},

		// Profile create: applied boleh (transisi role), visitor tidak
		{"profile create by applied", OpProfileCreate, constants.RoleAppliedAlumni, true},
		{"profile create by registered", OpProfileCreate, constants.RoleRegisteredAlumni, true},
		{"profile create by visitor", OpProfileCreate, constants.RoleVisitor, false},

		// Profile update: registered + admin, applied tidak
		{"profile update by registered", OpProfileUpdate, constants.RoleRegisteredAlumni, true},
		{"profile update by applied", OpProfileUpdate, constants.RoleAppliedAlumni, false},

		// Authenticated-any operations
		{"auth me by visitor", OpAuthMe, constants.RoleVisitor, true},
		{"directory list by applied", OpDirectoryList, constants.RoleAppliedAlumni, true},
		{"directory stats by visitor", OpDirectoryStats, constants.RoleVisitor, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Allowed(tc.op, tc.role))
		})
	}
}

func TestAllowed_UnknownOperationDenied(t *testing.T) {
	assert.False(t, Allowed(Operation("does.not.exist"), constants.RoleAdmin))
}

func TestAllowed_UnknownRoleDenied(t *testing.T) {
	assert.False(t, Allowed(OpDirectoryList, "superuser"))
	assert.False(t, Allowed(OpDirectoryList, ""))
}

func TestAllowedRoles_ReturnsCopy(t *testing.T) {
	roles := AllowedRoles(OpMessageSend)
	assert.ElementsMatch(t, constants.MessagingRoles, roles)

	// Mutasi hasil tidak boleh bocor ke policy table
	roles[0] = "mutated"
	assert.True(t, Allowed(OpMessageSend, constants.RoleAdmin))
}

func TestPolicy_EveryOperationRegistered(t *testing.T) {
	ops := []Operation{
		OpAuthMe, OpDirectoryList, OpDirectoryDetail, OpDirectoryStats,
		OpRoleUpdate, OpUserDelete, OpEventWrite,
		OpMessageList, OpMessageSend, OpMessageMarkRead, OpMessageRecipients,
		OpProfileMe, OpProfileCreate, OpProfileUpdate,
	}
	for _, op := range ops {
		assert.NotEmptyf(t, AllowedRoles(op), "operation %s tidak terdaftar di policy", op)
	}
}
