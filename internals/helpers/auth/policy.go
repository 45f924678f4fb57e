// file: internals/helpers/auth/policy.go
//
// Policy table terpusat: operation → allowed role set.
// Semua guard route konsultasi ke sini, tidak ada cek role ad-hoc di call site.
package auth

import "alumniku_backend/internals/constants"

type Operation string

const (
	OpAuthMe            Operation = "auth.me"
	OpDirectoryList     Operation = "directory.list"
	OpDirectoryDetail   Operation = "directory.detail"
	OpDirectoryStats    Operation = "directory.stats"
	OpRoleUpdate        Operation = "alumni.role_update"
	OpUserDelete        Operation = "alumni.user_delete"
	OpEventWrite        Operation = "events.write"
	OpMessageList       Operation = "messages.list"
	OpMessageSend       Operation = "messages.send"
	OpMessageMarkRead   Operation = "messages.mark_read"
	OpMessageRecipients Operation = "messages.recipients"
	OpProfileMe         Operation = "profiles.me"
	OpProfileCreate     Operation = "profiles.create"
	OpProfileUpdate     Operation = "profiles.update"
)

// policy: satu-satunya sumber kebenaran siapa boleh apa.
var policy = map[Operation][]string{
	OpAuthMe:            constants.AllRoles,
	OpDirectoryList:     constants.AllRoles,
	OpDirectoryDetail:   constants.AllRoles,
	OpDirectoryStats:    constants.AllRoles,
	OpRoleUpdate:        constants.AdminOnly,
	OpUserDelete:        constants.AdminOnly,
	OpEventWrite:        constants.AdminOnly,
	OpMessageList:       constants.MessagingRoles,
	OpMessageSend:       constants.MessagingRoles,
	OpMessageMarkRead:   constants.MessagingRoles,
	OpMessageRecipients: constants.MessagingRoles,
	OpProfileMe:         constants.AllRoles,
	OpProfileCreate:     constants.ProfileCreateRoles,
	OpProfileUpdate:     constants.ProfileUpdateRoles,
}

// Allowed: evaluator tunggal. Operation tak terdaftar = deny.
func Allowed(op Operation, role string) bool {
	allowed, ok := policy[op]
	if !ok {
		return false
	}
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// AllowedRoles mengembalikan copy role set sebuah operation (untuk testing/log).
func AllowedRoles(op Operation) []string {
	return append([]string(nil), policy[op]...)
}
