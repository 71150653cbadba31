package user

type Permission string

const (
	PermissionTimecardViewOwn Permission = "timecard.view_own"
	PermissionTimecardViewAll Permission = "timecard.view_all"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleOwner: {
		PermissionTimecardViewOwn,
		PermissionTimecardViewAll,
	},
	RoleManager: {
		PermissionTimecardViewOwn,
		PermissionTimecardViewAll,
	},
	RoleEmployee: {
		PermissionTimecardViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
