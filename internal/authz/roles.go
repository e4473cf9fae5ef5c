package authz

// Role IDs mirror the rows seeded in the roles table.
const (
	RoleAdmin      = 1
	RoleManagement = 2
	RoleTeamLead   = 3
	RoleSales      = 4
	RoleAudit      = 30
)

// CanManageUsers reports whether the role may create, update or delete users.
func CanManageUsers(roleID int) bool {
	return roleID == RoleAdmin || roleID == RoleManagement
}

// CanSeeAllLeads reports whether the role sees the whole pipeline or only
// leads it owns.
func CanSeeAllLeads(roleID int) bool {
	switch roleID {
	case RoleAdmin, RoleManagement, RoleTeamLead, RoleAudit:
		return true
	default:
		return false
	}
}

// CanReassignLeads reports whether the role may move a lead to another owner.
func CanReassignLeads(roleID int) bool {
	return roleID == RoleAdmin || roleID == RoleManagement || roleID == RoleTeamLead
}

// IsReadOnly marks roles that may inspect everything but never mutate state.
func IsReadOnly(roleID int) bool {
	return roleID == RoleAudit
}
