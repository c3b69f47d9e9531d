package authz

// Role ids as issued in the role_id claim by the identity service.
const (
	RoleTreasury   = 10
	RoleAccounting = 20
	RoleAudit      = 30
	RoleManagement = 40
	RoleAdmin      = 50
)

func IsReadOnly(roleID int) bool {
	return roleID == RoleAudit
}

// Planners and Settlers are the allow-lists handed to RequireRoles.
var (
	Planners = []int{RoleTreasury, RoleManagement, RoleAdmin}
	Settlers = []int{RoleTreasury, RoleAccounting, RoleManagement, RoleAdmin}
)
