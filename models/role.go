package models

// Role identifies one of the four fixed application roles. The role table is
// static configuration: levels, base permission sets, and request quotas are
// fixed at compile time and are not user-mutable at runtime.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleTechnician Role = "technician"
	RoleViewer     Role = "viewer"
)

// roleInfo holds the static attributes of a role.
type roleInfo struct {
	level       int
	permissions Permission
	rateQuota   int // requests per minute
}

// roleTable is the closed role catalog. Ordering is total and fixed:
// admin > manager > technician > viewer.
var roleTable = map[Role]roleInfo{
	RoleAdmin: {
		level: 4,
		permissions: PermissionRead | PermissionWrite | PermissionDelete |
			PermissionManageUsers | PermissionSystemAdmin |
			PermissionAuditLogs | PermissionConfiguration,
		rateQuota: 1000,
	},
	RoleManager: {
		level:       3,
		permissions: PermissionRead | PermissionWrite | PermissionManageTeam | PermissionViewReports,
		rateQuota:   500,
	},
	RoleTechnician: {
		level:       2,
		permissions: PermissionRead | PermissionWrite | PermissionMaintenance,
		rateQuota:   200,
	},
	RoleViewer: {
		level:       1,
		permissions: PermissionRead,
		rateQuota:   100,
	},
}

// Roles lists every known role ordered from highest to lowest level.
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleTechnician, RoleViewer}
}

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	_, ok := roleTable[r]
	return ok
}

// Level returns the role's ordering level. An unknown role has level 0 and
// therefore never satisfies any role requirement.
func (r Role) Level() int {
	return roleTable[r].level
}

// BasePermissions returns the capabilities granted by the role itself, before
// any per-principal overrides are applied.
func (r Role) BasePermissions() Permission {
	return roleTable[r].permissions
}

// RateQuota returns the number of requests the role may issue per sliding
// 60-second window. An unknown role gets the conservative default of 50.
func (r Role) RateQuota() int {
	info, ok := roleTable[r]
	if !ok {
		return 50
	}
	return info.rateQuota
}

// IsTopLevel reports whether r is the highest-level role. The permission
// engine grants top-level principals every declared requirement; the check is
// an explicit, deliberate policy rather than an accidental fallthrough.
func (r Role) IsTopLevel() bool {
	return r == RoleAdmin
}
