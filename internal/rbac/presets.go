package rbac

// Permission names an operation that can be gated by a role check.
type Permission string

// Organization permissions.
const (
	PermManageOrganization Permission = "MANAGE_ORGANIZATION"
	PermManageMembers      Permission = "MANAGE_MEMBERS"
	PermInviteMembers      Permission = "INVITE_MEMBERS"
	PermManageBilling      Permission = "MANAGE_BILLING"
	PermCreateContent      Permission = "CREATE_CONTENT"
	PermUpdateContent      Permission = "UPDATE_CONTENT"
	PermDeleteContent      Permission = "DELETE_CONTENT"
	PermViewContent        Permission = "VIEW_CONTENT"
	PermViewAnalytics      Permission = "VIEW_ANALYTICS"
)

// presets maps each permission to the roles allowed to perform it. Each
// list names the minimum sufficient roles; because checks go through the
// hierarchy, any role outranking a listed one is also accepted. Lists are
// static configuration and must only contain declared roles.
var presets = map[Permission][]Role{
	PermManageOrganization: {RoleOwner},
	PermManageMembers:      {RoleOwner, RoleAdmin},
	PermInviteMembers:      {RoleOwner, RoleAdmin},
	PermManageBilling:      {RoleOwner, RoleAdmin},
	PermCreateContent:      {RoleOwner, RoleAdmin, RoleCoach},
	PermUpdateContent:      {RoleOwner, RoleAdmin, RoleCoach},
	PermDeleteContent:      {RoleOwner, RoleAdmin},
	PermViewContent:        {RoleOwner, RoleAdmin, RoleCoach, RoleViewer},
	PermViewAnalytics:      {RoleOwner, RoleAdmin},
}

// Roles returns the roles allowed to perform the permission, or nil for an
// unknown permission. The returned slice is a copy.
func (p Permission) Roles() []Role {
	roles, ok := presets[p]
	if !ok {
		return nil
	}
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// Valid reports whether p is a declared permission.
func (p Permission) Valid() bool {
	_, ok := presets[p]
	return ok
}

// Permissions returns all declared organization permissions.
func Permissions() []Permission {
	return []Permission{
		PermManageOrganization,
		PermManageMembers,
		PermInviteMembers,
		PermManageBilling,
		PermCreateContent,
		PermUpdateContent,
		PermDeleteContent,
		PermViewContent,
		PermViewAnalytics,
	}
}

// PermissionsForRole returns every permission the role satisfies. Used to
// build the client permission snapshot.
func PermissionsForRole(role Role) []Permission {
	var out []Permission
	for _, p := range Permissions() {
		if Allowed(role, p) {
			out = append(out, p)
		}
	}
	return out
}

// ClassPermission names an operation gated by a class role check.
type ClassPermission string

// Class permissions.
const (
	ClassPermManageRoster  ClassPermission = "MANAGE_ROSTER"
	ClassPermRecordResults ClassPermission = "RECORD_RESULTS"
	ClassPermViewRoster    ClassPermission = "VIEW_ROSTER"
)

var classPresets = map[ClassPermission][]ClassRole{
	ClassPermManageRoster:  {ClassRoleTeacher},
	ClassPermRecordResults: {ClassRoleTeacher},
	ClassPermViewRoster:    {ClassRoleTeacher, ClassRoleStudent, ClassRoleParent},
}

// Roles returns the class roles allowed to perform the permission, or nil
// for an unknown permission. The returned slice is a copy.
func (p ClassPermission) Roles() []ClassRole {
	roles, ok := classPresets[p]
	if !ok {
		return nil
	}
	out := make([]ClassRole, len(roles))
	copy(out, roles)
	return out
}

// Valid reports whether p is a declared class permission.
func (p ClassPermission) Valid() bool {
	_, ok := classPresets[p]
	return ok
}
