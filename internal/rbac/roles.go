// Package rbac implements organization-scoped role-based access control:
// the role hierarchy, permission presets, pure permission checks, and the
// resolver that looks up a user's role through the membership directory.
package rbac

// Role is a privilege tier assigned to a user within one organization.
type Role string

// Organization roles, most privileged first.
const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleCoach  Role = "coach"
	RoleViewer Role = "viewer"
)

// roleLevels maps each role to its privilege level. Lower level = more
// privileged. The map must stay total and strictly ordered: every role has
// exactly one level and no two roles share one. Adding a role means picking
// its rank here, not appending to the end.
var roleLevels = map[Role]int{
	RoleOwner:  1,
	RoleAdmin:  2,
	RoleCoach:  3,
	RoleViewer: 4,
}

// Level returns the role's privilege level. The second return is false for
// roles outside the organization scheme.
func (r Role) Level() (int, bool) {
	level, ok := roleLevels[r]
	return level, ok
}

// Valid reports whether r is a declared organization role.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// OrgRoles returns all organization roles ordered most to least privileged.
func OrgRoles() []Role {
	return []Role{RoleOwner, RoleAdmin, RoleCoach, RoleViewer}
}

// ClassRole is a privilege tier within one class roster. Class roles are a
// separate role space from organization roles; the two are never compared
// or converted, which the distinct type enforces at compile time.
type ClassRole string

// Class roles, most privileged first.
const (
	ClassRoleTeacher ClassRole = "teacher"
	ClassRoleStudent ClassRole = "student"
	ClassRoleParent  ClassRole = "parent"
)

// classRoleLevels follows the same total, strictly ordered contract as
// roleLevels.
var classRoleLevels = map[ClassRole]int{
	ClassRoleTeacher: 1,
	ClassRoleStudent: 2,
	ClassRoleParent:  3,
}

// Level returns the class role's privilege level. The second return is
// false for roles outside the class scheme.
func (r ClassRole) Level() (int, bool) {
	level, ok := classRoleLevels[r]
	return level, ok
}

// Valid reports whether r is a declared class role.
func (r ClassRole) Valid() bool {
	_, ok := classRoleLevels[r]
	return ok
}

// ClassRoles returns all class roles ordered most to least privileged.
func ClassRoles() []ClassRole {
	return []ClassRole{ClassRoleTeacher, ClassRoleStudent, ClassRoleParent}
}
