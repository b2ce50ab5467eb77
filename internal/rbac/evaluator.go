package rbac

import "errors"

// ErrAccessDenied is returned by the Require* variants when a role check
// fails.
var ErrAccessDenied = errors.New("access denied")

// HasPermission reports whether userRole is at least as privileged as
// requiredRole. This is a hierarchy comparison, not set membership: a role
// satisfies a requirement whenever its level is lower or equal, so presets
// only need to list the minimum sufficient role. Unknown roles on either
// side are denied.
func HasPermission(userRole, requiredRole Role) bool {
	userLevel, ok := userRole.Level()
	if !ok {
		return false
	}
	requiredLevel, ok := requiredRole.Level()
	if !ok {
		return false
	}
	return userLevel <= requiredLevel
}

// HasAnyRole reports whether userRole satisfies at least one of the allowed
// roles. An empty allowed list denies everything, including owner.
func HasAnyRole(userRole Role, allowed []Role) bool {
	for _, r := range allowed {
		if HasPermission(userRole, r) {
			return true
		}
	}
	return false
}

// Allowed reports whether userRole satisfies the permission's preset.
func Allowed(userRole Role, p Permission) bool {
	return HasAnyRole(userRole, presets[p])
}

// RequirePermission returns ErrAccessDenied unless userRole is at least as
// privileged as requiredRole.
func RequirePermission(userRole, requiredRole Role) error {
	if !HasPermission(userRole, requiredRole) {
		return ErrAccessDenied
	}
	return nil
}

// RequireAnyRole returns ErrAccessDenied unless userRole satisfies at least
// one of the allowed roles.
func RequireAnyRole(userRole Role, allowed []Role) error {
	if !HasAnyRole(userRole, allowed) {
		return ErrAccessDenied
	}
	return nil
}

// HighestRole returns the most privileged role in the list (minimum level).
// The second return is false for an empty list or a list with no valid
// roles.
func HighestRole(roles []Role) (Role, bool) {
	var best Role
	bestLevel := 0
	found := false
	for _, r := range roles {
		level, ok := r.Level()
		if !ok {
			continue
		}
		if !found || level < bestLevel {
			best = r
			bestLevel = level
			found = true
		}
	}
	return best, found
}

// HasClassPermission is the class-scheme counterpart of HasPermission.
func HasClassPermission(userRole, requiredRole ClassRole) bool {
	userLevel, ok := userRole.Level()
	if !ok {
		return false
	}
	requiredLevel, ok := requiredRole.Level()
	if !ok {
		return false
	}
	return userLevel <= requiredLevel
}

// HasAnyClassRole is the class-scheme counterpart of HasAnyRole.
func HasAnyClassRole(userRole ClassRole, allowed []ClassRole) bool {
	for _, r := range allowed {
		if HasClassPermission(userRole, r) {
			return true
		}
	}
	return false
}

// ClassAllowed reports whether userRole satisfies the class permission's
// preset.
func ClassAllowed(userRole ClassRole, p ClassPermission) bool {
	return HasAnyClassRole(userRole, classPresets[p])
}
