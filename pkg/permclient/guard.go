package permclient

import "sync"

// Navigator redirects the client to another view, e.g. a login screen or
// the dashboard root.
type Navigator interface {
	Redirect(path string)
}

// GuardConfig controls a render guard. Exactly one of Permission,
// AllowedRoles, or MinRole should be set; with none set the guard only
// requires a resolved snapshot with an organization.
type GuardConfig struct {
	// Permission grants access when the snapshot carries it.
	Permission Permission
	// AllowedRoles grants access when the current role satisfies one of
	// these. The comparison is hierarchy-aware, matching the server
	// guard: an owner passes a coach-gated view.
	AllowedRoles []Role
	// MinRole grants access to this role and anything more privileged.
	MinRole Role
	// FallbackPath is where unauthorized users are redirected.
	// Defaults to "/".
	FallbackPath string
	// Placeholder renders while the snapshot is loading. Nil renders
	// nothing.
	Placeholder func()
}

// roleRank orders roles most privileged first, for role comparisons.
// Unknown roles rank below everything.
var roleRank = map[Role]int{
	RoleOwner:  1,
	RoleAdmin:  2,
	RoleCoach:  3,
	RoleViewer: 4,
}

// satisfies reports whether role is at least as privileged as required.
// Unknown roles fail closed.
func satisfies(role, required Role) bool {
	rank, ok := roleRank[role]
	requiredRank, requiredOK := roleRank[required]
	return ok && requiredOK && rank <= requiredRank
}

// Guard wraps a render callback with a permission check against the state.
// Calling the returned function renders at most one of three things:
//
//   - loading: the placeholder, never a redirect — a slow snapshot must not
//     bounce a user who will turn out to be authorized;
//   - unauthorized (resolve error, no organization, or insufficient role):
//     one Redirect to the fallback path per resolved version, so re-renders
//     do not stack navigations but a Refresh that downgrades the role
//     redirects again;
//   - authorized: the wrapped render, unchanged.
func Guard(cfg GuardConfig, state *State, nav Navigator, render func()) func() {
	fallback := cfg.FallbackPath
	if fallback == "" {
		fallback = "/"
	}

	var mu sync.Mutex
	var redirectedVersion uint64
	var redirected bool

	return func() {
		if state.Loading() {
			if cfg.Placeholder != nil {
				cfg.Placeholder()
			}
			return
		}

		if authorized(cfg, state) {
			render()
			return
		}

		version := state.Version()
		mu.Lock()
		repeat := redirected && redirectedVersion == version
		redirected = true
		redirectedVersion = version
		mu.Unlock()
		if repeat {
			return
		}

		nav.Redirect(fallback)
	}
}

func authorized(cfg GuardConfig, state *State) bool {
	if state.Err() != nil {
		return false
	}
	role := state.CurrentRole()
	if role == "" {
		return false
	}

	switch {
	case cfg.Permission != "":
		return state.Can(cfg.Permission)
	case cfg.AllowedRoles != nil:
		// A non-nil empty list is a deny-all, not "no check".
		for _, r := range cfg.AllowedRoles {
			if satisfies(role, r) {
				return true
			}
		}
		return false
	case cfg.MinRole != "":
		return satisfies(role, cfg.MinRole)
	default:
		return true
	}
}
