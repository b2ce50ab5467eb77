// Package permclient is a small client SDK for the permission snapshot
// endpoint. Thin clients (mobile shells, TUIs) keep one State per signed-in
// user and consult it before rendering privileged views. The package is
// self-contained so it can be imported without pulling in the server.
package permclient

import (
	"context"
	"sync"
)

// Role is an organization role as it appears on the wire.
type Role string

// Organization roles, most privileged first.
const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleCoach  Role = "coach"
	RoleViewer Role = "viewer"
)

// Permission is a permission name as it appears on the wire.
type Permission string

// Permissions returned in snapshots.
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

// Snapshot is the permission set for the user's current organization.
type Snapshot struct {
	OrgID       string       `json:"orgId"`
	OrgName     string       `json:"orgName"`
	Role        Role         `json:"role"`
	Permissions []Permission `json:"permissions"`
}

// Source resolves the current snapshot, typically over HTTP.
type Source interface {
	Fetch(ctx context.Context) (*Snapshot, error)
}

// State holds the resolved snapshot for one user session. It starts in the
// loading state; Load resolves it once, Refresh re-resolves after role or
// organization changes. A single goroutine loads, any number read.
type State struct {
	source Source

	mu       sync.RWMutex
	loading  bool
	snapshot *Snapshot
	err      error
	version  uint64
}

// NewState creates a State in the loading state.
func NewState(source Source) *State {
	return &State{
		source:  source,
		loading: true,
	}
}

// Load resolves the snapshot through the source. The state leaves loading
// whether or not the fetch succeeded; a failed fetch is a resolved error,
// not a pending one. Each resolution bumps the version counter.
func (s *State) Load(ctx context.Context) error {
	snapshot, err := s.source.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.snapshot = snapshot
	s.err = err
	s.version++
	return err
}

// Refresh re-resolves the snapshot. Callers use it after accepting an
// invitation, switching the primary organization, or a role change push.
func (s *State) Refresh(ctx context.Context) error {
	return s.Load(ctx)
}

// Loading reports whether the snapshot has not been resolved yet.
func (s *State) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the error from the last resolution, if any.
func (s *State) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Version returns the resolution counter. It starts at zero and increments
// on every Load or Refresh.
func (s *State) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// OrgID returns the current organization's ID, or "" while unresolved.
func (s *State) OrgID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return ""
	}
	return s.snapshot.OrgID
}

// OrgName returns the current organization's name, or "" while unresolved.
func (s *State) OrgName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return ""
	}
	return s.snapshot.OrgName
}

// CurrentRole returns the user's role in the current organization, or ""
// while loading, after an error, or when the user has no organization.
func (s *State) CurrentRole() Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return ""
	}
	return s.snapshot.Role
}

// Can reports whether the snapshot grants the permission. False while
// loading or unresolved, so privileged UI stays hidden until the snapshot
// arrives.
func (s *State) Can(permission Permission) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return false
	}
	for _, p := range s.snapshot.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// HasRole reports whether the user's current role is exactly the given one.
func (s *State) HasRole(role Role) bool {
	return s.CurrentRole() == role && role != ""
}

// HasAnyRole reports whether the user's current role is exactly one of the
// given ones. There is no hierarchy here; for "this role or better" checks
// use GuardConfig.MinRole or AllowedRoles. An empty list matches nothing.
func (s *State) HasAnyRole(roles ...Role) bool {
	current := s.CurrentRole()
	if current == "" {
		return false
	}
	for _, role := range roles {
		if role == current {
			return true
		}
	}
	return false
}

// IsOwner reports whether the user owns the current organization.
func (s *State) IsOwner() bool {
	return s.HasRole(RoleOwner)
}

// IsAdminOrOwner reports whether the user can manage the current
// organization's members.
func (s *State) IsAdminOrOwner() bool {
	return s.HasAnyRole(RoleOwner, RoleAdmin)
}

// CanManageContent reports whether the user can create or edit content in
// the current organization.
func (s *State) CanManageContent() bool {
	return s.Can(PermCreateContent)
}
