package permclient

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// recordingNavigator records redirect calls.
type recordingNavigator struct {
	paths []string
}

func (n *recordingNavigator) Redirect(path string) {
	n.paths = append(n.paths, path)
}

func loadedState(t *testing.T, snapshot *Snapshot, fetchErr error) *State {
	t.Helper()
	state := NewState(&stubSource{
		FetchFunc: func(ctx context.Context) (*Snapshot, error) {
			return snapshot, fetchErr
		},
	})
	_ = state.Load(context.Background())
	return state
}

func TestGuard_Loading(t *testing.T) {
	state := NewState(&stubSource{})
	nav := &recordingNavigator{}
	placeholderShown := false
	rendered := false

	render := Guard(GuardConfig{
		Permission:  PermViewContent,
		Placeholder: func() { placeholderShown = true },
	}, state, nav, func() { rendered = true })

	render()
	render()

	assert.True(t, placeholderShown)
	assert.False(t, rendered)
	assert.Empty(t, nav.paths, "loading must never redirect")
}

func TestGuard_Authorized(t *testing.T) {
	tests := []struct {
		name string
		cfg  GuardConfig
		role Role
	}{
		{
			name: "permission check",
			cfg:  GuardConfig{Permission: PermCreateContent},
			role: RoleCoach,
		},
		{
			name: "allowed roles check",
			cfg:  GuardConfig{AllowedRoles: []Role{RoleOwner, RoleAdmin}},
			role: RoleAdmin,
		},
		{
			name: "allowed roles admit more privileged roles",
			cfg:  GuardConfig{AllowedRoles: []Role{RoleCoach}},
			role: RoleOwner,
		},
		{
			name: "min role admits the role itself",
			cfg:  GuardConfig{MinRole: RoleCoach},
			role: RoleCoach,
		},
		{
			name: "min role admits more privileged roles",
			cfg:  GuardConfig{MinRole: RoleCoach},
			role: RoleOwner,
		},
		{
			name: "no check requires only an organization",
			cfg:  GuardConfig{},
			role: RoleViewer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := coachSnapshot()
			snapshot.Role = tt.role
			state := loadedState(t, snapshot, nil)
			nav := &recordingNavigator{}
			rendered := false

			render := Guard(tt.cfg, state, nav, func() { rendered = true })
			render()

			assert.True(t, rendered)
			assert.Empty(t, nav.paths)
		})
	}
}

func TestGuard_Unauthorized(t *testing.T) {
	tests := []struct {
		name     string
		cfg      GuardConfig
		snapshot *Snapshot
		fetchErr error
	}{
		{
			name:     "missing permission",
			cfg:      GuardConfig{Permission: PermManageMembers},
			snapshot: coachSnapshot(),
		},
		{
			name:     "role not in allowed list",
			cfg:      GuardConfig{AllowedRoles: []Role{RoleOwner, RoleAdmin}},
			snapshot: coachSnapshot(),
		},
		{
			name:     "role below the minimum",
			cfg:      GuardConfig{MinRole: RoleAdmin},
			snapshot: coachSnapshot(),
		},
		{
			name:     "empty allowed list denies everyone",
			cfg:      GuardConfig{AllowedRoles: []Role{}, MinRole: ""},
			snapshot: coachSnapshot(),
		},
		{
			name:     "resolve error",
			cfg:      GuardConfig{Permission: PermViewContent},
			fetchErr: errors.New("connection refused"),
		},
		{
			name:     "no organization",
			cfg:      GuardConfig{},
			snapshot: nil,
			fetchErr: errors.New("no organization"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := loadedState(t, tt.snapshot, tt.fetchErr)
			nav := &recordingNavigator{}
			rendered := false

			render := Guard(tt.cfg, state, nav, func() { rendered = true })
			render()
			render()
			render()

			assert.False(t, rendered)
			assert.Equal(t, []string{"/"}, nav.paths, "one redirect per resolved version")
		})
	}
}

func TestGuard_FallbackPath(t *testing.T) {
	state := loadedState(t, coachSnapshot(), nil)
	nav := &recordingNavigator{}

	render := Guard(GuardConfig{
		Permission:   PermManageOrganization,
		FallbackPath: "/dashboard",
	}, state, nav, func() {})
	render()

	assert.Equal(t, []string{"/dashboard"}, nav.paths)
}

func TestGuard_RedirectsAgainAfterRefresh(t *testing.T) {
	snapshots := []*Snapshot{
		coachSnapshot(),
		{OrgID: "x", OrgName: "x", Role: RoleViewer, Permissions: []Permission{PermViewContent}},
	}
	calls := 0
	state := NewState(&stubSource{
		FetchFunc: func(ctx context.Context) (*Snapshot, error) {
			snapshot := snapshots[calls]
			calls++
			return snapshot, nil
		},
	})
	assert.NoError(t, state.Load(context.Background()))

	nav := &recordingNavigator{}
	render := Guard(GuardConfig{Permission: PermManageMembers}, state, nav, func() {})

	render()
	render()
	assert.Len(t, nav.paths, 1)

	// A refresh resolves a new version; the still-unauthorized user is
	// redirected once more.
	assert.NoError(t, state.Refresh(context.Background()))
	render()
	render()
	assert.Len(t, nav.paths, 2)
}

func TestGuard_AuthorizedAfterRefresh(t *testing.T) {
	snapshots := []*Snapshot{
		{OrgID: "x", OrgName: "x", Role: RoleViewer, Permissions: []Permission{PermViewContent}},
		coachSnapshot(),
	}
	calls := 0
	state := NewState(&stubSource{
		FetchFunc: func(ctx context.Context) (*Snapshot, error) {
			snapshot := snapshots[calls]
			calls++
			return snapshot, nil
		},
	})
	assert.NoError(t, state.Load(context.Background()))

	nav := &recordingNavigator{}
	rendered := 0
	render := Guard(GuardConfig{Permission: PermCreateContent}, state, nav, func() { rendered++ })

	render()
	assert.Equal(t, 0, rendered)
	assert.Len(t, nav.paths, 1)

	assert.NoError(t, state.Refresh(context.Background()))
	render()
	assert.Equal(t, 1, rendered)
	assert.Len(t, nav.paths, 1)
}
