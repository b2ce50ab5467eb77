package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	t.Run("role satisfies itself", func(t *testing.T) {
		for _, r := range OrgRoles() {
			assert.True(t, HasPermission(r, r), "%q should satisfy itself", r)
		}
	})

	t.Run("higher role satisfies lower requirement", func(t *testing.T) {
		assert.True(t, HasPermission(RoleOwner, RoleViewer))
		assert.True(t, HasPermission(RoleOwner, RoleAdmin))
		assert.True(t, HasPermission(RoleAdmin, RoleCoach))
		assert.True(t, HasPermission(RoleCoach, RoleViewer))
	})

	t.Run("lower role never satisfies higher requirement", func(t *testing.T) {
		assert.False(t, HasPermission(RoleViewer, RoleCoach))
		assert.False(t, HasPermission(RoleCoach, RoleAdmin))
		assert.False(t, HasPermission(RoleAdmin, RoleOwner))
		assert.False(t, HasPermission(RoleViewer, RoleOwner))
	})

	t.Run("hierarchy is transitive", func(t *testing.T) {
		roles := OrgRoles()
		for _, a := range roles {
			for _, b := range roles {
				for _, c := range roles {
					if HasPermission(a, b) && HasPermission(b, c) {
						assert.True(t, HasPermission(a, c), "%q>=%q and %q>=%q but not %q>=%q", a, b, b, c, a, c)
					}
				}
			}
		}
	})

	t.Run("unknown roles are denied on either side", func(t *testing.T) {
		assert.False(t, HasPermission(Role("superadmin"), RoleViewer))
		assert.False(t, HasPermission(RoleOwner, Role("ghost")))
		assert.False(t, HasPermission(Role(""), Role("")))
	})
}

func TestHasAnyRole(t *testing.T) {
	t.Run("empty allowed list denies everyone", func(t *testing.T) {
		for _, r := range OrgRoles() {
			assert.False(t, HasAnyRole(r, nil), "%q allowed by empty list", r)
			assert.False(t, HasAnyRole(r, []Role{}), "%q allowed by empty list", r)
		}
	})

	t.Run("matches through the hierarchy", func(t *testing.T) {
		assert.True(t, HasAnyRole(RoleOwner, []Role{RoleCoach}))
		assert.True(t, HasAnyRole(RoleAdmin, []Role{RoleAdmin}))
		assert.False(t, HasAnyRole(RoleViewer, []Role{RoleCoach, RoleAdmin}))
	})

	t.Run("unknown roles in the list cannot grant access", func(t *testing.T) {
		assert.False(t, HasAnyRole(RoleOwner, []Role{Role("ghost")}))
	})
}

func TestPresets(t *testing.T) {
	t.Run("presets only reference declared roles", func(t *testing.T) {
		for _, p := range Permissions() {
			for _, r := range p.Roles() {
				assert.True(t, r.Valid(), "preset %q lists unknown role %q", p, r)
			}
		}
	})

	t.Run("every preset is non-empty", func(t *testing.T) {
		for _, p := range Permissions() {
			assert.NotEmpty(t, p.Roles(), "preset %q is empty", p)
		}
	})

	t.Run("owner satisfies every permission", func(t *testing.T) {
		for _, p := range Permissions() {
			assert.True(t, Allowed(RoleOwner, p), "owner denied %q", p)
		}
	})

	t.Run("viewer only reads", func(t *testing.T) {
		assert.True(t, Allowed(RoleViewer, PermViewContent))
		assert.False(t, Allowed(RoleViewer, PermCreateContent))
		assert.False(t, Allowed(RoleViewer, PermManageMembers))
		assert.False(t, Allowed(RoleViewer, PermManageOrganization))
	})

	t.Run("coach manages content but not members", func(t *testing.T) {
		assert.True(t, Allowed(RoleCoach, PermCreateContent))
		assert.True(t, Allowed(RoleCoach, PermUpdateContent))
		assert.False(t, Allowed(RoleCoach, PermDeleteContent))
		assert.False(t, Allowed(RoleCoach, PermInviteMembers))
	})

	t.Run("only owner manages the organization", func(t *testing.T) {
		assert.False(t, Allowed(RoleAdmin, PermManageOrganization))
		assert.True(t, Allowed(RoleOwner, PermManageOrganization))
	})

	t.Run("unknown permission denies everyone", func(t *testing.T) {
		assert.False(t, Allowed(RoleOwner, Permission("LAUNCH_MISSILES")))
		assert.Nil(t, Permission("LAUNCH_MISSILES").Roles())
	})

	t.Run("checks are idempotent", func(t *testing.T) {
		first := Allowed(RoleCoach, PermCreateContent)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, Allowed(RoleCoach, PermCreateContent))
		}
	})
}

func TestPermissionsForRole(t *testing.T) {
	t.Run("owner snapshot covers everything", func(t *testing.T) {
		assert.ElementsMatch(t, Permissions(), PermissionsForRole(RoleOwner))
	})

	t.Run("viewer snapshot is view only", func(t *testing.T) {
		assert.ElementsMatch(t, []Permission{PermViewContent}, PermissionsForRole(RoleViewer))
	})

	t.Run("unknown role yields empty snapshot", func(t *testing.T) {
		assert.Empty(t, PermissionsForRole(Role("ghost")))
	})
}

func TestRequireHelpers(t *testing.T) {
	assert.NoError(t, RequirePermission(RoleAdmin, RoleCoach))
	assert.ErrorIs(t, RequirePermission(RoleViewer, RoleAdmin), ErrAccessDenied)
	assert.NoError(t, RequireAnyRole(RoleOwner, []Role{RoleAdmin}))
	assert.ErrorIs(t, RequireAnyRole(RoleOwner, nil), ErrAccessDenied)
}

func TestHighestRole(t *testing.T) {
	t.Run("picks the most privileged", func(t *testing.T) {
		role, ok := HighestRole([]Role{RoleViewer, RoleAdmin, RoleCoach})
		assert.True(t, ok)
		assert.Equal(t, RoleAdmin, role)
	})

	t.Run("skips unknown roles", func(t *testing.T) {
		role, ok := HighestRole([]Role{Role("ghost"), RoleCoach})
		assert.True(t, ok)
		assert.Equal(t, RoleCoach, role)
	})

	t.Run("empty or all-invalid yields none", func(t *testing.T) {
		_, ok := HighestRole(nil)
		assert.False(t, ok)
		_, ok = HighestRole([]Role{Role("ghost")})
		assert.False(t, ok)
	})
}

func TestClassChecks(t *testing.T) {
	t.Run("class hierarchy mirrors org semantics", func(t *testing.T) {
		assert.True(t, HasClassPermission(ClassRoleTeacher, ClassRoleStudent))
		assert.False(t, HasClassPermission(ClassRoleParent, ClassRoleStudent))
		assert.False(t, HasClassPermission(ClassRole("principal"), ClassRoleParent))
	})

	t.Run("empty class allow list denies", func(t *testing.T) {
		assert.False(t, HasAnyClassRole(ClassRoleTeacher, nil))
	})

	t.Run("class presets", func(t *testing.T) {
		assert.True(t, ClassAllowed(ClassRoleTeacher, ClassPermManageRoster))
		assert.False(t, ClassAllowed(ClassRoleStudent, ClassPermManageRoster))
		assert.True(t, ClassAllowed(ClassRoleParent, ClassPermViewRoster))
	})
}
