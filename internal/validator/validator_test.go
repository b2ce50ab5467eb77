package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clubhub/internal/rbac"
)

func TestSlugRegex(t *testing.T) {
	tests := []struct {
		name  string
		slug  string
		valid bool
	}{
		// Valid slugs
		{"simple lowercase", "riverside", true},
		{"with single hyphen", "riverside-fc", true},
		{"with multiple hyphens", "my-sports-club", true},
		{"with numbers", "club123", true},
		{"numbers and hyphens", "club-123-east", true},
		{"single character", "a", true},
		{"single digit", "1", true},
		{"starts with number", "123abc", true},
		{"ends with number", "abc123", true},
		{"alternating", "a1b2c3", true},

		// Invalid slugs
		{"uppercase letter", "Riverside", false},
		{"mixed case", "RiversideFC", false},
		{"leading hyphen", "-riverside", false},
		{"trailing hyphen", "riverside-", false},
		{"consecutive hyphens", "riverside--fc", false},
		{"multiple consecutive hyphens", "riverside---fc", false},
		{"space", "riverside fc", false},
		{"empty string", "", false},
		{"special char @", "riverside@fc", false},
		{"special char !", "riverside!", false},
		{"underscore", "riverside_fc", false},
		{"dot", "riverside.fc", false},
		{"only hyphen", "-", false},
		{"only hyphens", "---", false},
		{"hyphen between hyphens", "a--b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := slugRegex.MatchString(tt.slug)
			assert.Equal(t, tt.valid, result, "slug: %q", tt.slug)
		})
	}
}

func TestRoleValidators(t *testing.T) {
	t.Run("organization roles", func(t *testing.T) {
		for _, role := range []rbac.Role{rbac.RoleOwner, rbac.RoleAdmin, rbac.RoleCoach, rbac.RoleViewer} {
			assert.True(t, role.Valid(), "role: %q", role)
		}
		for _, role := range []rbac.Role{"", "superadmin", "OWNER", "teacher"} {
			assert.False(t, role.Valid(), "role: %q", role)
		}
	})

	t.Run("class roles", func(t *testing.T) {
		for _, role := range []rbac.ClassRole{rbac.ClassRoleTeacher, rbac.ClassRoleStudent, rbac.ClassRoleParent} {
			assert.True(t, role.Valid(), "role: %q", role)
		}
		for _, role := range []rbac.ClassRole{"", "coach", "Teacher"} {
			assert.False(t, role.Valid(), "role: %q", role)
		}
	})
}

func TestRegisterCustomValidators(t *testing.T) {
	// This test verifies that RegisterCustomValidators doesn't panic
	// The actual validation is tested through integration tests
	t.Run("does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			RegisterCustomValidators()
		})
	})
}
