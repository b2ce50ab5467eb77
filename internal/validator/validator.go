package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"clubhub/internal/rbac"
)

// slugRegex matches valid slugs: lowercase alphanumeric with hyphens, no leading/trailing/consecutive hyphens
var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// validateSlug validates that a string is a valid slug
func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

// validateOrgRole validates that a string names a known organization role
func validateOrgRole(fl validator.FieldLevel) bool {
	return rbac.Role(fl.Field().String()).Valid()
}

// validateClassRole validates that a string names a known class role
func validateClassRole(fl validator.FieldLevel) bool {
	return rbac.ClassRole(fl.Field().String()).Valid()
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("slug", validateSlug)
		_ = v.RegisterValidation("orgrole", validateOrgRole)
		_ = v.RegisterValidation("classrole", validateClassRole)
	}
}
