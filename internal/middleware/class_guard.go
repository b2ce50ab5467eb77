package middleware

import (
	"clubhub/internal/observability"
	"clubhub/internal/rbac"
	"clubhub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Context keys for storing class data
const (
	ClassIDKey   = "classID"
	ClassRoleKey = "classRole"
)

// RequireClassRole returns a middleware enforcing a class roster check on
// routes carrying a classId path parameter. The same fail-closed rules as
// RequireOrgRole apply: users not on the roster, and roster lookups that
// fail, both deny.
func RequireClassRole(resolver *rbac.ClassResolver, metrics *observability.Metrics, permission rbac.ClassPermission) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDStr := GetUserID(c)
		if userIDStr == "" {
			countGuard(metrics, "class", "unauthenticated")
			response.Unauthorized(c, "user not authenticated")
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(userIDStr)
		if err != nil {
			countGuard(metrics, "class", "unauthenticated")
			response.Unauthorized(c, "invalid user id format")
			c.Abort()
			return
		}

		classID, err := primitive.ObjectIDFromHex(c.Param("classId"))
		if err != nil {
			countGuard(metrics, "class", "bad_request")
			response.BadRequest(c, "invalid class id format")
			c.Abort()
			return
		}

		role, ok := resolver.RoleInClass(c.Request.Context(), userID, classID)
		if !ok {
			countGuard(metrics, "class", "forbidden")
			response.Forbidden(c, "not enrolled in class")
			c.Abort()
			return
		}

		if !rbac.ClassAllowed(role, permission) {
			countGuard(metrics, "class", "forbidden")
			response.Forbidden(c, "insufficient class permissions")
			c.Abort()
			return
		}

		countGuard(metrics, "class", "allowed")
		c.Set(ClassIDKey, classID)
		c.Set(ClassRoleKey, role)

		c.Next()
	}
}

// AllowOrgManagersOr wraps a class roster check, letting organization roles
// that can manage members through without a roster lookup. Coaches and
// viewers still need the class role. Must run after RequireOrgRole so the
// organization role is in the context.
func AllowOrgManagersOr(classCheck gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rbac.Allowed(GetOrgRole(c), rbac.PermManageMembers) {
			c.Next()
			return
		}
		classCheck(c)
	}
}

// GetClassID retrieves the class ID from the context.
func GetClassID(c *gin.Context) (primitive.ObjectID, bool) {
	classID, exists := c.Get(ClassIDKey)
	if !exists {
		return primitive.NilObjectID, false
	}
	return classID.(primitive.ObjectID), true
}

// GetClassRole retrieves the user's class role from the context.
func GetClassRole(c *gin.Context) rbac.ClassRole {
	role, exists := c.Get(ClassRoleKey)
	if !exists {
		return ""
	}
	return role.(rbac.ClassRole)
}
