package handler

import (
	"clubhub/internal/models"
	"clubhub/internal/rbac"
	"clubhub/pkg/response"

	"github.com/gin-gonic/gin"
)

// PermissionsHandler serves the caller's permission snapshot: the current
// organization, role, and the permissions that role grants. Clients use it
// to render role-gated UI; every operation is still re-checked server side.
type PermissionsHandler struct {
	resolver *rbac.Resolver
}

// NewPermissionsHandler creates a new PermissionsHandler.
func NewPermissionsHandler(resolver *rbac.Resolver) *PermissionsHandler {
	return &PermissionsHandler{resolver: resolver}
}

// GetMyPermissions godoc
// @Summary      Get permission snapshot
// @Description  Retrieve the authenticated user's current organization, role and granted permissions
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=models.PermissionSnapshot}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /me/permissions [get]
func (h *PermissionsHandler) GetMyPermissions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	org, outcome := h.resolver.ResolveCurrentOrg(c.Request.Context(), userID)
	switch outcome {
	case rbac.OutcomeNotFound:
		// A user with no organization has an incomplete identity
		response.Unauthorized(c, "no organization")
		return
	case rbac.OutcomeError:
		response.InternalError(c)
		return
	}

	response.Success(c, models.PermissionSnapshot{
		OrgID:       org.OrgID.Hex(),
		OrgName:     org.OrgName,
		Role:        org.Role,
		Permissions: rbac.PermissionsForRole(org.Role),
	})
}
