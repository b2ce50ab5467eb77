package handler

import (
	"errors"
	"strconv"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/middleware"
	"clubhub/internal/models"
	"clubhub/internal/service"
	"clubhub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MembershipHandler handles HTTP requests for organization member operations.
type MembershipHandler struct {
	service service.MembershipServicer
}

// NewMembershipHandler creates a new MembershipHandler.
func NewMembershipHandler(service service.MembershipServicer) *MembershipHandler {
	return &MembershipHandler{service: service}
}

// ListMembers godoc
// @Summary      List organization members
// @Description  Retrieve paginated list of organization members with user details. Requires membership.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        orgId  path      string  true   "Organization ID"
// @Param        page   query     int     false  "Page number (default: 1)"
// @Param        limit  query     int     false  "Items per page (default: 20, max: 100)"
// @Success      200    {object}  response.Response{data=models.MembershipListResponse}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/members [get]
func (h *MembershipHandler) ListMembers(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.service.ListMembers(c.Request.Context(), orgID, page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetMember godoc
// @Summary      Get organization member
// @Description  Retrieve a single member of the organization. Requires membership.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        orgId   path      string  true  "Organization ID"
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  response.Response{data=models.Membership}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/members/{userId} [get]
func (h *MembershipHandler) GetMember(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "invalid user id format")
		return
	}

	member, err := h.service.GetMember(c.Request.Context(), orgID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotOrgMember) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, member)
}

// RemoveMember godoc
// @Summary      Remove organization member
// @Description  Remove a member from the organization. Requires owner or admin role; removing an admin requires owner.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        orgId   path      string  true  "Organization ID"
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/members/{userId} [delete]
func (h *MembershipHandler) RemoveMember(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	requestingUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	targetUserID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "invalid user id format")
		return
	}

	if err := h.service.RemoveMember(c.Request.Context(), orgID, targetUserID, requestingUserID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotOrgMember):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrCannotRemoveOwner),
			errors.Is(err, apperrors.ErrCannotRemoveSelf),
			errors.Is(err, apperrors.ErrInsufficientPermissions):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, gin.H{"message": "member removed"})
}

// UpdateRole godoc
// @Summary      Update member role
// @Description  Change a member's role. Owner cannot be granted this way; changing an admin requires owner.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        orgId   path      string                    true  "Organization ID"
// @Param        userId  path      string                    true  "User ID"
// @Param        body    body      models.UpdateRoleRequest  true  "New role"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/members/{userId}/role [put]
func (h *MembershipHandler) UpdateRole(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	requestingUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	targetUserID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "invalid user id format")
		return
	}

	var req models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.UpdateRole(c.Request.Context(), orgID, targetUserID, requestingUserID, req.Role); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidRole):
			response.BadRequest(c, err.Error())
		case errors.Is(err, apperrors.ErrNotOrgMember):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrCannotChangeOwnerRole),
			errors.Is(err, apperrors.ErrInsufficientPermissions):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, gin.H{"message": "role updated"})
}

// Leave godoc
// @Summary      Leave organization
// @Description  Leave an organization. The owner must transfer ownership first.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        orgId  path      string  true  "Organization ID"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/members/leave [post]
func (h *MembershipHandler) Leave(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.service.Leave(c.Request.Context(), orgID, userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotOrgMember):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrOwnerCannotLeave):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, gin.H{"message": "left organization"})
}

// SetPrimary godoc
// @Summary      Switch current organization
// @Description  Mark an organization as the authenticated user's current one. Requires membership.
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        orgId  path      string  true  "Organization ID"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/primary [post]
func (h *MembershipHandler) SetPrimary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	orgID, err := primitive.ObjectIDFromHex(c.Param("orgId"))
	if err != nil {
		response.BadRequest(c, "invalid organization id format")
		return
	}

	if err := h.service.SetPrimary(c.Request.Context(), userID, orgID); err != nil {
		if errors.Is(err, apperrors.ErrNotOrgMember) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "current organization updated"})
}
