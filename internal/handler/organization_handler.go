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

// OrganizationHandler handles HTTP requests for organization operations.
type OrganizationHandler struct {
	service service.OrganizationServicer
}

// NewOrganizationHandler creates a new OrganizationHandler.
func NewOrganizationHandler(service service.OrganizationServicer) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization godoc
// @Summary      Create a new organization
// @Description  Create a new organization. The authenticated user becomes the owner and the organization becomes their current one.
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        body  body      models.CreateOrganizationRequest  true  "Organization details"
// @Success      201   {object}  response.Response{data=models.Organization}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	org, err := h.service.CreateOrganization(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrgSlugTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, org)
}

// ListMyOrganizations godoc
// @Summary      List user's organizations
// @Description  Retrieve paginated list of organizations the authenticated user belongs to
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        page   query     int  false  "Page number (default: 1)"
// @Param        limit  query     int  false  "Items per page (default: 10, max: 50)"
// @Success      200    {object}  response.Response{data=models.OrganizationListResponse}
// @Failure      401    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs [get]
func (h *OrganizationHandler) ListMyOrganizations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.service.ListMyOrganizations(c.Request.Context(), userID, page, limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetOrganization godoc
// @Summary      Get organization details
// @Description  Retrieve details of a specific organization. Requires membership.
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        orgId  path      string  true  "Organization ID"
// @Success      200    {object}  response.Response{data=models.Organization}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	org, err := h.service.GetOrganization(c.Request.Context(), orgID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrgNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, org)
}

// UpdateOrganization godoc
// @Summary      Update organization
// @Description  Update organization details. Requires owner role.
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        orgId  path      string                            true  "Organization ID"
// @Param        body   body      models.UpdateOrganizationRequest  true  "Organization update details"
// @Success      200    {object}  response.Response{data=models.Organization}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	var req models.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	org, err := h.service.UpdateOrganization(c.Request.Context(), orgID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrgNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrOrgSlugTaken) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, org)
}

// DeleteOrganization godoc
// @Summary      Delete organization
// @Description  Soft delete an organization, its memberships and pending invitations. Requires owner role.
// @Tags         organizations
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
// @Router       /orgs/{orgId} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	if err := h.service.DeleteOrganization(c.Request.Context(), orgID); err != nil {
		if errors.Is(err, apperrors.ErrOrgNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "organization deleted"})
}

// TransferOwnership godoc
// @Summary      Transfer organization ownership
// @Description  Transfer organization ownership to another member. The previous owner stays as admin. Requires owner role.
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        orgId  path      string                           true  "Organization ID"
// @Param        body   body      models.TransferOwnershipRequest  true  "New owner details"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/transfer [post]
func (h *OrganizationHandler) TransferOwnership(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	currentOwnerID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	newOwnerID, err := primitive.ObjectIDFromHex(req.NewOwnerID)
	if err != nil {
		response.BadRequest(c, "invalid new owner id format")
		return
	}

	if err := h.service.TransferOwnership(c.Request.Context(), orgID, currentOwnerID, newOwnerID); err != nil {
		if errors.Is(err, apperrors.ErrNotOrgMember) {
			response.NotFound(c, "new owner must be an organization member")
			return
		}
		if errors.Is(err, apperrors.ErrOrgNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "ownership transferred"})
}

// GetStats godoc
// @Summary      Get organization statistics
// @Description  Retrieve aggregated organization statistics. Requires owner or admin role.
// @Tags         organizations
// @Accept       json
// @Produce      json
// @Param        orgId  path      string  true  "Organization ID"
// @Success      200    {object}  response.Response{data=models.OrganizationStats}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/stats [get]
func (h *OrganizationHandler) GetStats(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	stats, err := h.service.GetStats(c.Request.Context(), orgID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrgNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, stats)
}
