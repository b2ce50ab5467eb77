package handler

import (
	"errors"
	"net/http"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/middleware"
	"clubhub/internal/models"
	"clubhub/internal/service"
	"clubhub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InvitationHandler handles HTTP requests for invitation operations.
type InvitationHandler struct {
	invitationService service.InvitationServicer
	userService       service.UserServicer
}

// NewInvitationHandler creates a new InvitationHandler.
func NewInvitationHandler(invitationService service.InvitationServicer, userService service.UserServicer) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
		userService:       userService,
	}
}

// CreateInvitation godoc
// @Summary      Create organization invitation
// @Description  Invite a user by email to join an organization. Requires owner or admin role.
// @Tags         org-invitations
// @Accept       json
// @Produce      json
// @Param        orgId  path      string                          true  "Organization ID"
// @Param        body   body      models.CreateInvitationRequest  true  "Invitation details"
// @Success      201    {object}  response.Response{data=models.Invitation}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Failure      503    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/invitations [post]
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	inviterID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	invitation, err := h.invitationService.CreateInvitation(c.Request.Context(), orgID, inviterID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrAlreadyMember),
			errors.Is(err, apperrors.ErrPendingInvitation):
			response.Conflict(c, err.Error())
		case errors.Is(err, apperrors.ErrSeatsExceeded):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrNotificationQueueFull):
			response.Error(c, http.StatusServiceUnavailable, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, invitation)
}

// ListOrgInvitations godoc
// @Summary      List organization invitations
// @Description  List all pending invitations for an organization. Requires owner or admin role.
// @Tags         org-invitations
// @Accept       json
// @Produce      json
// @Param        orgId  path      string  true  "Organization ID"
// @Success      200    {object}  response.Response{data=models.InvitationListResponse}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/invitations [get]
func (h *InvitationHandler) ListOrgInvitations(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	result, err := h.invitationService.ListOrgInvitations(c.Request.Context(), orgID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// CancelInvitation godoc
// @Summary      Cancel organization invitation
// @Description  Cancel a pending invitation. Requires owner or admin role.
// @Tags         org-invitations
// @Accept       json
// @Produce      json
// @Param        orgId  path      string  true  "Organization ID"
// @Param        id     path      string  true  "Invitation ID"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/invitations/{id} [delete]
func (h *InvitationHandler) CancelInvitation(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	invitationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid invitation id format")
		return
	}

	if err := h.invitationService.CancelInvitation(c.Request.Context(), invitationID, orgID); err != nil {
		if errors.Is(err, apperrors.ErrInvitationNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "invitation cancelled"})
}

// ListMyInvitations godoc
// @Summary      List my invitations
// @Description  List all pending invitations addressed to the authenticated user's email
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=models.MyInvitationListResponse}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /invitations [get]
func (h *InvitationHandler) ListMyInvitations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	// Invitations are addressed by email, so look the user up first
	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	result, err := h.invitationService.ListMyInvitations(c.Request.Context(), user.Email)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// AcceptInvitation godoc
// @Summary      Accept invitation
// @Description  Accept an invitation by token and join the organization with the invited role
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        body  body      models.AcceptInvitationRequest  true  "Invitation token"
// @Success      200   {object}  response.Response{data=models.AcceptInvitationResponse}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      410   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Security     BearerAuth
// @Router       /invitations/accept [post]
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	result, err := h.invitationService.AcceptInvitation(c.Request.Context(), req.Token, userID, user.Email)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvitationNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrInvitationEmailMismatch),
			errors.Is(err, apperrors.ErrSeatsExceeded):
			response.Forbidden(c, err.Error())
		case errors.Is(err, apperrors.ErrInvitationExpired):
			response.Gone(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, result)
}

// DeclineInvitation godoc
// @Summary      Decline invitation
// @Description  Decline an invitation addressed to the authenticated user
// @Tags         invitations
// @Accept       json
// @Produce      json
// @Param        id  path      string  true  "Invitation ID"
// @Success      200 {object}  response.Response
// @Failure      400 {object}  response.Response
// @Failure      401 {object}  response.Response
// @Failure      403 {object}  response.Response
// @Failure      404 {object}  response.Response
// @Failure      500 {object}  response.Response
// @Security     BearerAuth
// @Router       /invitations/{id}/decline [post]
func (h *InvitationHandler) DeclineInvitation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	invitationID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid invitation id format")
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	if err := h.invitationService.DeclineInvitation(c.Request.Context(), invitationID, user.Email); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvitationNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrInvitationEmailMismatch):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, gin.H{"message": "invitation declined"})
}
