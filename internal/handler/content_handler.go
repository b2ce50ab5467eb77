package handler

import (
	"errors"
	"strconv"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/middleware"
	"clubhub/internal/models"
	"clubhub/internal/rbac"
	"clubhub/internal/repository"
	"clubhub/internal/service"
	"clubhub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContentHandler handles HTTP requests for content operations.
type ContentHandler struct {
	service service.ContentServicer
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(service service.ContentServicer) *ContentHandler {
	return &ContentHandler{service: service}
}

// canSeeDrafts reports whether the caller's resolved role can see draft
// content in the current organization.
func canSeeDrafts(c *gin.Context) bool {
	return rbac.Allowed(middleware.GetOrgRole(c), rbac.PermUpdateContent)
}

// CreateContent godoc
// @Summary      Create content
// @Description  Create a draft content item. When an attachment is requested the response carries a pre-signed upload URL. Requires coach role or higher.
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        orgId  path      string                       true  "Organization ID"
// @Param        body   body      models.CreateContentRequest  true  "Content details"
// @Success      201    {object}  response.Response{data=models.CreateContentResponse}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/content [post]
func (h *ContentHandler) CreateContent(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	authorID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.CreateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateContent(c.Request.Context(), orgID, authorID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListContent godoc
// @Summary      List content
// @Description  Retrieve paginated content for the organization. Viewers see only published items; coaches and above can also list drafts.
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        orgId   path      string  true   "Organization ID"
// @Param        page    query     int     false  "Page number (default: 1)"
// @Param        limit   query     int     false  "Items per page (default: 20, max: 100)"
// @Param        status  query     string  false  "Filter by status (draft or published)"
// @Param        tag     query     string  false  "Filter by tag"
// @Success      200     {object}  response.Response{data=models.ContentListResponse}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/content [get]
func (h *ContentHandler) ListContent(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	filter := repository.ContentFilter{
		Status: models.ContentStatus(c.Query("status")),
		Tag:    c.Query("tag"),
	}

	result, err := h.service.ListContent(c.Request.Context(), orgID, filter, page, limit, canSeeDrafts(c))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetContent godoc
// @Summary      Get content details
// @Description  Retrieve a content item with a pre-signed download URL for its attachment. Drafts are visible only to coaches and above.
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        orgId  path      string  true  "Organization ID"
// @Param        id     path      string  true  "Content ID"
// @Success      200    {object}  response.Response{data=models.Content}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/content/{id} [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	contentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid content id format")
		return
	}

	content, err := h.service.GetContent(c.Request.Context(), orgID, contentID, canSeeDrafts(c))
	if err != nil {
		if errors.Is(err, apperrors.ErrContentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, content)
}

// UpdateContent godoc
// @Summary      Update content
// @Description  Update a content item's fields. Requires coach role or higher.
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        orgId  path      string                       true  "Organization ID"
// @Param        id     path      string                       true  "Content ID"
// @Param        body   body      models.UpdateContentRequest  true  "Content update details"
// @Success      200    {object}  response.Response{data=models.Content}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/content/{id} [put]
func (h *ContentHandler) UpdateContent(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	contentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid content id format")
		return
	}

	var req models.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	content, err := h.service.UpdateContent(c.Request.Context(), orgID, contentID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrContentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, content)
}

// PublishContent godoc
// @Summary      Publish content
// @Description  Transition a draft to published. Publishing is one-way. Requires coach role or higher.
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        orgId  path      string  true  "Organization ID"
// @Param        id     path      string  true  "Content ID"
// @Success      200    {object}  response.Response{data=models.Content}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/content/{id}/publish [post]
func (h *ContentHandler) PublishContent(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	contentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid content id format")
		return
	}

	content, err := h.service.PublishContent(c.Request.Context(), orgID, contentID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrContentNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrContentAlreadyPublished):
			response.Conflict(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, content)
}

// DeleteContent godoc
// @Summary      Delete content
// @Description  Soft delete a content item. Requires owner or admin role.
// @Tags         content
// @Accept       json
// @Produce      json
// @Param        orgId  path      string  true  "Organization ID"
// @Param        id     path      string  true  "Content ID"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/content/{id} [delete]
func (h *ContentHandler) DeleteContent(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	contentID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid content id format")
		return
	}

	if err := h.service.DeleteContent(c.Request.Context(), orgID, contentID); err != nil {
		if errors.Is(err, apperrors.ErrContentNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "content deleted"})
}
