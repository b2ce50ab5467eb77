package handler

import (
	"errors"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/middleware"
	"clubhub/internal/models"
	"clubhub/internal/service"
	"clubhub/pkg/response"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClassHandler handles HTTP requests for class and roster operations.
type ClassHandler struct {
	service service.ClassServicer
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(service service.ClassServicer) *ClassHandler {
	return &ClassHandler{service: service}
}

// classIDFrom resolves the class ID for the request. Roster-guarded routes
// have it in the context; org-guarded routes carry it only as a path
// parameter.
func classIDFrom(c *gin.Context) (primitive.ObjectID, bool) {
	if classID, exists := middleware.GetClassID(c); exists {
		return classID, true
	}

	classID, err := primitive.ObjectIDFromHex(c.Param("classId"))
	if err != nil {
		response.BadRequest(c, "invalid class id format")
		return primitive.NilObjectID, false
	}
	return classID, true
}

// CreateClass godoc
// @Summary      Create a class
// @Description  Create a new class with an empty roster. Requires owner or admin role.
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        orgId  path      string                     true  "Organization ID"
// @Param        body   body      models.CreateClassRequest  true  "Class details"
// @Success      201    {object}  response.Response{data=models.Class}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/classes [post]
func (h *ClassHandler) CreateClass(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	var req models.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	class, err := h.service.CreateClass(c.Request.Context(), orgID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, class)
}

// ListClasses godoc
// @Summary      List classes
// @Description  List all classes of the organization. Requires membership.
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        orgId  path      string  true  "Organization ID"
// @Success      200    {object}  response.Response{data=models.ClassListResponse}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Failure      500    {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/classes [get]
func (h *ClassHandler) ListClasses(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	result, err := h.service.ListClasses(c.Request.Context(), orgID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Success(c, result)
}

// GetClass godoc
// @Summary      Get class details
// @Description  Retrieve a class with its roster. Requires roster membership or an organization role that can view rosters.
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        orgId    path      string  true  "Organization ID"
// @Param        classId  path      string  true  "Class ID"
// @Success      200      {object}  response.Response{data=models.Class}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/classes/{classId} [get]
func (h *ClassHandler) GetClass(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	classID, ok := classIDFrom(c)
	if !ok {
		return
	}

	class, err := h.service.GetClass(c.Request.Context(), orgID, classID)
	if err != nil {
		if errors.Is(err, apperrors.ErrClassNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, class)
}

// RenameClass godoc
// @Summary      Rename class
// @Description  Rename a class. Requires owner or admin role.
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        orgId    path      string                     true  "Organization ID"
// @Param        classId  path      string                     true  "Class ID"
// @Param        body     body      models.UpdateClassRequest  true  "New class name"
// @Success      200      {object}  response.Response{data=models.Class}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/classes/{classId} [put]
func (h *ClassHandler) RenameClass(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	classID, ok := classIDFrom(c)
	if !ok {
		return
	}

	var req models.UpdateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	class, err := h.service.RenameClass(c.Request.Context(), orgID, classID, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrClassNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, class)
}

// DeleteClass godoc
// @Summary      Delete class
// @Description  Delete a class and its roster. Requires owner or admin role.
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        orgId    path      string  true  "Organization ID"
// @Param        classId  path      string  true  "Class ID"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/classes/{classId} [delete]
func (h *ClassHandler) DeleteClass(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	classID, ok := classIDFrom(c)
	if !ok {
		return
	}

	if err := h.service.DeleteClass(c.Request.Context(), orgID, classID); err != nil {
		if errors.Is(err, apperrors.ErrClassNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "class deleted"})
}

// AddRosterEntry godoc
// @Summary      Add roster entry
// @Description  Enroll an organization member in a class with a class role. Requires the teacher class role or an organization role that can manage rosters.
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        orgId    path      string                        true  "Organization ID"
// @Param        classId  path      string                        true  "Class ID"
// @Param        body     body      models.AddRosterEntryRequest  true  "Roster entry details"
// @Success      200      {object}  response.Response{data=models.Class}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/classes/{classId}/roster [post]
func (h *ClassHandler) AddRosterEntry(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	classID, ok := classIDFrom(c)
	if !ok {
		return
	}

	var req models.AddRosterEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	class, err := h.service.AddRosterEntry(c.Request.Context(), orgID, classID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotOrgMember):
			response.BadRequest(c, "user must be an organization member")
		case errors.Is(err, apperrors.ErrAlreadyEnrolled):
			response.Conflict(c, err.Error())
		case errors.Is(err, apperrors.ErrClassNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, class)
}

// RecordResult godoc
// @Summary      Record a result
// @Description  Record a result (time, score, grade) for a roster member. Requires the teacher class role or an organization role that can manage members.
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        orgId    path      string                      true  "Organization ID"
// @Param        classId  path      string                      true  "Class ID"
// @Param        body     body      models.RecordResultRequest  true  "Result details"
// @Success      201      {object}  response.Response{data=models.Class}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/classes/{classId}/results [post]
func (h *ClassHandler) RecordResult(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	classID, ok := classIDFrom(c)
	if !ok {
		return
	}

	recordedBy, err := primitive.ObjectIDFromHex(middleware.GetUserID(c))
	if err != nil {
		response.Unauthorized(c, "invalid user id in context")
		return
	}

	var req models.RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	class, err := h.service.RecordResult(c.Request.Context(), orgID, classID, recordedBy, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotClassMember):
			response.BadRequest(c, "user must be on the class roster")
		case errors.Is(err, apperrors.ErrClassNotFound):
			response.NotFound(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, class)
}

// RemoveRosterEntry godoc
// @Summary      Remove roster entry
// @Description  Remove a user from a class roster. Requires the teacher class role or an organization role that can manage rosters.
// @Tags         classes
// @Accept       json
// @Produce      json
// @Param        orgId    path      string  true  "Organization ID"
// @Param        classId  path      string  true  "Class ID"
// @Param        userId   path      string  true  "User ID"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /orgs/{orgId}/classes/{classId}/roster/{userId} [delete]
func (h *ClassHandler) RemoveRosterEntry(c *gin.Context) {
	orgID, exists := middleware.GetOrgID(c)
	if !exists {
		response.BadRequest(c, "organization id not found in context")
		return
	}

	classID, ok := classIDFrom(c)
	if !ok {
		return
	}

	userID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		response.BadRequest(c, "invalid user id format")
		return
	}

	if err := h.service.RemoveRosterEntry(c.Request.Context(), orgID, classID, userID); err != nil {
		if errors.Is(err, apperrors.ErrClassNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, gin.H{"message": "roster entry removed"})
}
