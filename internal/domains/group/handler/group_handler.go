package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"yatube-backend/internal/domains/group/model"
	"yatube-backend/internal/domains/group/service"
	"yatube-backend/internal/shared/response"
	"yatube-backend/pkg/paginator"
)

type GroupHandler struct {
	groupService service.ServiceInterface
}

func NewGroupHandler(groupService service.ServiceInterface) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// Create creates a new group
// POST /api/v1/groups
func (h *GroupHandler) Create(c *gin.Context) {
	var req model.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	g, err := h.groupService.CreateGroup(c.Request.Context(), req)
	if err != nil {
		respondGroupError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, g)
}

// GetBySlug returns a single group
// GET /api/v1/groups/:slug
func (h *GroupHandler) GetBySlug(c *gin.Context) {
	g, err := h.groupService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondGroupError(c, err)
		return
	}

	response.Success(c, http.StatusOK, g)
}

// List returns all groups, paginated
// GET /api/v1/groups
func (h *GroupHandler) List(c *gin.Context) {
	var req model.ListGroupsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	p := paginator.Normalize(req.Page, req.Limit)
	groups, meta, err := h.groupService.ListGroups(c.Request.Context(), p)
	if err != nil {
		respondGroupError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, groups, meta)
}

// Delete removes a group
// DELETE /api/v1/groups/:slug
func (h *GroupHandler) Delete(c *gin.Context) {
	g, err := h.groupService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondGroupError(c, err)
		return
	}

	if err := h.groupService.DeleteGroup(c.Request.Context(), g.ID); err != nil {
		respondGroupError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "group deleted"})
}

func respondGroupError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ValidationError(c, vErrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrGroupNotFound):
		response.NotFound(c, "group not found")
	case errors.Is(err, model.ErrSlugTaken):
		response.Conflict(c, "slug already in use")
	case errors.Is(err, model.ErrInvalidSlug):
		response.BadRequest(c, "slug may contain lowercase letters, digits and hyphens")
	default:
		response.InternalServerError(c, "something went wrong")
	}
}
