package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"yatube-backend/internal/domains/follow/model"
	"yatube-backend/internal/domains/follow/service"
	"yatube-backend/internal/shared/middleware"
	"yatube-backend/internal/shared/response"
)

type FollowHandler struct {
	followService service.ServiceInterface
}

func NewFollowHandler(followService service.ServiceInterface) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// Follow subscribes the caller to an author; repeating it is a no-op
// POST /api/v1/users/:username/follow
func (h *FollowHandler) Follow(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	err := h.followService.Follow(c.Request.Context(), callerID, c.Param("username"))
	if err != nil {
		respondFollowError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"following": true})
}

// Unfollow removes the subscription; absent edges are a no-op
// DELETE /api/v1/users/:username/follow
func (h *FollowHandler) Unfollow(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	err := h.followService.Unfollow(c.Request.Context(), callerID, c.Param("username"))
	if err != nil {
		respondFollowError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"following": false})
}

func respondFollowError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrAuthorNotFound):
		response.NotFound(c, "author not found")
	case errors.Is(err, model.ErrSelfFollow):
		response.BadRequest(c, "cannot follow yourself")
	default:
		response.InternalServerError(c, "something went wrong")
	}
}
