package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"yatube-backend/internal/domains/user/model"
	"yatube-backend/internal/domains/user/service"
	"yatube-backend/internal/shared/middleware"
	"yatube-backend/internal/shared/response"
)

type UserHandler struct {
	userService service.ServiceInterface
}

func NewUserHandler(userService service.ServiceInterface) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a new user
// POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	dto, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, dto)
}

// Login authenticates a user and issues tokens
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// RefreshToken exchanges a refresh token for a new token pair
// POST /api/v1/auth/refresh
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req model.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.Refresh(c.Request.Context(), req)
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// GetMe returns the authenticated caller
// GET /api/v1/users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	dto, err := h.userService.GetByID(c.Request.Context(), callerID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, dto)
}

// GetProfile returns the public author page
// GET /api/v1/users/:username
func (h *UserHandler) GetProfile(c *gin.Context) {
	username := c.Param("username")

	// Anonymous viewers get is_following = false
	viewerID, _ := middleware.CallerID(c)

	profile, err := h.userService.GetProfile(c.Request.Context(), username, viewerID)
	if err != nil {
		respondUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// respondUserError maps domain errors to HTTP responses.
func respondUserError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ValidationError(c, vErrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, model.ErrUsernameTaken):
		response.Conflict(c, "username already taken")
	case errors.Is(err, model.ErrEmailTaken):
		response.Conflict(c, "email already registered")
	case errors.Is(err, model.ErrInvalidCredentials):
		response.Unauthorized(c, "invalid email or password")
	case errors.Is(err, model.ErrUnauthorized):
		response.Unauthorized(c, "invalid or expired token")
	default:
		response.InternalServerError(c, "something went wrong")
	}
}
