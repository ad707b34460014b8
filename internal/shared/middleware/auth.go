package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"yatube-backend/internal/shared/response"
	"yatube-backend/pkg/jwt"
)

// Context keys set by the auth middlewares.
const (
	CtxUserID   = "userID"
	CtxUsername = "username"
)

// AuthMiddleware rejects requests without a valid access token.
// On success the caller identity is stored in the gin context.
func AuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, username, ok := identityFromHeader(c, manager)
		if !ok {
			response.Unauthorized(c, "missing or invalid access token")
			c.Abort()
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxUsername, username)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller identity when a valid
// token is present but never rejects the request. Public feed pages
// use it to personalize is_following flags.
func OptionalAuthMiddleware(manager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, username, ok := identityFromHeader(c, manager); ok {
			c.Set(CtxUserID, userID)
			c.Set(CtxUsername, username)
		}
		c.Next()
	}
}

func identityFromHeader(c *gin.Context, manager *jwt.Manager) (uuid.UUID, string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return uuid.Nil, "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return uuid.Nil, "", false
	}

	claims, err := manager.ValidateAccessToken(parts[1])
	if err != nil {
		return uuid.Nil, "", false
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, "", false
	}

	return userID, claims.Username, true
}

// CallerID extracts the authenticated caller from the context.
// Returns (uuid.Nil, false) on anonymous requests.
func CallerID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(CtxUserID)
	if !exists {
		return uuid.Nil, false
	}

	userID, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, false
	}

	return userID, true
}
