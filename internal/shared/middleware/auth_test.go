package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"yatube-backend/pkg/jwt"
)

func testRouter(t *testing.T, manager *jwt.Manager, optional bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	mw := AuthMiddleware(manager)
	if optional {
		mw = OptionalAuthMiddleware(manager)
	}

	router.GET("/protected", mw, func(c *gin.Context) {
		callerID, ok := CallerID(c)
		c.JSON(http.StatusOK, gin.H{
			"authenticated": ok,
			"user_id":       callerID.String(),
		})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	t.Parallel()

	manager := jwt.NewManager("secret", 15*time.Minute, time.Hour)
	userID := uuid.New()

	validToken, err := manager.GenerateAccessToken(userID.String(), "leo")
	require.NoError(t, err)

	refreshToken, err := manager.GenerateRefreshToken(userID.String())
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", "Token abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"refresh token rejected", "Bearer " + refreshToken, http.StatusUnauthorized},
		{"valid token", "Bearer " + validToken, http.StatusOK},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := testRouter(t, manager, false)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestOptionalAuthMiddleware(t *testing.T) {
	t.Parallel()

	manager := jwt.NewManager("secret", 15*time.Minute, time.Hour)
	userID := uuid.New()

	validToken, err := manager.GenerateAccessToken(userID.String(), "leo")
	require.NoError(t, err)

	t.Run("anonymous request passes through", func(t *testing.T) {
		t.Parallel()

		router := testRouter(t, manager, true)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"authenticated":false`)
	})

	t.Run("invalid token still passes through", func(t *testing.T) {
		t.Parallel()

		router := testRouter(t, manager, true)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer junk")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"authenticated":false`)
	})

	t.Run("valid token resolves the caller", func(t *testing.T) {
		t.Parallel()

		router := testRouter(t, manager, true)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+validToken)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"authenticated":true`)
		require.Contains(t, rec.Body.String(), userID.String())
	})
}
