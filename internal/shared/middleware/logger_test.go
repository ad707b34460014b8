package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

// Swaps the global logger for a buffer, so no t.Parallel here.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	return &buf
}

func TestLoggerMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		router := gin.New()
		router.Use(Logger())
		router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
		router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
		router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
		return router
	}

	tests := []struct {
		name      string
		path      string
		wantLevel string
	}{
		{"success logs at info", "/ok", `"level":"info"`},
		{"client error logs at warn", "/missing", `"level":"warn"`},
		{"server error logs at error", "/boom", `"level":"error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureLog(t)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			newRouter().ServeHTTP(rec, req)

			line := buf.String()
			require.Contains(t, line, tt.wantLevel)
			require.Contains(t, line, `"path":"`+tt.path+`"`)
			require.Contains(t, line, `"method":"GET"`)
			require.Contains(t, line, "request completed")
		})
	}

	t.Run("query string is logged when present", func(t *testing.T) {
		buf := captureLog(t)

		req := httptest.NewRequest(http.MethodGet, "/ok?page=2&limit=5", nil)
		rec := httptest.NewRecorder()
		newRouter().ServeHTTP(rec, req)

		require.Contains(t, buf.String(), `"query":"page=2&limit=5"`)
	})
}
