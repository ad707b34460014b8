package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"yatube-backend/internal/domains/post/model"
	"yatube-backend/internal/shared/middleware"
	"yatube-backend/pkg/paginator"
)

// stubPostService returns canned results; each test configures the
// error it wants surfaced.
type stubPostService struct {
	err      error
	post     *model.Post
	lastPage paginator.Params
}

func (s *stubPostService) CreatePost(context.Context, uuid.UUID, model.CreatePostRequest) (*model.Post, error) {
	return s.post, s.err
}

func (s *stubPostService) UpdatePost(context.Context, uuid.UUID, int64, model.UpdatePostRequest) (*model.Post, error) {
	return s.post, s.err
}

func (s *stubPostService) DeletePost(context.Context, uuid.UUID, int64) error {
	return s.err
}

func (s *stubPostService) GetPostDetail(context.Context, int64) (*model.PostDetailResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &model.PostDetailResponse{Post: s.post}, nil
}

func (s *stubPostService) GlobalFeed(_ context.Context, p paginator.Params) ([]*model.Post, paginator.Meta, error) {
	s.lastPage = p
	return nil, paginator.Meta{}, s.err
}

func (s *stubPostService) GroupFeed(context.Context, string, paginator.Params) ([]*model.Post, paginator.Meta, error) {
	return nil, paginator.Meta{}, s.err
}

func (s *stubPostService) ProfileFeed(context.Context, string, paginator.Params) ([]*model.Post, paginator.Meta, error) {
	return nil, paginator.Meta{}, s.err
}

func (s *stubPostService) FollowFeed(context.Context, uuid.UUID, paginator.Params) ([]*model.Post, paginator.Meta, error) {
	return nil, paginator.Meta{}, s.err
}

func (s *stubPostService) AddComment(context.Context, int64, uuid.UUID, model.AddCommentRequest) (*model.Comment, error) {
	return nil, s.err
}

func (s *stubPostService) ListComments(context.Context, int64) ([]*model.Comment, error) {
	return nil, s.err
}

func (s *stubPostService) CountByAuthor(context.Context, uuid.UUID) (int, error) {
	return 0, s.err
}

// authenticate injects a caller identity the way the auth middleware
// would.
func authenticate(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.CtxUserID, userID)
		c.Next()
	}
}

func newTestRouter(t *testing.T, svc *stubPostService, authed bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewPostHandler(svc, paginator.DefaultPageSize)
	router := gin.New()
	if authed {
		router.Use(authenticate(uuid.New()))
	}

	router.GET("/posts", h.List)
	router.GET("/posts/:id", h.Get)
	router.POST("/posts", h.Create)
	router.PUT("/posts/:id", h.Update)
	router.DELETE("/posts/:id", h.Delete)
	router.POST("/posts/:id/comments", h.AddComment)
	router.GET("/feed", h.Feed)
	return router
}

// The feed default page size is configuration, not a constant; an
// unspecified ?limit= must fall back to the handler's configured size.
func TestPostHandlerConfiguredPageSize(t *testing.T) {
	t.Parallel()

	gin.SetMode(gin.TestMode)

	svc := &stubPostService{}
	h := NewPostHandler(svc, 25)
	router := gin.New()
	router.GET("/posts", h.List)

	req := httptest.NewRequest(http.MethodGet, "/posts?page=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, paginator.Params{Page: 3, Limit: 25}, svc.lastPage)

	// An explicit ?limit= still wins over the configured default
	req = httptest.NewRequest(http.MethodGet, "/posts?limit=7", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, paginator.Params{Page: 1, Limit: 7}, svc.lastPage)
}

func TestPostHandlerRequiresAuth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"create post", http.MethodPost, "/posts", `{"text":"hi"}`},
		{"update post", http.MethodPut, "/posts/1", `{"text":"hi"}`},
		{"delete post", http.MethodDelete, "/posts/1", ""},
		{"add comment", http.MethodPost, "/posts/1/comments", `{"text":"hi"}`},
		{"follow feed", http.MethodGet, "/feed", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newTestRouter(t, &stubPostService{}, false)

			var body *strings.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			} else {
				body = strings.NewReader("")
			}

			req := httptest.NewRequest(tt.method, tt.path, body)
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestPostHandlerErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing post", model.ErrPostNotFound, http.StatusNotFound},
		{"missing group", model.ErrGroupNotFound, http.StatusNotFound},
		{"not the author", model.ErrNotAuthor, http.StatusForbidden},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newTestRouter(t, &stubPostService{err: tt.err}, true)

			req := httptest.NewRequest(http.MethodPut, "/posts/1", strings.NewReader(`{"text":"hi"}`))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPostHandlerRejectsBadID(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, &stubPostService{post: &model.Post{ID: 1}}, true)

	for _, path := range []string{"/posts/abc", "/posts/0", "/posts/-3"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestPostHandlerGet(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t, &stubPostService{post: &model.Post{ID: 7, Text: "hello"}}, false)

	req := httptest.NewRequest(http.MethodGet, "/posts/7", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"hello"`)
}
