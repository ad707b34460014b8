package handler

import (
	"errors"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"yatube-backend/internal/domains/post/model"
	"yatube-backend/internal/domains/post/service"
	"yatube-backend/internal/shared/middleware"
	"yatube-backend/internal/shared/response"
	"yatube-backend/pkg/paginator"
)

type PostHandler struct {
	postService service.ServiceInterface
	pageSize    int // default feed page size, from FEED_PAGE_SIZE
}

func NewPostHandler(postService service.ServiceInterface, pageSize int) *PostHandler {
	return &PostHandler{postService: postService, pageSize: pageSize}
}

// =====================================================
// POST CRUD
// =====================================================

// Create publishes a new post authored by the caller
// POST /api/v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), callerID, req)
	if err != nil {
		respondPostError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, post)
}

// Get returns one post with its comments
// GET /api/v1/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	detail, err := h.postService.GetPostDetail(c.Request.Context(), postID)
	if err != nil {
		respondPostError(c, err)
		return
	}

	response.Success(c, http.StatusOK, detail)
}

// Update edits a post; only its author may do so
// PUT /api/v1/posts/:id
func (h *PostHandler) Update(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	var req model.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	post, err := h.postService.UpdatePost(c.Request.Context(), callerID, postID, req)
	if err != nil {
		respondPostError(c, err)
		return
	}

	response.Success(c, http.StatusOK, post)
}

// Delete removes a post; only its author may do so
// DELETE /api/v1/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	if err := h.postService.DeletePost(c.Request.Context(), callerID, postID); err != nil {
		respondPostError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// =====================================================
// FEEDS
// =====================================================

// List returns the global feed, newest first
// GET /api/v1/posts
func (h *PostHandler) List(c *gin.Context) {
	p := h.pageParams(c)

	posts, meta, err := h.postService.GlobalFeed(c.Request.Context(), p)
	if err != nil {
		respondPostError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, posts, meta)
}

// ListByGroup returns one group's feed
// GET /api/v1/groups/:slug/posts
func (h *PostHandler) ListByGroup(c *gin.Context) {
	p := h.pageParams(c)

	posts, meta, err := h.postService.GroupFeed(c.Request.Context(), c.Param("slug"), p)
	if err != nil {
		respondPostError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, posts, meta)
}

// ListByAuthor returns one author's feed
// GET /api/v1/users/:username/posts
func (h *PostHandler) ListByAuthor(c *gin.Context) {
	p := h.pageParams(c)

	posts, meta, err := h.postService.ProfileFeed(c.Request.Context(), c.Param("username"), p)
	if err != nil {
		respondPostError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, posts, meta)
}

// Feed returns posts by authors the caller follows
// GET /api/v1/feed
func (h *PostHandler) Feed(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	p := h.pageParams(c)

	posts, meta, err := h.postService.FollowFeed(c.Request.Context(), callerID, p)
	if err != nil {
		respondPostError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, posts, meta)
}

// =====================================================
// COMMENTS
// =====================================================

// AddComment attaches a comment to a post
// POST /api/v1/posts/:id/comments
func (h *PostHandler) AddComment(c *gin.Context) {
	callerID, ok := middleware.CallerID(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}

	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	var req model.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comment, err := h.postService.AddComment(c.Request.Context(), postID, callerID, req)
	if err != nil {
		respondPostError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, comment)
}

// ListComments returns a post's comments, oldest first
// GET /api/v1/posts/:id/comments
func (h *PostHandler) ListComments(c *gin.Context) {
	postID, ok := parsePostID(c)
	if !ok {
		return
	}

	comments, err := h.postService.ListComments(c.Request.Context(), postID)
	if err != nil {
		respondPostError(c, err)
		return
	}

	response.Success(c, http.StatusOK, comments)
}

// =====================================================
// HELPERS
// =====================================================

func parsePostID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		response.BadRequest(c, "invalid post id")
		return 0, false
	}
	return id, true
}

// pageParams reads ?page= and ?limit=, falling back to the configured
// feed page size on anything unparseable.
func (h *PostHandler) pageParams(c *gin.Context) paginator.Params {
	var req model.FeedRequest
	_ = c.ShouldBindQuery(&req)
	return paginator.NormalizeWithDefault(req.Page, req.Limit, h.pageSize)
}

// respondPostError maps domain errors to HTTP responses.
func respondPostError(c *gin.Context, err error) {
	var vErrs validation.Errors
	if errors.As(err, &vErrs) {
		response.ValidationError(c, vErrs)
		return
	}

	switch {
	case errors.Is(err, model.ErrPostNotFound):
		response.NotFound(c, "post not found")
	case errors.Is(err, model.ErrGroupNotFound):
		response.NotFound(c, "group not found")
	case errors.Is(err, model.ErrUserNotFound):
		response.NotFound(c, "user not found")
	case errors.Is(err, model.ErrNotAuthor):
		response.Forbidden(c, "only the author can modify this post")
	default:
		response.InternalServerError(c, "something went wrong")
	}
}
