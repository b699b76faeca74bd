package post

import (
	"errors"
	"net/http"
	"strconv"

	"miniblog/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the JSON API surface. Every route here runs behind
// the session middleware, and the detail routes are ownership-gated —
// unlike the public HTML post view, which intentionally is not.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/posts. All posts are returned, not just the
// actor's own.
func (h *Handler) List(c *gin.Context) {
	posts, err := h.service.List(c.Request.Context())
	if err != nil {
		zap.L().Error("list posts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list posts"})
		return
	}

	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	c.JSON(http.StatusOK, out)
}

// Create handles POST /api/posts.
func (h *Handler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "title and content are required"})
		return
	}

	p, err := h.service.Create(c.Request.Context(), middleware.ActorID(c), req.Title, req.Content)
	if err != nil {
		if errors.Is(err, ErrEmptyFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "title and content are required"})
			return
		}
		zap.L().Error("create post failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "post created",
		"post_id": p.ID,
	})
}

// Get handles GET /api/posts/:id.
func (h *Handler) Get(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	p, err := h.service.GetOwned(c.Request.Context(), id, middleware.ActorID(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPostResponse(p))
}

// Update handles PUT /api/posts/:id with a partial body.
func (h *Handler) Update(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, middleware.ActorID(c), req.Title, req.Content); err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post updated"})
}

// Delete handles DELETE /api/posts/:id.
func (h *Handler) Delete(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, middleware.ActorID(c)); err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrPostNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "post not found"})
	case errors.Is(err, ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "access denied"})
	default:
		zap.L().Error("post operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

// postID parses the :id segment. A non-numeric id is reported the same
// way as a missing post.
func postID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "post not found"})
		return 0, false
	}
	return id, true
}
