package post

import "github.com/gin-gonic/gin"

// RegisterRoutes registers the JSON API under a session-gated group.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	posts := r.Group("/posts")
	{
		posts.GET("", h.List)
		posts.POST("", h.Create)
		posts.GET("/:id", h.Get)
		posts.PUT("/:id", h.Update)
		posts.DELETE("/:id", h.Delete)
	}
}
