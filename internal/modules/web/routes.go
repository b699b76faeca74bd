package web

import (
	"miniblog/internal/middleware"
	"miniblog/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the HTML surface. Public pages still identify a
// logged-in visitor; protected pages redirect anonymous visitors to
// the login form.
func RegisterRoutes(r *gin.Engine, h *Handler, sessions *session.Manager) {
	public := r.Group("/", middleware.Identify(sessions))
	{
		public.GET("/", h.Home)
		public.GET("/register", h.RegisterForm)
		public.POST("/register", h.RegisterSubmit)
		public.GET("/login", h.LoginForm)
		public.POST("/login", h.LoginSubmit)
		public.GET("/post/:id", h.ViewPost)
	}

	protected := r.Group("/", middleware.RequireUser(sessions))
	{
		protected.GET("/logout", h.Logout)
		protected.GET("/dashboard", h.Dashboard)
		protected.GET("/upload", h.UploadForm)
		protected.POST("/upload", h.UploadSubmit)
		protected.GET("/new_post", h.NewPostForm)
		protected.POST("/new_post", h.NewPostSubmit)
	}
}
