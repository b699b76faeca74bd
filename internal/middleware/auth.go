package middleware

import (
	"net/http"

	"miniblog/internal/pkg/session"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware below. Handlers read the actor
// from the request context only; there is no process-wide current user.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

// Identify resolves the session cookie if one is present and stores
// the actor in the request context. It never rejects the request, so
// public pages can still greet a logged-in visitor.
func Identify(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := sessions.FromRequest(c); err == nil {
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxUsername, claims.Username)
		}
		c.Next()
	}
}

// RequireUser gates HTML pages: visitors without a valid session are
// sent to the login form.
func RequireUser(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := sessions.FromRequest(c)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Next()
	}
}

// RequireUserJSON gates the JSON API with a 401 body instead of a
// redirect.
func RequireUserJSON(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := sessions.FromRequest(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "authentication required",
			})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Next()
	}
}

// ActorID returns the authenticated user id from the request context,
// or 0 when the request is anonymous.
func ActorID(c *gin.Context) int64 {
	return c.GetInt64(CtxUserID)
}
