package web

import (
	"errors"
	"net/http"
	"strconv"

	"miniblog/internal/middleware"
	"miniblog/internal/modules/auth"
	"miniblog/internal/modules/post"
	"miniblog/internal/modules/upload"
	"miniblog/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the server-rendered pages. Form failures re-render
// the same template with an inline error; successes redirect.
type Handler struct {
	auth     *auth.Service
	posts    *post.Service
	uploads  *upload.Service
	sessions *session.Manager
}

func NewHandler(auth *auth.Service, posts *post.Service, uploads *upload.Service, sessions *session.Manager) *Handler {
	return &Handler{
		auth:     auth,
		posts:    posts,
		uploads:  uploads,
		sessions: sessions,
	}
}

func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Username": c.GetString(middleware.CtxUsername),
	})
}

func (h *Handler) RegisterForm(c *gin.Context) {
	if middleware.ActorID(c) != 0 {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "register.html", gin.H{
		"FormUsername": "",
		"Email":        "",
	})
}

func (h *Handler) RegisterSubmit(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	email := c.PostForm("email")

	_, err := h.auth.Register(c.Request.Context(), username, password, email)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrMissingFields),
			errors.Is(err, auth.ErrUsernameTaken),
			errors.Is(err, auth.ErrEmailTaken):
			c.HTML(http.StatusOK, "register.html", gin.H{
				"Error":        err.Error(),
				"FormUsername": username,
				"Email":        email,
			})
		default:
			zap.L().Error("registration failed", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "register.html", gin.H{
				"Error":        "registration failed, try again",
				"FormUsername": username,
				"Email":        email,
			})
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) LoginForm(c *gin.Context) {
	if middleware.ActorID(c) != 0 {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{
		"FormUsername": "",
	})
}

func (h *Handler) LoginSubmit(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	user, err := h.auth.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.HTML(http.StatusOK, "login.html", gin.H{
				"Error":        err.Error(),
				"FormUsername": username,
			})
			return
		}
		zap.L().Error("login failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error":        "login failed, try again",
			"FormUsername": username,
		})
		return
	}

	token, err := h.sessions.Issue(user.ID, user.Username)
	if err != nil {
		zap.L().Error("session issue failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error":        "login failed, try again",
			"FormUsername": username,
		})
		return
	}

	h.sessions.SetCookie(c, token)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) Logout(c *gin.Context) {
	h.sessions.ClearCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// Dashboard shows store-wide counts alongside the actor's five newest
// files and all of their posts.
func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	actorID := middleware.ActorID(c)

	totalUsers, err := h.auth.CountUsers(ctx)
	if err != nil {
		h.serverError(c, err)
		return
	}
	totalFiles, err := h.uploads.Count(ctx)
	if err != nil {
		h.serverError(c, err)
		return
	}
	totalPosts, err := h.posts.Count(ctx)
	if err != nil {
		h.serverError(c, err)
		return
	}

	files, err := h.uploads.ListRecentByUser(ctx, actorID, 5)
	if err != nil {
		h.serverError(c, err)
		return
	}
	posts, err := h.posts.ListByOwner(ctx, actorID)
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Username":   c.GetString(middleware.CtxUsername),
		"TotalUsers": totalUsers,
		"TotalFiles": totalFiles,
		"TotalPosts": totalPosts,
		"Files":      files,
		"Posts":      posts,
	})
}

func (h *Handler) UploadForm(c *gin.Context) {
	c.HTML(http.StatusOK, "upload.html", gin.H{
		"Username": c.GetString(middleware.CtxUsername),
	})
}

func (h *Handler) UploadSubmit(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.HTML(http.StatusOK, "upload.html", gin.H{
			"Username": c.GetString(middleware.CtxUsername),
			"Error":    "no file selected",
		})
		return
	}

	if _, err := h.uploads.Save(c.Request.Context(), middleware.ActorID(c), fileHeader); err != nil {
		switch {
		case errors.Is(err, upload.ErrNoFile), errors.Is(err, upload.ErrTypeNotAllowed):
			c.HTML(http.StatusOK, "upload.html", gin.H{
				"Username": c.GetString(middleware.CtxUsername),
				"Error":    err.Error(),
			})
		default:
			zap.L().Error("upload failed", zap.Error(err))
			c.HTML(http.StatusInternalServerError, "upload.html", gin.H{
				"Username": c.GetString(middleware.CtxUsername),
				"Error":    "upload failed, try again",
			})
		}
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) NewPostForm(c *gin.Context) {
	c.HTML(http.StatusOK, "create_post.html", gin.H{
		"Username": c.GetString(middleware.CtxUsername),
		"Title":    "",
		"Content":  "",
	})
}

func (h *Handler) NewPostSubmit(c *gin.Context) {
	title := c.PostForm("title")
	content := c.PostForm("content")

	if _, err := h.posts.Create(c.Request.Context(), middleware.ActorID(c), title, content); err != nil {
		if errors.Is(err, post.ErrEmptyFields) {
			c.HTML(http.StatusOK, "create_post.html", gin.H{
				"Username": c.GetString(middleware.CtxUsername),
				"Error":    err.Error(),
				"Title":    title,
				"Content":  content,
			})
			return
		}
		zap.L().Error("create post failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "create_post.html", gin.H{
			"Username": c.GetString(middleware.CtxUsername),
			"Error":    "failed to create post, try again",
			"Title":    title,
			"Content":  content,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// ViewPost is the public read path: any visitor may read any post by
// id. The JSON API gates its detail read by owner; this page does not.
func (h *Handler) ViewPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.HTML(http.StatusNotFound, "404.html", gin.H{})
		return
	}

	p, err := h.posts.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, post.ErrPostNotFound) {
			c.HTML(http.StatusNotFound, "404.html", gin.H{})
			return
		}
		h.serverError(c, err)
		return
	}

	author, err := h.auth.GetByID(c.Request.Context(), p.UserID)
	if err != nil {
		h.serverError(c, err)
		return
	}

	c.HTML(http.StatusOK, "view_post.html", gin.H{
		"Username": c.GetString(middleware.CtxUsername),
		"Post":     p,
		"Author":   author,
	})
}

func (h *Handler) serverError(c *gin.Context, err error) {
	zap.L().Error("page render failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
	c.String(http.StatusInternalServerError, "internal server error")
}
