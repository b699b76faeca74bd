package main

import (
	"time"

	"miniblog/internal/config"
	"miniblog/internal/database"
	"miniblog/internal/middleware"
	"miniblog/internal/modules/auth"
	"miniblog/internal/modules/post"
	"miniblog/internal/modules/upload"
	"miniblog/internal/modules/web"
	"miniblog/internal/pkg/session"
	"miniblog/internal/repository"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.AppEnv)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := repository.AutoMigrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	fileRepo := repository.NewFileRepository(db)

	sessions := session.NewManager(cfg.SessionSecret, cfg.SessionTTL, cfg.CookieSecure)

	authService := auth.NewService(userRepo)
	postService := post.NewService(postRepo)
	uploadService := upload.NewService(fileRepo, cfg.UploadDir)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		ginzap.Ginzap(logger, time.RFC3339, true),
		ginzap.RecoveryWithZap(logger, true),
	)

	r.LoadHTMLGlob(cfg.TemplatesGlob)
	r.Static("/static", cfg.StaticDir)

	webHandler := web.NewHandler(authService, postService, uploadService, sessions)
	web.RegisterRoutes(r, webHandler, sessions)

	api := r.Group("/api")
	api.Use(middleware.RequireUserJSON(sessions))
	{
		post.RegisterRoutes(api, post.NewHandler(postService))
	}

	logger.Info("server starting", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(appEnv string) *zap.Logger {
	if appEnv == "prod" {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}
