package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultAddr          = ":8080"
	defaultDatabaseURL   = "site.db"
	defaultSessionSecret = "change-me-session-secret"
	defaultSessionTTL    = "24h"
	defaultCookieSecure  = "false"
	defaultStaticDir     = "./static"
	defaultUploadDir     = "./static/uploads"
	defaultTemplatesGlob = "./web/templates/*.html"
)

type Config struct {
	AppEnv        string
	Addr          string
	DatabaseURL   string
	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool
	StaticDir     string
	UploadDir     string
	TemplatesGlob string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Addr = getEnv("ADDR", defaultAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.SessionSecret = strings.TrimSpace(getEnv("SESSION_SECRET", defaultSessionSecret))
	cfg.StaticDir = getEnv("STATIC_DIR", defaultStaticDir)
	cfg.UploadDir = getEnv("UPLOAD_DIR", defaultUploadDir)
	cfg.TemplatesGlob = getEnv("TEMPLATES_GLOB", defaultTemplatesGlob)

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}
	cfg.CookieSecure, err = parseBoolEnv("SESSION_COOKIE_SECURE", defaultCookieSecure)
	if err != nil {
		return nil, err
	}

	if cfg.AppEnv == "prod" && cfg.SessionSecret == defaultSessionSecret {
		return nil, fmt.Errorf("SESSION_SECRET must be set in prod")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid duration in %s: %w", key, err)
	}
	return d, nil
}

func parseBoolEnv(key, fallback string) (bool, error) {
	raw := getEnv(key, fallback)
	b, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("invalid boolean in %s: %w", key, err)
	}
	return b, nil
}
