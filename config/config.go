// Package config holds the environment-driven configuration for the
// portfolio backend.
package config

import (
	"os"
	"strconv"
	"time"
)

// Image storage strategies. Exactly one is active per deployment.
const (
	ImageStorageFile   = "file"
	ImageStorageInline = "inline"
)

// Config holds all runtime settings. Every field has a development
// default so the server starts with an empty environment.
type Config struct {
	Port         string
	DBPath       string
	UploadDir    string
	ImageStorage string // "file" or "inline"
	AllowOrigins string

	AdminUsername string
	AdminPassword string
	SessionTTL    time.Duration
}

// Load reads the configuration from environment variables.
func Load() *Config {
	ttlHours, err := strconv.Atoi(envOrDefault("SESSION_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 24
	}

	storage := envOrDefault("IMAGE_STORAGE", ImageStorageFile)
	if storage != ImageStorageInline {
		storage = ImageStorageFile
	}

	return &Config{
		Port:         envOrDefault("PORT", "5000"),
		DBPath:       envOrDefault("DB_PATH", "database.db"),
		UploadDir:    envOrDefault("UPLOAD_DIR", "uploads"),
		ImageStorage: storage,
		AllowOrigins: envOrDefault("ALLOW_ORIGINS", "*"),

		AdminUsername: envOrDefault("ADMIN_USERNAME", "mustafaa"),
		AdminPassword: envOrDefault("ADMIN_PASSWORD", "Mustafaa_thed0c789"),
		SessionTTL:    time.Duration(ttlHours) * time.Hour,
	}
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
