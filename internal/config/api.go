package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/mentor/pkg/formatting"
	"github.com/JaimeStill/mentor/pkg/middleware"
)

const defaultMaxUploadSize = 10 * 1024 * 1024

var corsEnv = &middleware.CORSEnv{
	Enabled:          "MENTOR_CORS_ENABLED",
	Origins:          "MENTOR_CORS_ORIGINS",
	AllowedMethods:   "MENTOR_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "MENTOR_CORS_ALLOWED_HEADERS",
	AllowCredentials: "MENTOR_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "MENTOR_CORS_MAX_AGE",
}

// APIConfig holds API routing, upload limits, and CORS settings.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	MaxUploadSize string                `toml:"max_upload_size"`
	CORS          middleware.CORSConfig `toml:"cors"`
}

// MaxUploadSizeBytes returns MaxUploadSize in bytes.
func (c *APIConfig) MaxUploadSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return defaultMaxUploadSize
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS config.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}

	c.CORS.Merge(&overlay.CORS)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("MENTOR_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("MENTOR_API_MAX_UPLOAD_SIZE"); v != "" {
		c.MaxUploadSize = v
	}
}

func (c *APIConfig) validate() error {
	if err := validateBasePath(c.BasePath); err != nil {
		return err
	}
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive: %s", c.MaxUploadSize)
	}
	return nil
}
