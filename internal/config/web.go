package config

import (
	"fmt"
	"os"
	"strings"
)

// WebConfig holds the browser UI mount point.
type WebConfig struct {
	BasePath string `toml:"base_path"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *WebConfig) Finalize() error {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
	if v := os.Getenv("MENTOR_WEB_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	return validateBasePath(c.BasePath)
}

// Merge overwrites non-zero fields from overlay.
func (c *WebConfig) Merge(overlay *WebConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
}

// validateBasePath enforces the single-level prefix modules mount on.
func validateBasePath(p string) error {
	if len(p) < 2 || !strings.HasPrefix(p, "/") || strings.Count(p, "/") != 1 {
		return fmt.Errorf("base_path must be a single path segment like /app: %q", p)
	}
	return nil
}
