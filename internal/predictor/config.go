package predictor

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// DefaultBaseURL is where the original single-origin deployment serves the
// prediction endpoints alongside its front end.
const DefaultBaseURL = "http://localhost:5000"

// Config holds connection parameters for the external prediction service.
type Config struct {
	BaseURL       string `toml:"base_url"`
	Timeout       string `toml:"timeout"`
	MaxConcurrent int    `toml:"max_concurrent"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	BaseURL       string
	Timeout       string
	MaxConcurrent string
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.MaxConcurrent != 0 {
		c.MaxConcurrent = overlay.MaxConcurrent
	}
}

func (c *Config) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
	if c.MaxConcurrent == 0 {
		c.MaxConcurrent = 4
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.BaseURL != "" {
		if v := os.Getenv(env.BaseURL); v != "" {
			c.BaseURL = v
		}
	}
	if env.Timeout != "" {
		if v := os.Getenv(env.Timeout); v != "" {
			c.Timeout = v
		}
	}
	if env.MaxConcurrent != "" {
		if v := os.Getenv(env.MaxConcurrent); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxConcurrent = n
			}
		}
	}
}

func (c *Config) validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base_url scheme: %q", c.BaseURL)
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive: %s", c.Timeout)
	}
	if c.MaxConcurrent < 1 {
		return fmt.Errorf("max_concurrent must be at least 1: %d", c.MaxConcurrent)
	}
	return nil
}
