// Package config loads the service configuration from config.toml, an
// optional per-environment overlay, and MENTOR_* environment variables.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/mentor/internal/predictor"
	"github.com/JaimeStill/mentor/internal/sessions"
	"github.com/JaimeStill/mentor/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvMentorEnv             = "MENTOR_ENV"
	EnvMentorShutdownTimeout = "MENTOR_SHUTDOWN_TIMEOUT"
	EnvMentorVersion         = "MENTOR_VERSION"
)

var predictorEnv = &predictor.Env{
	BaseURL:       "MENTOR_PREDICTOR_BASE_URL",
	Timeout:       "MENTOR_PREDICTOR_TIMEOUT",
	MaxConcurrent: "MENTOR_PREDICTOR_MAX_CONCURRENT",
}

var sessionsEnv = &sessions.Env{
	TTL:           "MENTOR_SESSIONS_TTL",
	SweepInterval: "MENTOR_SESSIONS_SWEEP_INTERVAL",
	CookieName:    "MENTOR_SESSIONS_COOKIE_NAME",
	Secure:        "MENTOR_SESSIONS_SECURE",
	MaxSessions:   "MENTOR_SESSIONS_MAX_SESSIONS",
}

var storageEnv = &storage.Env{
	ContainerName:    "MENTOR_STORAGE_CONTAINER_NAME",
	ConnectionString: "MENTOR_STORAGE_CONNECTION_STRING",
	ServiceURL:       "MENTOR_STORAGE_SERVICE_URL",
	Prefix:           "MENTOR_STORAGE_PREFIX",
}

// Config is the root configuration for the Mentor service.
type Config struct {
	Server          ServerConfig     `toml:"server"`
	API             APIConfig        `toml:"api"`
	Web             WebConfig        `toml:"web"`
	Predictor       predictor.Config `toml:"predictor"`
	Sessions        sessions.Config  `toml:"sessions"`
	Storage         storage.Config   `toml:"storage"`
	Workflow        WorkflowConfig   `toml:"workflow"`
	ShutdownTimeout string           `toml:"shutdown_timeout"`
	Version         string           `toml:"version"`
}

// Env returns the MENTOR_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvMentorEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.API.Merge(&overlay.API)
	c.Web.Merge(&overlay.Web)
	c.Predictor.Merge(&overlay.Predictor)
	c.Sessions.Merge(&overlay.Sessions)
	c.Storage.Merge(&overlay.Storage)
	c.Workflow.Merge(&overlay.Workflow)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Web.Finalize(); err != nil {
		return fmt.Errorf("web: %w", err)
	}
	if err := c.Predictor.Finalize(predictorEnv); err != nil {
		return fmt.Errorf("predictor: %w", err)
	}
	if err := c.Sessions.Finalize(sessionsEnv); err != nil {
		return fmt.Errorf("sessions: %w", err)
	}
	if err := c.Storage.Finalize(storageEnv); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Workflow.Finalize(); err != nil {
		return fmt.Errorf("workflow: %w", err)
	}
	if c.API.BasePath == c.Web.BasePath {
		return fmt.Errorf("api and web base paths collide: %s", c.API.BasePath)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvMentorShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvMentorVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvMentorEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
