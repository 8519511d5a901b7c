package sessions

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config controls session lifetime and the session cookie.
type Config struct {
	TTL           string `toml:"ttl"`
	SweepInterval string `toml:"sweep_interval"`
	CookieName    string `toml:"cookie_name"`
	Secure        bool   `toml:"secure"`
	MaxSessions   int    `toml:"max_sessions"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	TTL           string
	SweepInterval string
	CookieName    string
	Secure        string
	MaxSessions   string
}

// TTLDuration returns TTL as a time.Duration.
func (c *Config) TTLDuration() time.Duration {
	d, _ := time.ParseDuration(c.TTL)
	return d
}

// SweepIntervalDuration returns SweepInterval as a time.Duration.
func (c *Config) SweepIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.SweepInterval)
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
	if overlay.TTL != "" {
		c.TTL = overlay.TTL
	}
	if overlay.SweepInterval != "" {
		c.SweepInterval = overlay.SweepInterval
	}
	if overlay.CookieName != "" {
		c.CookieName = overlay.CookieName
	}
	if overlay.Secure {
		c.Secure = true
	}
	if overlay.MaxSessions != 0 {
		c.MaxSessions = overlay.MaxSessions
	}
}

func (c *Config) loadDefaults() {
	if c.TTL == "" {
		c.TTL = "30m"
	}
	if c.SweepInterval == "" {
		c.SweepInterval = "1m"
	}
	if c.CookieName == "" {
		c.CookieName = "mentor_session"
	}
	if c.MaxSessions == 0 {
		c.MaxSessions = 10000
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.TTL != "" {
		if v := os.Getenv(env.TTL); v != "" {
			c.TTL = v
		}
	}
	if env.SweepInterval != "" {
		if v := os.Getenv(env.SweepInterval); v != "" {
			c.SweepInterval = v
		}
	}
	if env.CookieName != "" {
		if v := os.Getenv(env.CookieName); v != "" {
			c.CookieName = v
		}
	}
	if env.MaxSessions != "" {
		if v := os.Getenv(env.MaxSessions); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				c.MaxSessions = n
			}
		}
	}
	if env.Secure != "" {
		if v := os.Getenv(env.Secure); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				c.Secure = b
			}
		}
	}
}

func (c *Config) validate() error {
	ttl, err := time.ParseDuration(c.TTL)
	if err != nil {
		return fmt.Errorf("invalid ttl: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive: %s", c.TTL)
	}
	sweep, err := time.ParseDuration(c.SweepInterval)
	if err != nil {
		return fmt.Errorf("invalid sweep_interval: %w", err)
	}
	if sweep <= 0 {
		return fmt.Errorf("sweep_interval must be positive: %s", c.SweepInterval)
	}
	if c.MaxSessions < 0 {
		return fmt.Errorf("max_sessions must not be negative: %d", c.MaxSessions)
	}
	return nil
}
