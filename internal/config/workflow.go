package config

import (
	"os"
	"strconv"
)

// WorkflowConfig controls identification preconditions.
type WorkflowConfig struct {
	RequireRole bool `toml:"require_role"`
}

// Finalize applies environment variable overrides.
func (c *WorkflowConfig) Finalize() error {
	if v := os.Getenv("MENTOR_WORKFLOW_REQUIRE_ROLE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.RequireRole = b
		}
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *WorkflowConfig) Merge(overlay *WorkflowConfig) {
	if overlay.RequireRole {
		c.RequireRole = true
	}
}
