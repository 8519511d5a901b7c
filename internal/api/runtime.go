package api

import (
	"github.com/JaimeStill/mentor/internal/config"
	"github.com/JaimeStill/mentor/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	MaxUploadSize int64
	RequireRole   bool
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Predictor: infra.Predictor,
			Storage:   infra.Storage,
		},
		MaxUploadSize: cfg.API.MaxUploadSizeBytes(),
		RequireRole:   cfg.Workflow.RequireRole,
	}
}
