// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, prediction client, storage) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/mentor/internal/config"
	"github.com/JaimeStill/mentor/internal/predictor"
	"github.com/JaimeStill/mentor/pkg/lifecycle"
	"github.com/JaimeStill/mentor/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
// Storage is nil when no blob account is configured.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Predictor predictor.Client
	Storage   storage.System
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	return NewWithLogger(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

// NewWithLogger is New with a caller-supplied logger.
func NewWithLogger(cfg *config.Config, logger *slog.Logger) (*Infrastructure, error) {
	client, err := predictor.New(&cfg.Predictor, logger)
	if err != nil {
		return nil, fmt.Errorf("predictor init failed: %w", err)
	}

	infra := &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Predictor: client,
	}

	if cfg.Storage.Enabled() {
		store, err := storage.New(&cfg.Storage, logger)
		if err != nil {
			return nil, fmt.Errorf("storage init failed: %w", err)
		}
		infra.Storage = store
	}

	return infra, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.Storage != nil {
		if err := i.Storage.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("storage start failed: %w", err)
		}
	}
	return nil
}
