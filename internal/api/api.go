// Package api assembles the JSON API module with the identification workflow,
// the knowledge tables, and predictor health.
package api

import (
	"net/http"

	"github.com/JaimeStill/mentor/internal/config"
	"github.com/JaimeStill/mentor/internal/infrastructure"
	"github.com/JaimeStill/mentor/pkg/middleware"
	"github.com/JaimeStill/mentor/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, runtime)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
