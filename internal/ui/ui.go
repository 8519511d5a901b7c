// Package ui serves the server-rendered identification pages. Each browser
// gets a session-scoped workspace; forms post back and redirect so a reload
// never repeats an analysis.
package ui

import (
	"embed"
	"fmt"

	"github.com/JaimeStill/mentor/internal/config"
	"github.com/JaimeStill/mentor/internal/identify"
	"github.com/JaimeStill/mentor/internal/infrastructure"
	"github.com/JaimeStill/mentor/internal/sessions"
	"github.com/JaimeStill/mentor/pkg/middleware"
	"github.com/JaimeStill/mentor/pkg/module"
	"github.com/JaimeStill/mentor/pkg/web"
)

//go:embed templates static
var assets embed.FS

// NewModule creates the UI module mounted at cfg.Web.BasePath. The session
// store must be started by the caller. When blob storage is configured, a
// startup hook reports which variety images it holds.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure, store *sessions.Store) (*module.Module, error) {
	logger := infra.Logger.With("module", "ui")

	views, err := web.NewTemplateSet(
		assets,
		"templates/layouts/*.html",
		"templates/views",
		cfg.Web.BasePath,
		allViews,
		templateFuncs,
	)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	h := &Handler{
		wf:            identify.New(infra.Predictor, cfg.Workflow.RequireRole, logger),
		views:         views,
		storage:       infra.Storage,
		logger:        logger.With("handler", "ui"),
		maxUploadSize: cfg.API.MaxUploadSizeBytes(),
	}

	if infra.Storage != nil {
		lc := infra.Lifecycle
		lc.OnStartup(func() {
			h.checkImages(lc.Context())
		})
	}

	router := web.NewRouter()
	h.register(router)

	m := module.New(cfg.Web.BasePath, router)
	m.Use(middleware.Logger(logger))
	m.Use(store.Middleware("/static/", "/images/"))

	return m, nil
}
