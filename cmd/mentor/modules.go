package main

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/JaimeStill/mentor/internal/api"
	"github.com/JaimeStill/mentor/internal/config"
	"github.com/JaimeStill/mentor/internal/infrastructure"
	"github.com/JaimeStill/mentor/internal/sessions"
	"github.com/JaimeStill/mentor/internal/ui"
	"github.com/JaimeStill/mentor/pkg/module"
)

type Modules struct {
	API *module.Module
	UI  *module.Module
}

func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config, store *sessions.Store) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra)
	if err != nil {
		return nil, err
	}

	uiModule, err := ui.NewModule(cfg, infra, store)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API: apiModule,
		UI:  uiModule,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.UI)
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, cfg.Web.BasePath+"/", http.StatusFound)
	})

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// The prediction service is reported but does not gate readiness: the
	// UI stays usable and analyses fail individually while it is down.
	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			writeStatus(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), predictorProbeTimeout)
		defer cancel()

		predictorStatus := "healthy"
		if _, err := infra.Predictor.Health(ctx); err != nil {
			predictorStatus = "unavailable"
		}

		writeStatus(w, http.StatusOK, map[string]string{
			"status":    "ready",
			"predictor": predictorStatus,
		})
	})

	return router
}

func writeStatus(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
