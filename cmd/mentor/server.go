package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/JaimeStill/mentor/internal/config"
	"github.com/JaimeStill/mentor/internal/infrastructure"
	"github.com/JaimeStill/mentor/internal/sessions"
)

// predictorProbeTimeout bounds the startup and readiness health checks.
const predictorProbeTimeout = 3 * time.Second

type Server struct {
	infra    *infrastructure.Infrastructure
	sessions *sessions.Store
	modules  *Modules
	http     *httpServer
}

func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	infra, err := infrastructure.NewWithLogger(cfg, logger)
	if err != nil {
		return nil, err
	}

	store := sessions.New(&cfg.Sessions, infra.Logger)

	modules, err := NewModules(infra, cfg, store)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra, cfg)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"api", cfg.API.BasePath,
		"web", cfg.Web.BasePath,
		"predictor", cfg.Predictor.BaseURL,
	)

	return &Server{
		infra:    infra,
		sessions: store,
		modules:  modules,
		http:     newHTTPServer(&cfg.Server, router, infra.Logger),
	}, nil
}

func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	s.sessions.Start(s.infra.Lifecycle)
	s.probePredictor()

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}

// probePredictor logs whether the prediction service answers at startup. An
// unreachable service is not fatal; analyses fail individually until it is up.
func (s *Server) probePredictor() {
	lc := s.infra.Lifecycle
	logger := s.infra.Logger.With("system", "predictor")

	lc.OnStartup(func() {
		ctx, cancel := context.WithTimeout(lc.Context(), predictorProbeTimeout)
		defer cancel()

		h, err := s.infra.Predictor.Health(ctx)
		if err != nil {
			logger.Warn("prediction service unavailable", "error", err)
			return
		}
		logger.Info("prediction service reachable", "status", h.Status)
	})
}
