package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/mentor/internal/config"
)

// NewServeCmd creates the serve command, which runs the web UI and JSON API
// until interrupted.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI and JSON API",
		Long: `Serve starts the HTTP server with the browser UI (default /app), the JSON
API (default /api), and the /healthz and /readyz probes. It runs until
SIGINT or SIGTERM and then shuts down gracefully.`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}
}

func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	logger := newLogger(cmd, slog.LevelInfo)
	logger.Info(
		"mentor starting",
		"version", cfg.Version,
		"addr", cfg.Server.Addr(),
		"env", cfg.Env(),
	)

	srv, err := NewServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("server init failed: %w", err)
	}

	if err := srv.Start(); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	<-cmd.Context().Done()

	if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logger.Info("mentor stopped")
	return nil
}
