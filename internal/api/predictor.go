package api

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/mentor/internal/predictor"
	"github.com/JaimeStill/mentor/pkg/handlers"
	"github.com/JaimeStill/mentor/pkg/routes"
)

type predictorHandler struct {
	client predictor.Client
	logger *slog.Logger
}

func newPredictorHandler(client predictor.Client, logger *slog.Logger) *predictorHandler {
	return &predictorHandler{
		client: client,
		logger: logger.With("handler", "predictor"),
	}
}

func (h *predictorHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/predictor",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/health", Handler: h.health},
		},
	}
}

func (h *predictorHandler) health(w http.ResponseWriter, r *http.Request) {
	status, err := h.client.Health(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, predictor.MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, status)
}
