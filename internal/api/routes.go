package api

import (
	"net/http"

	"github.com/JaimeStill/mentor/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		domain.Identify.Routes(),
		domain.Knowledge.Routes(),
		domain.Predictor.routes(),
	)
}
