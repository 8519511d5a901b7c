package api

import (
	"github.com/JaimeStill/mentor/internal/identify"
	"github.com/JaimeStill/mentor/internal/knowledge"
)

// Domain holds all handlers that comprise the API.
type Domain struct {
	Identify  *identify.Handler
	Knowledge *knowledge.Handler
	Predictor *predictorHandler
}

// NewDomain creates all domain handlers from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	wf := identify.New(runtime.Predictor, runtime.RequireRole, runtime.Logger)

	return &Domain{
		Identify:  identify.NewHandler(wf, runtime.Logger, runtime.MaxUploadSize),
		Knowledge: knowledge.NewHandler(runtime.Logger),
		Predictor: newPredictorHandler(runtime.Predictor, runtime.Logger),
	}
}
