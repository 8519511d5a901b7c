package knowledge

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/JaimeStill/mentor/pkg/handlers"
	"github.com/JaimeStill/mentor/pkg/routes"
)

// Errors returned by the knowledge endpoints.
var (
	ErrNotFound  = errors.New("species not found")
	ErrInvalidID = errors.New("class id must be an integer")
)

// MapHTTPStatus maps knowledge errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidID) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// SpeciesDetail is a species with both of its tables.
type SpeciesDetail struct {
	Species
	Growing   GrowingParameters  `json:"growing"`
	Nutrition NutritionalProfile `json:"nutrition"`
}

// Handler exposes the read-only tables over HTTP. Unlike the identification
// workflow it does not apply the fallback: unknown ids are 404.
type Handler struct {
	logger *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger.With("handler", "knowledge")}
}

// Routes returns the route groups for species and variety endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Children: []routes.Group{
			{
				Prefix: "/species",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: h.ListSpecies},
					{Method: "GET", Pattern: "/{id}", Handler: h.FindSpecies},
					{Method: "GET", Pattern: "/{id}/growing", Handler: h.FindGrowing},
					{Method: "GET", Pattern: "/{id}/nutrition", Handler: h.FindNutrition},
				},
			},
			{
				Prefix: "/varieties",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: h.ListVarieties},
				},
			},
		},
	}
}

// ListSpecies returns the catalog ordered by class id.
func (h *Handler) ListSpecies(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Catalog())
}

// FindSpecies returns one species with its growing and nutrition tables.
func (h *Handler) FindSpecies(w http.ResponseWriter, r *http.Request) {
	id, err := h.classID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SpeciesDetail{
		Species:   ResolveSpecies(id),
		Growing:   ResolveGrowing(id),
		Nutrition: ResolveNutrition(id),
	})
}

// FindGrowing returns the growing parameters for one species.
func (h *Handler) FindGrowing(w http.ResponseWriter, r *http.Request) {
	id, err := h.classID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, ResolveGrowing(id))
}

// FindNutrition returns the nutritional profile for one species.
func (h *Handler) FindNutrition(w http.ResponseWriter, r *http.Request) {
	id, err := h.classID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, ResolveNutrition(id))
}

// ListVarieties returns the home page variety cards.
func (h *Handler) ListVarieties(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Varieties())
}

func (h *Handler) classID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, ErrInvalidID
	}
	if !Known(id) {
		return 0, ErrNotFound
	}
	return id, nil
}
