package identify

import (
	"fmt"
	"strconv"

	"github.com/JaimeStill/mentor/internal/knowledge"
	"github.com/JaimeStill/mentor/internal/predictor"
)

// Identification is a prediction joined against the knowledge tables for
// the role it was requested with.
type Identification struct {
	Prediction predictor.Prediction          `json:"prediction"`
	Species    knowledge.Species             `json:"species"`
	Role       Role                          `json:"role,omitempty"`
	Fallback   bool                          `json:"fallback"`
	Growing    *knowledge.GrowingParameters  `json:"growing,omitempty"`
	Nutrition  *knowledge.NutritionalProfile `json:"nutrition,omitempty"`
}

// NewIdentification joins p against the tables. Unknown class identifiers and
// the service's unknown label resolve to the fallback entry.
func NewIdentification(p *predictor.Prediction, role Role) *Identification {
	id := p.ClassID
	fallback := !knowledge.Known(id) || p.MushroomType.Common == knowledge.UnknownCommonName
	if fallback {
		id = knowledge.FallbackClassID
	}

	out := &Identification{
		Prediction: *p,
		Species:    knowledge.ResolveSpecies(id),
		Role:       role,
		Fallback:   fallback,
	}

	if role.WantsGrowing() {
		g := knowledge.ResolveGrowing(id)
		out.Growing = &g
	} else {
		n := knowledge.ResolveNutrition(id)
		out.Nutrition = &n
	}

	return out
}

// Name is the common name reported by the service.
func (i *Identification) Name() string {
	return i.Prediction.MushroomType.Common
}

// ScientificName prefers the service's scientific name and falls back to the
// resolved species record.
func (i *Identification) ScientificName() string {
	if s := i.Prediction.MushroomType.Scientific; s != "" {
		return s
	}
	return i.Species.Scientific
}

// ConfidenceText formats the confidence without trailing zeros.
func (i *Identification) ConfidenceText() string {
	return strconv.FormatFloat(i.Prediction.Confidence, 'f', -1, 64)
}

// Summary is the one-line success message for the identification.
func (i *Identification) Summary() string {
	return "Identified as " + i.Name() + " with " + i.ConfidenceText() + "% confidence."
}

// FallbackNote explains why fallback reference data is shown, or returns an
// empty string when the class resolved exactly.
func (i *Identification) FallbackNote() string {
	if !i.Fallback {
		return ""
	}
	if knowledge.Known(i.Prediction.ClassID) {
		return fmt.Sprintf(
			"The service could not name this mushroom with confidence, so reference data for %s is shown.",
			i.Species.Common,
		)
	}
	return fmt.Sprintf(
		"Class %d is not in the knowledge tables, so reference data for %s is shown.",
		i.Prediction.ClassID, i.Species.Common,
	)
}
