// Package knowledge holds the read-only reference tables joined against
// classification results: the species catalog, cultivation parameters,
// nutritional profiles, and the home page variety cards.
//
// Every table is keyed by the class identifier returned from the prediction
// service. Lookups that miss resolve to FallbackClassID instead of failing.
package knowledge

import "slices"

// FallbackClassID is the entry served for class identifiers the tables do not
// know. Pleurotus ostreatus is the baseline oyster species the other entries
// are variations of.
const FallbackClassID = 3

// UnknownCommonName is the label the prediction service reports when no class
// clears its confidence thresholds.
const UnknownCommonName = "Unknown Mushroom Type"

// Species identifies one classifiable mushroom.
type Species struct {
	ClassID     int    `json:"class_id"`
	Common      string `json:"common"`
	Scientific  string `json:"scientific"`
	Description string `json:"description"`
}

var species = map[int]Species{
	0: {
		ClassID:     0,
		Common:      "Abalone Mushroom",
		Scientific:  "Pleurotus cystidiosus",
		Description: "Thick, chewy, grey-brown caps with a seafood-like texture. A warm-weather oyster that tolerates tropical grow rooms.",
	},
	1: {
		ClassID:     1,
		Common:      "Pink Oyster Mushroom",
		Scientific:  "Pleurotus djamor",
		Description: "Vivid pink clusters that fade when cooked. Fast colonizer that fruits readily in heat and humidity.",
	},
	2: {
		ClassID:     2,
		Common:      "Bhutan Oyster Mushroom",
		Scientific:  "Pleurotus eous",
		Description: "Pale, funnel-shaped caps grown widely on paddy straw. Productive in warm, moderately humid conditions.",
	},
	3: {
		ClassID:     3,
		Common:      "American Oyster Mushroom",
		Scientific:  "Pleurotus ostreatus",
		Description: "The classic oyster mushroom: shelf-like grey to tan caps, mild flavor, and a forgiving cultivation profile.",
	},
}

// Known reports whether id has an entry in every table.
func Known(id int) bool {
	_, ok := species[id]
	return ok
}

// LookupSpecies returns the species for id and whether it was an exact match.
func LookupSpecies(id int) (Species, bool) {
	s, ok := species[id]
	return s, ok
}

// ResolveSpecies returns the species for id, or the fallback species.
func ResolveSpecies(id int) Species {
	if s, ok := species[id]; ok {
		return s
	}
	return species[FallbackClassID]
}

// Catalog returns every species ordered by class identifier.
func Catalog() []Species {
	ids := make([]int, 0, len(species))
	for id := range species {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]Species, len(ids))
	for i, id := range ids {
		out[i] = species[id]
	}
	return out
}
