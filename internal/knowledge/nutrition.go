package knowledge

import "slices"

// NutritionalProfile summarizes what a species contributes to a diet.
type NutritionalProfile struct {
	ClassID  int      `json:"class_id"`
	Vitamins []string `json:"vitamins"`
	Minerals []string `json:"minerals"`
	Benefits []string `json:"benefits"`
}

var nutrition = map[int]NutritionalProfile{
	0: {
		ClassID:  0,
		Vitamins: []string{"Niacin (B3)", "Riboflavin (B2)", "Vitamin D2"},
		Minerals: []string{"Potassium", "Phosphorus", "Iron"},
		Benefits: []string{
			"High in protein relative to other oysters",
			"Rich in dietary fiber",
			"Low in fat and calories",
		},
	},
	1: {
		ClassID:  1,
		Vitamins: []string{"Niacin (B3)", "Pantothenic acid (B5)", "Folate"},
		Minerals: []string{"Potassium", "Copper", "Zinc"},
		Benefits: []string{
			"Source of antioxidant ergothioneine",
			"Supports healthy cholesterol levels",
			"Low in calories",
		},
	},
	2: {
		ClassID:  2,
		Vitamins: []string{"Riboflavin (B2)", "Niacin (B3)", "Vitamin C"},
		Minerals: []string{"Potassium", "Calcium", "Iron"},
		Benefits: []string{
			"Good plant protein source",
			"Contains immune-supporting beta-glucans",
			"Naturally low in sodium",
		},
	},
	3: {
		ClassID:  3,
		Vitamins: []string{"Vitamin D", "Vitamin B6", "Niacin (B3)", "Folate"},
		Minerals: []string{"Selenium", "Copper", "Zinc", "Potassium"},
		Benefits: []string{
			"Boosts immune system",
			"Supports heart health",
			"Rich in antioxidants",
			"May help lower cholesterol",
		},
	},
}

// LookupNutrition returns the nutritional profile for id and whether it was an exact match.
func LookupNutrition(id int) (NutritionalProfile, bool) {
	n, ok := nutrition[id]
	return n.clone(), ok
}

// ResolveNutrition returns the nutritional profile for id, or the fallback entry.
func ResolveNutrition(id int) NutritionalProfile {
	if n, ok := nutrition[id]; ok {
		return n.clone()
	}
	return nutrition[FallbackClassID].clone()
}

func (n NutritionalProfile) clone() NutritionalProfile {
	n.Vitamins = slices.Clone(n.Vitamins)
	n.Minerals = slices.Clone(n.Minerals)
	n.Benefits = slices.Clone(n.Benefits)
	return n
}
