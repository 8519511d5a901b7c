package knowledge

// Variety is a home page card describing a commonly cultivated mushroom.
type Variety struct {
	Name           string `json:"name"`
	ScientificName string `json:"scientific_name"`
	Image          string `json:"image"`
	Description    string `json:"description"`
}

var varieties = []Variety{
	{
		Name:           "Shiitake",
		ScientificName: "Lentinula edodes",
		Image:          "shiitake.svg",
		Description:    "Popular medicinal mushroom known for immune-boosting properties and rich umami flavor.",
	},
	{
		Name:           "Oyster Mushroom",
		ScientificName: "Pleurotus ostreatus",
		Image:          "oyster.svg",
		Description:    "Versatile and easy-to-grow mushrooms with a delicate texture and mild flavor.",
	},
	{
		Name:           "Button Mushroom",
		ScientificName: "Agaricus bisporus",
		Image:          "button.svg",
		Description:    "The most common cultivated mushroom, perfect for beginners and everyday cooking.",
	},
	{
		Name:           "Portobello",
		ScientificName: "Agaricus bisporus (mature)",
		Image:          "portobello.svg",
		Description:    "Mature button mushrooms with a meaty texture, perfect as a meat substitute.",
	},
}

// Varieties returns the home page variety cards in display order.
func Varieties() []Variety {
	out := make([]Variety, len(varieties))
	copy(out, varieties)
	return out
}
