package knowledge

// Phase names, in cultivation order.
const (
	PhaseSpawnRun  = "Spawn Run"
	PhasePrimordia = "Primordia Formation"
	PhaseFruiting  = "Fruiting Body Formation"
)

// Phase holds environmental targets for one cultivation phase.
type Phase struct {
	Name        string `json:"name"`
	Temperature string `json:"temperature"`
	Humidity    string `json:"humidity"`
	CO2         string `json:"co2"`
	Light       string `json:"light"`
	Duration    string `json:"duration"`
}

// GrowingParameters describes the three cultivation phases for a species.
// The fixed-size array guarantees every record carries exactly three phases.
type GrowingParameters struct {
	ClassID   int      `json:"class_id"`
	Substrate string   `json:"substrate"`
	Phases    [3]Phase `json:"phases"`
}

var growing = map[int]GrowingParameters{
	0: {
		ClassID:   0,
		Substrate: "Rubberwood or hardwood sawdust with 10% rice bran",
		Phases: [3]Phase{
			{Name: PhaseSpawnRun, Temperature: "25-30°C", Humidity: "65-70%", CO2: "5000-20000 ppm", Light: "Darkness", Duration: "20-25 days"},
			{Name: PhasePrimordia, Temperature: "25-28°C", Humidity: "85-90%", CO2: "Below 1000 ppm", Light: "200-500 lux", Duration: "4-7 days"},
			{Name: PhaseFruiting, Temperature: "25-30°C", Humidity: "85-90%", CO2: "Below 1000 ppm", Light: "500-1000 lux", Duration: "5-7 days"},
		},
	},
	1: {
		ClassID:   1,
		Substrate: "Pasteurized wheat straw or sugarcane bagasse",
		Phases: [3]Phase{
			{Name: PhaseSpawnRun, Temperature: "24-30°C", Humidity: "65-75%", CO2: "5000-20000 ppm", Light: "Darkness", Duration: "10-14 days"},
			{Name: PhasePrimordia, Temperature: "20-30°C", Humidity: "90-95%", CO2: "500-1000 ppm", Light: "500-1000 lux", Duration: "3-5 days"},
			{Name: PhaseFruiting, Temperature: "20-30°C", Humidity: "85-90%", CO2: "Below 1000 ppm", Light: "500-1000 lux", Duration: "3-5 days"},
		},
	},
	2: {
		ClassID:   2,
		Substrate: "Chopped paddy straw, soaked and pasteurized",
		Phases: [3]Phase{
			{Name: PhaseSpawnRun, Temperature: "22-26°C", Humidity: "70-75%", CO2: "5000-15000 ppm", Light: "Darkness", Duration: "15-20 days"},
			{Name: PhasePrimordia, Temperature: "20-25°C", Humidity: "85-90%", CO2: "600-1000 ppm", Light: "300-500 lux", Duration: "4-6 days"},
			{Name: PhaseFruiting, Temperature: "20-28°C", Humidity: "80-90%", CO2: "Below 1000 ppm", Light: "300-600 lux", Duration: "4-6 days"},
		},
	},
	3: {
		ClassID:   3,
		Substrate: "Hardwood sawdust or pasteurized straw",
		Phases: [3]Phase{
			{Name: PhaseSpawnRun, Temperature: "21-27°C", Humidity: "85-95%", CO2: "5000-20000 ppm", Light: "Darkness", Duration: "12-21 days"},
			{Name: PhasePrimordia, Temperature: "10-16°C", Humidity: "95-100%", CO2: "500-1000 ppm", Light: "1000-1500 lux", Duration: "3-5 days"},
			{Name: PhaseFruiting, Temperature: "10-21°C", Humidity: "85-90%", CO2: "500-1000 ppm", Light: "1000-1500 lux", Duration: "4-7 days"},
		},
	},
}

// LookupGrowing returns the growing parameters for id and whether it was an exact match.
func LookupGrowing(id int) (GrowingParameters, bool) {
	g, ok := growing[id]
	return g, ok
}

// ResolveGrowing returns the growing parameters for id, or the fallback entry.
func ResolveGrowing(id int) GrowingParameters {
	if g, ok := growing[id]; ok {
		return g
	}
	return growing[FallbackClassID]
}
