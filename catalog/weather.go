package catalog

// WeatherProfile is the curated climate/risk profile for a destination.
type WeatherProfile struct {
	AvgTempC         float64  `json:"avg_temp_c"`
	RainChance       float64  `json:"rain_chance"`
	StormProbability float64  `json:"storm_probability"`
	AdvisoryLevel    string   `json:"advisory_level"`
	BestMonths       []string `json:"best_months"`
}

var weatherProfiles = map[string]WeatherProfile{
	"tokyo":     {AvgTempC: 22, RainChance: 0.3, StormProbability: 0.08, AdvisoryLevel: "low", BestMonths: []string{"March", "April", "October", "November"}},
	"kyoto":     {AvgTempC: 23, RainChance: 0.28, StormProbability: 0.06, AdvisoryLevel: "low", BestMonths: []string{"March", "April", "October", "November"}},
	"osaka":     {AvgTempC: 24, RainChance: 0.30, StormProbability: 0.07, AdvisoryLevel: "low", BestMonths: []string{"March", "April", "October", "November"}},
	"mumbai":    {AvgTempC: 30, RainChance: 0.45, StormProbability: 0.12, AdvisoryLevel: "moderate", BestMonths: []string{"November", "December", "January", "February"}},
	"delhi":     {AvgTempC: 28, RainChance: 0.20, StormProbability: 0.05, AdvisoryLevel: "low", BestMonths: []string{"October", "November", "February", "March"}},
	"paris":     {AvgTempC: 18, RainChance: 0.25, StormProbability: 0.05, AdvisoryLevel: "low", BestMonths: []string{"April", "May", "June", "September"}},
	"london":    {AvgTempC: 15, RainChance: 0.45, StormProbability: 0.04, AdvisoryLevel: "low", BestMonths: []string{"June", "July", "August", "September"}},
	"dubai":     {AvgTempC: 35, RainChance: 0.02, StormProbability: 0.01, AdvisoryLevel: "low", BestMonths: []string{"November", "December", "January", "February", "March"}},
	"bali":      {AvgTempC: 28, RainChance: 0.35, StormProbability: 0.12, AdvisoryLevel: "moderate", BestMonths: []string{"April", "May", "June", "July", "August", "September"}},
	"goa":       {AvgTempC: 30, RainChance: 0.40, StormProbability: 0.10, AdvisoryLevel: "low", BestMonths: []string{"November", "December", "January", "February", "March"}},
	"bangkok":   {AvgTempC: 32, RainChance: 0.35, StormProbability: 0.08, AdvisoryLevel: "low", BestMonths: []string{"November", "December", "January", "February"}},
	"singapore": {AvgTempC: 30, RainChance: 0.40, StormProbability: 0.06, AdvisoryLevel: "low", BestMonths: []string{"February", "March", "April", "July", "August"}},
	"jaipur":    {AvgTempC: 28, RainChance: 0.15, StormProbability: 0.03, AdvisoryLevel: "low", BestMonths: []string{"October", "November", "December", "January", "February"}},
	"maldives":  {AvgTempC: 29, RainChance: 0.30, StormProbability: 0.10, AdvisoryLevel: "moderate", BestMonths: []string{"January", "February", "March", "April"}},
}

// WeatherProfile returns the curated profile, or a deterministic
// hash-derived profile for uncurated destinations.
func (c *Catalog) WeatherProfile(destination string) WeatherProfile {
	if p, ok := weatherProfiles[cityKey(destination)]; ok {
		return p
	}
	h := cityHash(destination)
	return WeatherProfile{
		AvgTempC:         22 + float64(h%12),
		RainChance:       0.1 + float64(h%40)/100,
		StormProbability: 0.02 + float64(h%15)/100,
		AdvisoryLevel:    "low",
		BestMonths:       []string{"March", "April", "October", "November"},
	}
}
