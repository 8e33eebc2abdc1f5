package catalog

import "math"

// FlightOption is one candidate flight for a leg.
type FlightOption struct {
	Carrier       string  `json:"carrier"`
	PriceINR      float64 `json:"price_inr"`
	DurationHours float64 `json:"duration_hours"`
	Stops         int     `json:"stops"`
}

// Base one-way fares (INR) by destination. Unlisted destinations fall
// back to 35000.
var flightBasesINR = map[string]float64{
	"tokyo": 52000, "paris": 48000, "london": 45000, "new york": 62000,
	"dubai": 22000, "singapore": 28000, "bangkok": 18000, "bali": 30000,
	"rome": 46000, "barcelona": 44000, "amsterdam": 43000, "berlin": 42000,
	"sydney": 58000, "toronto": 60000, "seoul": 38000, "istanbul": 35000,
	"cairo": 32000, "cape town": 55000, "goa": 5500, "jaipur": 4500,
	"mumbai": 4000, "delhi": 3500, "bangalore": 4200, "chennai": 4800,
	"kolkata": 5200, "hyderabad": 4600, "kochi": 6000, "varanasi": 4400,
	"udaipur": 5800, "shimla": 5000, "manali": 5200, "leh": 8500,
	"srinagar": 7500, "amritsar": 4300, "rishikesh": 4800,
	"kuala lumpur": 24000, "hanoi": 26000, "maldives": 25000,
	"kathmandu": 15000, "colombo": 14000, "phuket": 20000,
	"prague": 41000, "vienna": 43000, "zurich": 55000,
	"lisbon": 47000, "athens": 42000, "santorini": 44000,
	"budapest": 40000, "dublin": 46000,
}

// FlightOptions returns three deterministic candidate flights for the
// given leg, with price variance keyed on the origin+destination hash.
func (c *Catalog) FlightOptions(origin, destination string) []FlightOption {
	base, ok := flightBasesINR[cityKey(destination)]
	if !ok {
		base = 35000
	}
	h := cityHash(origin + destination)
	return []FlightOption{
		{
			Carrier:       "SkyFast",
			PriceINR:      math.Round(base*0.92 + float64(h%2000)),
			DurationHours: 5 + float64(h%8),
			Stops:         1,
		},
		{
			Carrier:       "AeroMax",
			PriceINR:      math.Round(base*1.05 + float64(h%1500)),
			DurationHours: 4 + float64(h%6),
			Stops:         0,
		},
		{
			Carrier:       "BudgetWings",
			PriceINR:      math.Round(base*0.78 + float64(h%1000)),
			DurationHours: 7 + float64(h%10),
			Stops:         2,
		},
	}
}
