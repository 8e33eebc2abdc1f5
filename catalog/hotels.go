package catalog

import "math"

// HotelOption is one candidate stay in a destination.
type HotelOption struct {
	Name           string  `json:"name"`
	NightlyRateINR float64 `json:"nightly_rate_inr"`
	Rating         float64 `json:"rating"`
	Type           string  `json:"type"`
}

// Base nightly rates (INR) by destination. Unlisted destinations fall
// back to 4500.
var hotelBasesINR = map[string]float64{
	"tokyo": 8500, "paris": 9500, "london": 10000, "new york": 12000,
	"dubai": 7500, "singapore": 7000, "bangkok": 3500, "bali": 4000,
	"rome": 7500, "barcelona": 7000, "goa": 3500, "jaipur": 3000,
	"mumbai": 4500, "delhi": 4000, "bangalore": 3800, "udaipur": 5000,
	"shimla": 3200, "manali": 2800, "varanasi": 2200, "kochi": 3000,
	"rishikesh": 2500, "leh": 3500, "amritsar": 2500,
	"kuala lumpur": 4000, "hanoi": 2500, "phuket": 3800,
	"prague": 5500, "budapest": 4500, "lisbon": 6000,
	"athens": 5000, "istanbul": 4000, "maldives": 15000,
}

// HotelOptions returns four deterministic candidate stays for a
// destination, spanning luxury to hostel.
func (c *Catalog) HotelOptions(destination string) []HotelOption {
	base, ok := hotelBasesINR[cityKey(destination)]
	if !ok {
		base = 4500
	}
	h := cityHash(destination)
	name := titleCase(destination)
	return []HotelOption{
		{
			Name:           name + " Grand Palace",
			NightlyRateINR: math.Round(base*1.8 + float64(h%500)),
			Rating:         4.7,
			Type:           "luxury hotel",
		},
		{
			Name:           name + " Central Suites",
			NightlyRateINR: math.Round(base*1.15 + float64(h%300)),
			Rating:         4.4,
			Type:           "boutique hotel",
		},
		{
			Name:           name + " Budget Inn",
			NightlyRateINR: math.Round(base*0.65 + float64(h%200)),
			Rating:         4.0,
			Type:           "budget hotel",
		},
		{
			Name:           name + " Backpacker Hostel",
			NightlyRateINR: math.Round(base*0.3 + float64(h%150)),
			Rating:         3.8,
			Type:           "hostel",
		},
	}
}
