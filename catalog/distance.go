package catalog

import "math"

// defaultDistanceKm is used when a city pair has neither a curated
// distance nor coordinates on either side.
const defaultDistanceKm = 3500.0

// Approximate one-way distances (km) between major city pairs. Pairs are
// checked in both directions; the Haversine fallback covers the rest.
var distanceKm = map[string]map[string]float64{
	"delhi": {
		"tokyo": 5840, "kyoto": 5720, "osaka": 5700, "paris": 6600,
		"london": 6720, "dubai": 2200, "singapore": 4150, "bangkok": 2920,
		"bali": 5300, "goa": 1550, "jaipur": 270, "mumbai": 1150,
		"bangalore": 1750, "kolkata": 1310, "kuala lumpur": 4300,
		"new york": 11750, "rome": 5900, "istanbul": 4550, "sydney": 10400,
		"chennai": 1760, "hyderabad": 1260, "amsterdam": 6350,
		"berlin": 5800, "vienna": 5500, "zurich": 6100, "cairo": 4500,
		"nairobi": 5300, "hong kong": 3780, "seoul": 4660,
	},
	"mumbai": {
		"tokyo": 6740, "delhi": 1150, "goa": 450, "dubai": 1930,
		"singapore": 3920, "bangkok": 3550, "london": 7200,
		"paris": 6600, "jaipur": 950, "bangalore": 840,
		"bali": 5600, "kuala lumpur": 4070, "kolkata": 1650,
		"chennai": 1030, "hyderabad": 620, "new york": 12560,
		"rome": 6300, "hong kong": 4470, "sydney": 10100,
	},
	"bangalore": {
		"delhi": 1750, "mumbai": 840, "chennai": 290, "kolkata": 1560,
		"goa": 520, "hyderabad": 500, "singapore": 3230, "dubai": 2690,
		"london": 8100, "paris": 7850, "bangkok": 3140,
	},
	"kolkata": {
		"delhi": 1310, "mumbai": 1650, "bangkok": 1880, "singapore": 3120,
		"hong kong": 2920, "kuala lumpur": 2840, "tokyo": 5140,
	},
	"london": {
		"paris": 340, "amsterdam": 360, "berlin": 930, "rome": 1430,
		"istanbul": 2510, "dubai": 5500, "new york": 5570, "tokyo": 9560,
		"sydney": 17000, "singapore": 10850, "bangkok": 9540,
		"delhi": 6720, "mumbai": 7200, "hong kong": 9640, "cairo": 3520,
	},
	"paris": {
		"london": 340, "amsterdam": 430, "berlin": 880, "rome": 1100,
		"istanbul": 2240, "dubai": 5250, "new york": 5840, "tokyo": 9710,
		"delhi": 6600, "mumbai": 6600, "barcelona": 830, "madrid": 1050,
		"zurich": 490, "vienna": 1030,
	},
	"tokyo": {
		"osaka": 400, "kyoto": 375, "seoul": 1160, "hong kong": 2900,
		"singapore": 5310, "bangkok": 4600, "sydney": 7820, "new york": 10840,
		"london": 9560, "paris": 9710, "delhi": 5840, "mumbai": 6740,
	},
	"new york": {
		"london": 5570, "paris": 5840, "tokyo": 10840, "delhi": 11750,
		"dubai": 11020, "sydney": 16000, "rome": 6880, "berlin": 6380,
	},
	"dubai": {
		"delhi": 2200, "mumbai": 1930, "london": 5500, "paris": 5250,
		"singapore": 5850, "bangkok": 4900, "tokyo": 7950, "sydney": 12050,
		"istanbul": 3000, "cairo": 2400, "nairobi": 3350,
	},
	"singapore": {
		"bangkok": 1420, "kuala lumpur": 320, "bali": 2600, "hong kong": 2580,
		"tokyo": 5310, "sydney": 6290, "delhi": 4150, "mumbai": 3920,
		"london": 10850, "dubai": 5850,
	},
}

// cityCoords backs the great-circle fallback.
var cityCoords = map[string][2]float64{
	"delhi": {28.6139, 77.2090}, "mumbai": {19.0760, 72.8777},
	"bangalore": {12.9716, 77.5946}, "chennai": {13.0827, 80.2707},
	"kolkata": {22.5726, 88.3639}, "hyderabad": {17.3850, 78.4867},
	"jaipur": {26.9124, 75.7873}, "goa": {15.2993, 74.1240},
	"varanasi": {25.3176, 82.9739}, "kochi": {9.9312, 76.2673},
	"tokyo": {35.6762, 139.6503}, "osaka": {34.6937, 135.5023},
	"kyoto": {35.0116, 135.7681}, "seoul": {37.5665, 126.9780},
	"hong kong": {22.3193, 114.1694}, "singapore": {1.3521, 103.8198},
	"bangkok": {13.7563, 100.5018}, "bali": {-8.3405, 115.0920},
	"kuala lumpur": {3.1390, 101.6869},
	"london":       {51.5074, -0.1278}, "paris": {48.8566, 2.3522},
	"amsterdam": {52.3676, 4.9041}, "berlin": {52.5200, 13.4050},
	"rome": {41.9028, 12.4964}, "barcelona": {41.3874, 2.1686},
	"madrid": {40.4168, -3.7038}, "vienna": {48.2082, 16.3738},
	"prague": {50.0755, 14.4378}, "zurich": {47.3769, 8.5417},
	"istanbul": {41.0082, 28.9784}, "cairo": {30.0444, 31.2357},
	"nairobi":  {-1.2921, 36.8219},
	"dubai":    {25.2048, 55.2708}, "new york": {40.7128, -74.0060},
	"sydney": {-33.8688, 151.2093}, "san francisco": {37.7749, -122.4194},
	"los angeles": {34.0522, -118.2437},
}

// haversine returns the great-circle distance in km between two points.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0
	dlat := (lat2 - lat1) * math.Pi / 180
	dlon := (lon2 - lon1) * math.Pi / 180
	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*math.Pow(math.Sin(dlon/2), 2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// Coordinates returns the curated (lat, lon) for a city, with ok=false
// when the city is not in the table.
func (c *Catalog) Coordinates(city string) (lat, lon float64, ok bool) {
	coords, ok := cityCoords[cityKey(city)]
	return coords[0], coords[1], ok
}

// Distance returns the approximate one-way distance in km between two
// cities: curated table first (both directions), then great-circle from
// coordinates, then a fixed 3500 km estimate.
func (c *Catalog) Distance(origin, dest string) float64 {
	o, d := cityKey(origin), cityKey(dest)
	if o == d {
		return 0
	}
	if row, ok := distanceKm[o]; ok {
		if km, ok := row[d]; ok {
			return km
		}
	}
	if row, ok := distanceKm[d]; ok {
		if km, ok := row[o]; ok {
			return km
		}
	}
	oc, okO := cityCoords[o]
	dc, okD := cityCoords[d]
	if okO && okD {
		return math.Round(haversine(oc[0], oc[1], dc[0], dc[1]))
	}
	return defaultDistanceKm
}
