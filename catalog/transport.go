package catalog

// Average daily local-transport spend (INR) per destination.
var dailyTransportINR = map[string]float64{
	"tokyo": 800, "kyoto": 600, "osaka": 700, "paris": 700, "london": 900, "new york": 850,
	"dubai": 500, "singapore": 600, "bangkok": 250, "bali": 400,
	"goa": 350, "jaipur": 300, "mumbai": 200, "delhi": 200,
	"istanbul": 350, "prague": 400, "budapest": 350,
}

// DailyTransportCost estimates one day of local transport in a
// destination. Unlisted cities fall back to 400.
func (c *Catalog) DailyTransportCost(destination string) float64 {
	if cost, ok := dailyTransportINR[cityKey(destination)]; ok {
		return cost
	}
	return 400
}

var remoteWorkSpots = map[string][]string{
	"tokyo":     {"Starbucks Reserve Roastery Nakameguro", "FabCafe Shibuya", "WeWork Roppongi"},
	"kyoto":     {"Len Kyoto Kawaramachi", "Café Bibliotic Hello!", "Impact Hub Kyoto"},
	"osaka":     {"The Deck Coffee & Pie", "WeWork Namba Skyo", "Osaka Innovation Hub"},
	"paris":     {"Le Peloton Café", "Anticafé Beaubourg", "WeWork La Fayette"},
	"bali":      {"Dojo Bali (Canggu)", "Outpost Coworking Ubud", "Tropical Nomad Canggu"},
	"london":    {"Second Home Spitalfields", "The Hoxton Holborn Lobby", "WeWork Moorgate"},
	"bangkok":   {"Hubba-to Ekkamai", "The Hive Thonglor", "True Digital Park"},
	"goa":       {"Clay Coworking Assagao", "Workbay Panjim", "Café Artjuna Anjuna"},
	"dubai":     {"Nook Coworking JLT", "WeWork One JLT", "Letswork Dubai Marina"},
	"singapore": {"WeWork Beach Centre", "The Hive Lavender", "JustCo Raffles Place"},
	"mumbai":    {"WeWork BKC", "91springboard Lower Parel", "Ministry of New Mumbai"},
	"delhi":     {"91springboard Okhla", "Innov8 Connaught Place", "WeWork Gurugram"},
}

// RemoteWorkSpots lists remote-work friendly places for a destination,
// with a generic pair for uncurated cities.
func (c *Catalog) RemoteWorkSpots(destination string) []string {
	if spots, ok := remoteWorkSpots[cityKey(destination)]; ok {
		out := make([]string, len(spots))
		copy(out, spots)
		return out
	}
	name := titleCase(destination)
	return []string{
		"Coworking space in " + name,
		name + " public library WiFi zone",
	}
}
