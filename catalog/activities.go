package catalog

// Activity is one bookable or free experience in a destination.
type Activity struct {
	Name    string  `json:"name"`
	CostINR float64 `json:"cost_inr"`
	Score   float64 `json:"score"`
	Type    string  `json:"type"`
}

var cityActivities = map[string][]Activity{
	"tokyo": {
		{Name: "Shibuya Crossing & Harajuku walk", CostINR: 0, Score: 9.3, Type: "free"},
		{Name: "Tsukiji Outer Market food tour", CostINR: 3500, Score: 9.5, Type: "food"},
		{Name: "TeamLab Borderless", CostINR: 2800, Score: 9.0, Type: "culture"},
		{Name: "Meiji Shrine & Yoyogi Park", CostINR: 0, Score: 8.8, Type: "free"},
		{Name: "Akihabara electronics district", CostINR: 500, Score: 8.2, Type: "shopping"},
		{Name: "Senso-ji Temple, Asakusa", CostINR: 0, Score: 9.1, Type: "culture"},
		{Name: "Robot Restaurant show", CostINR: 6500, Score: 8.5, Type: "entertainment"},
		{Name: "Day trip to Mt. Fuji", CostINR: 5000, Score: 9.4, Type: "adventure"},
	},
	"paris": {
		{Name: "Eiffel Tower visit", CostINR: 2200, Score: 9.5, Type: "landmark"},
		{Name: "Louvre Museum", CostINR: 1500, Score: 9.6, Type: "culture"},
		{Name: "Montmartre walking tour", CostINR: 0, Score: 9.0, Type: "free"},
		{Name: "Seine River cruise", CostINR: 1800, Score: 8.9, Type: "experience"},
		{Name: "Croissant & café hopping", CostINR: 800, Score: 9.2, Type: "food"},
		{Name: "Versailles Palace day trip", CostINR: 3000, Score: 9.3, Type: "culture"},
	},
	"goa": {
		{Name: "Baga Beach sunset", CostINR: 0, Score: 8.5, Type: "free"},
		{Name: "Old Goa churches tour", CostINR: 300, Score: 8.8, Type: "culture"},
		{Name: "Dudhsagar Falls trek", CostINR: 2500, Score: 9.2, Type: "adventure"},
		{Name: "Spice plantation visit", CostINR: 800, Score: 8.3, Type: "experience"},
		{Name: "Seafood beach shack dinner", CostINR: 1200, Score: 9.0, Type: "food"},
		{Name: "Scuba diving at Grande Island", CostINR: 4500, Score: 9.1, Type: "adventure"},
	},
	"jaipur": {
		{Name: "Amber Fort tour", CostINR: 500, Score: 9.4, Type: "culture"},
		{Name: "Hawa Mahal photography", CostINR: 200, Score: 9.0, Type: "free"},
		{Name: "City Palace museum", CostINR: 700, Score: 8.8, Type: "culture"},
		{Name: "Nahargarh Fort sunset", CostINR: 300, Score: 9.1, Type: "experience"},
		{Name: "Chokhi Dhani cultural dinner", CostINR: 1500, Score: 8.9, Type: "food"},
		{Name: "Johari Bazaar shopping", CostINR: 0, Score: 8.0, Type: "shopping"},
	},
	"dubai": {
		{Name: "Burj Khalifa observation deck", CostINR: 3200, Score: 9.3, Type: "landmark"},
		{Name: "Desert safari with BBQ dinner", CostINR: 4500, Score: 9.5, Type: "adventure"},
		{Name: "Dubai Mall & Aquarium", CostINR: 1500, Score: 8.8, Type: "shopping"},
		{Name: "Dhow cruise dinner, Dubai Creek", CostINR: 2800, Score: 8.7, Type: "experience"},
		{Name: "Old Dubai & Gold Souk walk", CostINR: 0, Score: 8.5, Type: "free"},
		{Name: "Palm Jumeirah beach day", CostINR: 0, Score: 8.9, Type: "free"},
	},
	"bali": {
		{Name: "Ubud rice terrace walk", CostINR: 0, Score: 9.4, Type: "free"},
		{Name: "Uluwatu Temple sunset & Kecak dance", CostINR: 1500, Score: 9.5, Type: "culture"},
		{Name: "Snorkeling at Nusa Penida", CostINR: 3500, Score: 9.3, Type: "adventure"},
		{Name: "Balinese cooking class", CostINR: 2000, Score: 8.8, Type: "food"},
		{Name: "Mt. Batur sunrise trek", CostINR: 3000, Score: 9.6, Type: "adventure"},
		{Name: "Seminyak beach clubs", CostINR: 1800, Score: 8.2, Type: "entertainment"},
	},
	"london": {
		{Name: "British Museum (free entry)", CostINR: 0, Score: 9.4, Type: "free"},
		{Name: "Tower of London", CostINR: 3000, Score: 9.2, Type: "culture"},
		{Name: "West End theatre show", CostINR: 5500, Score: 9.0, Type: "entertainment"},
		{Name: "Borough Market food tour", CostINR: 2000, Score: 9.1, Type: "food"},
		{Name: "Hyde Park & Kensington walk", CostINR: 0, Score: 8.5, Type: "free"},
		{Name: "Camden Town markets", CostINR: 500, Score: 8.3, Type: "shopping"},
	},
	"singapore": {
		{Name: "Gardens by the Bay", CostINR: 1500, Score: 9.3, Type: "landmark"},
		{Name: "Hawker centre food crawl", CostINR: 800, Score: 9.5, Type: "food"},
		{Name: "Sentosa Island day", CostINR: 3000, Score: 8.7, Type: "entertainment"},
		{Name: "Marina Bay Sands skypark", CostINR: 2000, Score: 9.0, Type: "landmark"},
		{Name: "Little India & Chinatown walk", CostINR: 0, Score: 8.6, Type: "free"},
		{Name: "Night Safari", CostINR: 3500, Score: 8.9, Type: "adventure"},
	},
	"bangkok": {
		{Name: "Grand Palace & Wat Phra Kaew", CostINR: 500, Score: 9.5, Type: "culture"},
		{Name: "Chatuchak Weekend Market", CostINR: 0, Score: 9.0, Type: "shopping"},
		{Name: "Street food tour (Yaowarat)", CostINR: 600, Score: 9.4, Type: "food"},
		{Name: "Wat Arun at sunset", CostINR: 200, Score: 9.2, Type: "culture"},
		{Name: "Floating market day trip", CostINR: 1500, Score: 8.8, Type: "experience"},
		{Name: "Thai massage experience", CostINR: 400, Score: 8.7, Type: "wellness"},
	},
	"kyoto": {
		{Name: "Fushimi Inari Shrine (1000 torii gates)", CostINR: 0, Score: 9.7, Type: "free"},
		{Name: "Arashiyama Bamboo Grove walk", CostINR: 0, Score: 9.5, Type: "free"},
		{Name: "Kinkaku-ji (Golden Pavilion)", CostINR: 350, Score: 9.4, Type: "culture"},
		{Name: "Nishiki Market food tour", CostINR: 2500, Score: 9.3, Type: "food"},
		{Name: "Geisha district (Gion) evening walk", CostINR: 0, Score: 9.2, Type: "free"},
		{Name: "Traditional tea ceremony", CostINR: 2000, Score: 9.0, Type: "culture"},
		{Name: "Philosopher's Path & Nanzen-ji", CostINR: 300, Score: 8.8, Type: "free"},
		{Name: "Nijo Castle tour", CostINR: 500, Score: 8.6, Type: "culture"},
	},
	"osaka": {
		{Name: "Dotonbori food crawl", CostINR: 2000, Score: 9.6, Type: "food"},
		{Name: "Osaka Castle visit", CostINR: 500, Score: 9.2, Type: "culture"},
		{Name: "Kuromon Market breakfast", CostINR: 1500, Score: 9.1, Type: "food"},
		{Name: "Shinsekai & Tsutenkaku Tower", CostINR: 600, Score: 8.7, Type: "culture"},
		{Name: "Universal Studios Japan", CostINR: 7000, Score: 9.0, Type: "entertainment"},
		{Name: "Namba & Shinsaibashi shopping", CostINR: 0, Score: 8.5, Type: "shopping"},
	},
	"mumbai": {
		{Name: "Gateway of India & Colaba walk", CostINR: 0, Score: 9.0, Type: "free"},
		{Name: "Dhobi Ghat & Dharavi tour", CostINR: 800, Score: 8.8, Type: "culture"},
		{Name: "Marine Drive sunset stroll", CostINR: 0, Score: 9.2, Type: "free"},
		{Name: "Street food trail (Vada Pav, Pav Bhaji)", CostINR: 500, Score: 9.5, Type: "food"},
		{Name: "Elephanta Caves ferry trip", CostINR: 1500, Score: 8.7, Type: "culture"},
		{Name: "Bollywood studio tour", CostINR: 2500, Score: 8.4, Type: "entertainment"},
	},
	"delhi": {
		{Name: "Red Fort & Chandni Chowk walk", CostINR: 500, Score: 9.3, Type: "culture"},
		{Name: "Qutub Minar visit", CostINR: 200, Score: 9.0, Type: "culture"},
		{Name: "Old Delhi street food tour", CostINR: 600, Score: 9.5, Type: "food"},
		{Name: "Humayun's Tomb", CostINR: 300, Score: 9.1, Type: "culture"},
		{Name: "India Gate & Connaught Place", CostINR: 0, Score: 8.7, Type: "free"},
		{Name: "Lotus Temple & Akshardham", CostINR: 0, Score: 8.9, Type: "free"},
	},
}

// defaultActivities covers destinations without a curated pool.
var defaultActivities = []Activity{
	{Name: "City walking tour", CostINR: 0, Score: 8.5, Type: "free"},
	{Name: "Cultural heritage museum", CostINR: 800, Score: 8.2, Type: "culture"},
	{Name: "Local food market exploration", CostINR: 1200, Score: 9.0, Type: "food"},
	{Name: "Historical landmark visit", CostINR: 600, Score: 8.6, Type: "culture"},
	{Name: "Sunset viewpoint", CostINR: 0, Score: 8.8, Type: "free"},
	{Name: "Local cooking class", CostINR: 2000, Score: 8.4, Type: "experience"},
	{Name: "Day trip to nearby attraction", CostINR: 3000, Score: 8.7, Type: "adventure"},
	{Name: "Street art & café hopping", CostINR: 500, Score: 8.1, Type: "free"},
}

// Activities returns a copy of the destination's activity pool, or the
// default pool if the city is not curated.
func (c *Catalog) Activities(destination string) []Activity {
	pool, ok := cityActivities[cityKey(destination)]
	if !ok {
		pool = defaultActivities
	}
	out := make([]Activity, len(pool))
	copy(out, pool)
	return out
}
