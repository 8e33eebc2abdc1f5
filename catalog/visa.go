package catalog

// VisaInfo is the visa requirement for one country, written for Indian
// passport holders (the catalog's reference nationality).
type VisaInfo struct {
	Required bool   `json:"required"`
	Details  string `json:"details"`
}

var visaData = map[string]VisaInfo{
	"japan":       {Required: true, Details: "Indian citizens need a tourist visa. Apply at VFS Global. Processing takes 5-7 business days. Visa fee ~₹700."},
	"france":      {Required: true, Details: "Schengen visa required. Apply via VFS Global France. Processing 15 calendar days. Visa fee ~₹6,800."},
	"uk":          {Required: true, Details: "UK Standard Visitor visa required. Apply online and attend biometrics appointment. Fee ~₹9,800."},
	"usa":         {Required: true, Details: "US B1/B2 tourist visa required. Attend interview at US Embassy. Fee ~₹13,500."},
	"uae":         {Required: false, Details: "Indian passport holders can get visa on arrival for 14 days or apply for 30-day e-visa (~₹6,000)."},
	"singapore":   {Required: true, Details: "Indian citizens need a Singapore tourist visa. Apply via authorized agents. Fee ~₹2,500."},
	"thailand":    {Required: false, Details: "Indian citizens get visa on arrival for 15 days at Suvarnabhumi and Don Mueang airports. Fee ~₹1,700."},
	"indonesia":   {Required: false, Details: "Visa on arrival for 30 days available at major airports. Fee ~₹2,800."},
	"sri lanka":   {Required: true, Details: "ETA (Electronic Travel Authorization) required. Apply online. Fee ~₹1,500."},
	"nepal":       {Required: false, Details: "No visa required for Indian citizens. Just carry valid passport or Voter ID."},
	"maldives":    {Required: false, Details: "Free visa on arrival for 30 days for all nationalities."},
	"italy":       {Required: true, Details: "Schengen visa required. Apply via VFS Global Italy. Processing 15 calendar days. Fee ~₹6,800."},
	"spain":       {Required: true, Details: "Schengen visa required. Apply via BLS Spain. Processing 15 calendar days. Fee ~₹6,800."},
	"germany":     {Required: true, Details: "Schengen visa required. Apply via VFS Global Germany. Fee ~₹6,800."},
	"australia":   {Required: true, Details: "Visitor visa (subclass 600) required. Apply online. Fee ~₹10,500. Processing 20-30 days."},
	"turkey":      {Required: true, Details: "e-Visa available online. Processing is instant. Fee ~₹4,200."},
	"egypt":       {Required: true, Details: "Visa on arrival available at Cairo airport. Fee ~₹2,100."},
	"malaysia":    {Required: false, Details: "eNTRI (free) or e-Visa available. Indian citizens can get 30-day eNTRI."},
	"vietnam":     {Required: true, Details: "e-Visa available online. Fee ~₹2,100. Processing 3 business days."},
	"south korea": {Required: true, Details: "Tourist visa required. Apply at Korean Embassy. Fee ~₹3,200."},
	"india":       {Required: false, Details: "No visa required for Indian citizens for domestic travel."},
}

// cityToCountry maps destination cities to their visa country.
var cityToCountry = map[string]string{
	"tokyo": "japan", "osaka": "japan", "kyoto": "japan",
	"paris": "france", "london": "uk", "edinburgh": "uk",
	"new york": "usa", "san francisco": "usa", "los angeles": "usa", "las vegas": "usa", "miami": "usa",
	"dubai": "uae", "abu dhabi": "uae",
	"singapore": "singapore",
	"bangkok":   "thailand", "phuket": "thailand", "chiang mai": "thailand",
	"bali": "indonesia",
	"rome": "italy", "florence": "italy", "venice": "italy", "milan": "italy",
	"barcelona": "spain", "madrid": "spain",
	"berlin":    "germany", "munich": "germany",
	"amsterdam": "netherlands",
	"sydney":    "australia", "melbourne": "australia",
	"istanbul":  "turkey",
	"cairo":     "egypt",
	"kuala lumpur": "malaysia",
	"hanoi":        "vietnam", "ho chi minh": "vietnam",
	"seoul":     "south korea",
	"colombo":   "sri lanka",
	"kathmandu": "nepal",
	"maldives":  "maldives",
	"goa":       "india", "jaipur": "india", "mumbai": "india", "delhi": "india",
	"bangalore": "india", "chennai": "india", "kolkata": "india",
	"hyderabad": "india", "varanasi": "india", "udaipur": "india",
	"shimla": "india", "manali": "india", "rishikesh": "india",
	"leh": "india", "srinagar": "india", "amritsar": "india", "kochi": "india",
	"prague": "czech republic", "vienna": "austria", "zurich": "switzerland",
	"lisbon": "portugal", "athens": "greece", "santorini": "greece",
	"budapest": "hungary", "dublin": "ireland", "cape town": "south africa",
}

// VisaInfo resolves the visa requirements for a destination. The country
// argument, when non-empty, overrides the city-to-country mapping.
// Unknown countries default to "required" with an embassy-check note.
func (c *Catalog) VisaInfo(destination, country string) VisaInfo {
	key := cityKey(country)
	if key == "" {
		key = cityToCountry[cityKey(destination)]
	}
	if info, ok := visaData[cityKey(key)]; ok {
		return info
	}
	return VisaInfo{
		Required: true,
		Details:  "Visa requirements for " + destination + " — please check with the nearest embassy.",
	}
}

// CountryForCity returns the country a city belongs to, or "" when the
// city is not in the curated map.
func (c *Catalog) CountryForCity(city string) string {
	return cityToCountry[cityKey(city)]
}
