package pipeline

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/voyageai/voyageai/travel"
)

// The intent stage parses the raw prompt into a structured UserIntent
// using rule-based extraction (regex and keyword tables), so the
// pipeline runs deterministically with no model calls.

var majorCities = []string{
	// India
	"mumbai", "delhi", "new delhi", "bangalore", "bengaluru", "hyderabad",
	"chennai", "kolkata", "pune", "ahmedabad", "jaipur", "lucknow",
	"goa", "kochi", "thiruvananthapuram", "varanasi", "agra", "udaipur",
	"jodhpur", "shimla", "manali", "rishikesh", "darjeeling", "gangtok",
	"leh", "ladakh", "srinagar", "amritsar", "chandigarh", "mysore",
	"mysuru", "ooty", "munnar", "alleppey", "hampi",
	// International
	"tokyo", "paris", "london", "new york", "nyc", "dubai", "singapore",
	"bangkok", "bali", "rome", "barcelona", "amsterdam", "berlin",
	"prague", "vienna", "zurich", "geneva", "sydney", "melbourne",
	"toronto", "vancouver", "san francisco", "los angeles", "las vegas",
	"miami", "orlando", "seoul", "osaka", "kyoto", "hong kong",
	"shanghai", "beijing", "istanbul", "cairo", "marrakech", "cape town",
	"nairobi", "rio de janeiro", "buenos aires", "lima", "bogota",
	"mexico city", "kuala lumpur", "hanoi", "ho chi minh", "phnom penh",
	"siem reap", "kathmandu", "colombo", "dhaka", "thimphu", "lisbon",
	"madrid", "athens", "santorini", "florence", "venice", "milan",
	"munich", "stockholm", "copenhagen", "oslo", "helsinki", "reykjavik",
	"dublin", "edinburgh", "brussels", "budapest", "phuket",
	"chiang mai", "maldives", "mauritius", "seychelles", "zanzibar",
	"petra", "abu dhabi", "doha", "muscat",
}

type keywordEntry struct {
	key   string
	value string
}

var countryKeywords = []keywordEntry{
	{"india", "India"}, {"japan", "Japan"}, {"france", "France"},
	{"uk", "UK"}, {"united kingdom", "UK"}, {"england", "UK"},
	{"usa", "USA"}, {"united states", "USA"}, {"america", "USA"},
	{"uae", "UAE"}, {"singapore", "Singapore"}, {"thailand", "Thailand"},
	{"indonesia", "Indonesia"}, {"italy", "Italy"}, {"spain", "Spain"},
	{"germany", "Germany"}, {"netherlands", "Netherlands"},
	{"czech republic", "Czech Republic"}, {"austria", "Austria"},
	{"switzerland", "Switzerland"}, {"australia", "Australia"},
	{"canada", "Canada"}, {"south korea", "South Korea"}, {"china", "China"},
	{"turkey", "Turkey"}, {"egypt", "Egypt"}, {"morocco", "Morocco"},
	{"south africa", "South Africa"}, {"kenya", "Kenya"}, {"brazil", "Brazil"},
	{"argentina", "Argentina"}, {"peru", "Peru"}, {"colombia", "Colombia"},
	{"mexico", "Mexico"}, {"malaysia", "Malaysia"}, {"vietnam", "Vietnam"},
	{"cambodia", "Cambodia"}, {"nepal", "Nepal"}, {"sri lanka", "Sri Lanka"},
	{"portugal", "Portugal"}, {"greece", "Greece"}, {"sweden", "Sweden"},
	{"denmark", "Denmark"}, {"norway", "Norway"}, {"finland", "Finland"},
	{"iceland", "Iceland"}, {"ireland", "Ireland"}, {"scotland", "Scotland"},
	{"belgium", "Belgium"}, {"hungary", "Hungary"}, {"maldives", "Maldives"},
	{"mauritius", "Mauritius"}, {"qatar", "Qatar"}, {"oman", "Oman"},
}

var monthKeywords = []keywordEntry{
	{"january", "January"}, {"jan", "January"}, {"february", "February"},
	{"feb", "February"}, {"march", "March"}, {"mar", "March"},
	{"april", "April"}, {"apr", "April"}, {"may", "May"},
	{"june", "June"}, {"jun", "June"}, {"july", "July"}, {"jul", "July"},
	{"august", "August"}, {"aug", "August"}, {"september", "September"},
	{"sep", "September"}, {"october", "October"}, {"oct", "October"},
	{"november", "November"}, {"nov", "November"}, {"december", "December"},
	{"dec", "December"},
}

var tripTypeKeywords = []keywordEntry{
	{"honeymoon", "honeymoon"}, {"romantic", "romantic"},
	{"adventure", "adventure"}, {"backpacking", "backpacking"},
	{"luxury", "luxury"}, {"budget", "budget trip"}, {"solo", "solo"},
	{"family", "family"}, {"business", "business"},
	{"pilgrimage", "pilgrimage"}, {"spiritual", "spiritual"},
	{"cultural", "cultural"}, {"beach", "beach"}, {"mountain", "mountain"},
	{"trekking", "trekking"}, {"hiking", "hiking"},
	{"road trip", "road trip"}, {"workcation", "workcation"},
	{"digital nomad", "digital nomad"}, {"remote work", "remote work"},
	{"foodie", "food & culinary"}, {"culinary", "food & culinary"},
	{"photography", "photography"}, {"wildlife", "wildlife"},
	{"safari", "safari"}, {"cruise", "cruise"}, {"wellness", "wellness"},
	{"spa", "wellness"}, {"party", "nightlife & party"},
	{"nightlife", "nightlife & party"},
}

var interestKeywords = []keywordEntry{
	{"food", "food"}, {"cuisine", "food"}, {"eat", "food"}, {"restaurant", "food"},
	{"culture", "culture"}, {"museum", "museums"}, {"art", "art"},
	{"history", "history"}, {"temple", "temples"}, {"church", "churches"},
	{"beach", "beaches"}, {"mountain", "mountains"}, {"nature", "nature"},
	{"shopping", "shopping"}, {"market", "markets"}, {"nightlife", "nightlife"},
	{"adventure", "adventure sports"}, {"diving", "scuba diving"},
	{"snorkeling", "snorkeling"}, {"surfing", "surfing"},
	{"trekking", "trekking"}, {"wildlife", "wildlife"},
	{"photography", "photography"}, {"yoga", "yoga"},
	{"meditation", "meditation"}, {"wine", "wine tasting"},
}

var accommodationKeywords = []keywordEntry{
	{"luxury", "luxury hotel"}, {"boutique", "boutique hotel"},
	{"5 star", "5-star hotel"}, {"5-star", "5-star hotel"},
	{"4 star", "4-star hotel"}, {"4-star", "4-star hotel"},
	{"hostel", "hostel"}, {"backpacker", "hostel"},
	{"airbnb", "Airbnb / rental"}, {"apartment", "serviced apartment"},
	{"resort", "resort"}, {"villa", "private villa"},
	{"homestay", "homestay"}, {"guest house", "guest house"},
	{"budget", "budget hotel"}, {"cheap", "budget hotel"},
	{"camp", "camping"}, {"tent", "camping"},
}

var transportKeywords = []keywordEntry{
	{"train", "train"}, {"rail", "train"}, {"bullet train", "bullet train"},
	{"shinkansen", "bullet train"}, {"bus", "bus"}, {"cab", "cab/taxi"},
	{"taxi", "cab/taxi"}, {"uber", "ride-hailing"}, {"ola", "ride-hailing"},
	{"rental car", "rental car"}, {"self drive", "self-drive"},
	{"bike", "bike rental"}, {"scooter", "scooter rental"},
	{"metro", "metro"}, {"flight", "domestic flights"},
	{"ferry", "ferry"}, {"cruise", "cruise"},
}

var specialKeywords = []struct {
	pattern *regexp.Regexp
	label   string
}{
	{regexp.MustCompile(`vegetarian|vegan|veg food`), "vegetarian/vegan food"},
	{regexp.MustCompile(`wheelchair|disabled|accessibility`), "wheelchair accessibility"},
	{regexp.MustCompile(`kid|child|infant|baby|toddler`), "child-friendly"},
	{regexp.MustCompile(`pet|dog|cat`), "pet-friendly"},
	{regexp.MustCompile(`halal`), "halal food"},
	{regexp.MustCompile(`gluten.?free`), "gluten-free food"},
	{regexp.MustCompile(`senior|elderly|old age`), "senior-friendly"},
	{regexp.MustCompile(`wifi|internet|remote work|work from`), "reliable WiFi / remote work"},
}

var (
	durationDaysRe  = regexp.MustCompile(`(?i)(\d+)\s*(?:days?|nights?)`)
	durationWeeksRe = regexp.MustCompile(`(?i)(\d+)\s*weeks?`)
	aWeekRe         = regexp.MustCompile(`(?i)\ba\s+week\b`)
	twoWeeksRe      = regexp.MustCompile(`(?i)\btwo\s+weeks?\b`)
	threeWeeksRe    = regexp.MustCompile(`(?i)\bthree\s+weeks?\b`)
	longWeekendRe   = regexp.MustCompile(`(?i)\blong\s+weekend\b`)
	weekendRe       = regexp.MustCompile(`(?i)\bweekend\b`)

	yearRe = regexp.MustCompile(`\b(202[4-9]|203\d)\b`)

	inrAmountRe   = regexp.MustCompile(`(?i)(?:₹|rs\.?|inr)\s*([\d,]+(?:\.\d+)?)\s*(?:lakh|lac|l)?`)
	lakhSuffixRe  = regexp.MustCompile(`(?i)lakh|lac|l\b`)
	kShorthandRe  = regexp.MustCompile(`(?i)([\d,]+(?:\.\d+)?)\s*(?:k)\b`)
	lakhAmountRe  = regexp.MustCompile(`(?i)([\d,]+)\s*(?:lakh|lac)`)
	budgetOfRe    = regexp.MustCompile(`(?i)budget\s+(?:of\s+)?(?:around\s+)?(?:₹|rs\.?|inr)?\s*([\d,]+)`)
	budgetRangeRe = regexp.MustCompile(`(?i)([\d,]+)\s*(?:k)?\s*(?:-|to|and)\s*([\d,]+)\s*(?:k)?`)
	budgetWordRe  = regexp.MustCompile(`budget\s+(?:of|around|is|under|below|above)`)

	travelersRe = regexp.MustCompile(`(?i)(\d+)\s*(?:people|persons?|travelers?|travellers?|friends?|adults?|pax)`)
	coupleRe    = regexp.MustCompile(`(?i)\bcouple\b`)
	soloRe      = regexp.MustCompile(`(?i)\bsolo\b`)
	familyRe    = regexp.MustCompile(`(?i)\bfamily\b`)
	groupRe     = regexp.MustCompile(`(?i)\bgroup\b`)

	originRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:from|departing|leaving|starting)\s+(\w[\w\s]{2,20}?)(?:\s+to\b|\s*,|\s*\.|\s+in\b)`),
		regexp.MustCompile(`(?i)(?:from|departing|leaving|starting)\s+(\w[\w\s]{2,20}?)(?:\s+with\b|\s+for\b|\s+on\b|\s*$)`),
		regexp.MustCompile(`(?i)(?:from|departing|leaving|starting)\s+(\w[\w\s]{2,20}?)(?:\s+budget\b|\s+around\b)`),
	}

	nonWordRe = regexp.MustCompile(`[^\w\s]`)
)

// citiesByLength is majorCities sorted longest-first so that multi-word
// names match before their suffixes ("new york" before "york"). The
// sort is stable: equal-length names keep their majorCities order,
// which decides destination order when a prompt mentions both.
var citiesByLength = func() []string {
	out := make([]string, len(majorCities))
	copy(out, majorCities)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i]) > len(out[j])
	})
	return out
}()

var countriesByLength = func() []keywordEntry {
	out := make([]keywordEntry, len(countryKeywords))
	copy(out, countryKeywords)
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i].key) > len(out[j].key)
	})
	return out
}()

var majorCitySet = func() map[string]bool {
	set := make(map[string]bool, len(majorCities))
	for _, c := range majorCities {
		set[c] = true
	}
	return set
}()

func runIntentStage(_ context.Context, _ *Deps, st *State) error {
	prompt := st.RawPrompt

	destinations := extractCities(prompt)
	country := extractCountry(prompt)
	origin := extractOrigin(prompt)
	duration := extractDuration(prompt)
	month := extractMonth(prompt)
	year := extractYear(prompt)
	budget, brange := extractBudget(prompt)
	travelers := extractTravelers(prompt)
	tripTypes := extractSet(prompt, tripTypeKeywords)
	interests := extractSet(prompt, interestKeywords)
	accommodation := extractSet(prompt, accommodationKeywords)
	transport := extractSet(prompt, transportKeywords)
	special := extractSpecial(prompt)

	// Nothing recognized: treat the cleaned prompt itself as the place.
	if len(destinations) == 0 {
		cleaned := strings.TrimSpace(nonWordRe.ReplaceAllString(prompt, ""))
		if cleaned != "" {
			destinations = []string{titleWords(cleaned)}
		}
	}

	// Drop the origin if the city scan also picked it up.
	if origin != "" {
		kept := destinations[:0]
		for _, d := range destinations {
			if !strings.EqualFold(d, origin) {
				kept = append(kept, d)
			}
		}
		destinations = kept
	}

	st.Intent = travel.UserIntent{
		OriginCity:               origin,
		Destinations:             destinations,
		Country:                  country,
		DurationDays:             duration,
		TravelMonth:              month,
		TravelYear:               year,
		BudgetTotalINR:           budget,
		BudgetRangeINR:           brange,
		TripType:                 tripTypes,
		TravelerCount:            travelers,
		AccommodationPreferences: accommodation,
		Interests:                interests,
		TransportPreferences:     transport,
		SpecialRequirements:      special,
	}

	budgetText := "unspecified"
	if budget > 0 {
		budgetText = strconv.FormatFloat(budget, 'f', -1, 64)
	}
	st.appendLog("intent_extractor",
		"Extracted intent — %d destination(s): %s, %d days, budget ₹%s, %d traveler(s).",
		len(destinations), strings.Join(destinations, ", "), duration, budgetText, travelers)
	return nil
}

func extractCities(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, city := range citiesByLength {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(city) + `\b`)
		if re.MatchString(lower) {
			found = append(found, titleWords(city))
			lower = re.ReplaceAllString(lower, "")
		}
	}
	return found
}

func extractCountry(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range countriesByLength {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(entry.key) + `\b`)
		if re.MatchString(lower) {
			return entry.value
		}
	}
	return ""
}

func extractDuration(text string) int {
	if m := durationDaysRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	if m := durationWeeksRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n * 7
	}
	if aWeekRe.MatchString(text) {
		return 7
	}
	if twoWeeksRe.MatchString(text) {
		return 14
	}
	if threeWeeksRe.MatchString(text) {
		return 21
	}
	if longWeekendRe.MatchString(text) {
		return 4
	}
	if weekendRe.MatchString(text) {
		return 3
	}
	return 5
}

func extractMonth(text string) string {
	lower := strings.ToLower(text)
	for _, entry := range monthKeywords {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(entry.key) + `\b`)
		if re.MatchString(lower) {
			return entry.value
		}
	}
	return ""
}

func extractYear(text string) int {
	if m := yearRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	return 0
}

func parseAmount(s string) (float64, bool) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func extractBudget(text string) (float64, travel.BudgetRange) {
	var budget float64
	var brange travel.BudgetRange

	// Explicit currency markers win; the last mention in the prompt is
	// taken as the budget.
	for _, m := range inrAmountRe.FindAllStringSubmatch(text, -1) {
		val, ok := parseAmount(m[1])
		if !ok {
			continue
		}
		if lakhSuffixRe.MatchString(m[0]) {
			val *= 100_000
		}
		budget = val
	}

	if budget == 0 {
		if m := kShorthandRe.FindStringSubmatch(text); m != nil {
			if val, ok := parseAmount(m[1]); ok {
				budget = val * 1000
			}
		}
	}

	if budget == 0 {
		if m := lakhAmountRe.FindStringSubmatch(text); m != nil {
			if val, ok := parseAmount(m[1]); ok {
				budget = val * 100_000
			}
		}
	}

	if budget == 0 {
		if m := budgetOfRe.FindStringSubmatch(text); m != nil {
			if val, ok := parseAmount(m[1]); ok {
				if val < 500 {
					val *= 1000 // likely in thousands
				}
				budget = val
			}
		}
	}

	if m := budgetRangeRe.FindStringSubmatch(text); m != nil {
		lo, okLo := parseAmount(m[1])
		hi, okHi := parseAmount(m[2])
		if okLo && okHi {
			if lo < 500 {
				lo *= 1000
			}
			if hi < 500 {
				hi *= 1000
			}
			brange = travel.BudgetRange{Min: lo, Max: hi}
			if budget == 0 {
				budget = hi
			}
		}
	}

	return budget, brange
}

func extractTravelers(text string) int {
	if m := travelersRe.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		return n
	}
	switch {
	case coupleRe.MatchString(text):
		return 2
	case soloRe.MatchString(text):
		return 1
	case familyRe.MatchString(text):
		return 4
	case groupRe.MatchString(text):
		return 6
	}
	return 1
}

func extractOrigin(text string) string {
	for _, re := range originRes {
		if m := re.FindStringSubmatch(text); m != nil {
			candidate := titleWords(strings.TrimSpace(m[1]))
			if majorCitySet[strings.ToLower(candidate)] {
				return candidate
			}
		}
	}
	return ""
}

func extractSet(text string, mapping []keywordEntry) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, entry := range mapping {
		// "budget" next to an amount means a budget figure, not a
		// budget-trip preference.
		if entry.key == "budget" && budgetWordRe.MatchString(lower) {
			continue
		}
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(entry.key) + `\b`)
		if re.MatchString(lower) && !contains(found, entry.value) {
			found = append(found, entry.value)
		}
	}
	return found
}

func extractSpecial(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, kw := range specialKeywords {
		if kw.pattern.MatchString(lower) && !contains(found, kw.label) {
			found = append(found, kw.label)
		}
	}
	return found
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func titleWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
