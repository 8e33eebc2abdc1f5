package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/voyageai/voyageai/travel"
)

// The planner stage turns the intent into an itinerary skeleton: route
// order, per-destination day allocation and transit pass suggestions.
// Itinerary days carry empty activity lists until the experience stage
// fills them.

var japanRailCities = map[string]bool{
	"tokyo": true, "osaka": true, "kyoto": true, "hiroshima": true, "nara": true,
}

var eurailCities = map[string]bool{
	"paris": true, "london": true, "amsterdam": true, "berlin": true,
	"prague": true, "brussels": true, "rome": true, "florence": true,
	"venice": true, "barcelona": true, "madrid": true, "vienna": true,
	"budapest": true, "lisbon": true, "athens": true, "munich": true,
	"zurich": true, "geneva": true,
}

var indiaDomesticCities = map[string]bool{
	"delhi": true, "mumbai": true, "bangalore": true, "chennai": true,
	"kolkata": true, "jaipur": true, "goa": true, "varanasi": true,
	"kochi": true, "hyderabad": true,
}

func runPlannerStage(_ context.Context, _ *Deps, st *State) error {
	intent := st.Intent
	destinations := intent.Destinations
	if len(destinations) == 0 {
		destinations = []string{"Unknown"}
	}
	duration := intent.DurationDays
	origin := intent.OriginCity
	if origin == "" {
		origin = "Your city"
	}

	var routeStrategy string
	var routeOrder []string
	if len(destinations) == 1 {
		routeStrategy = fmt.Sprintf("Direct round-trip: %s → %s → %s", origin, destinations[0], origin)
		routeOrder = []string{origin, destinations[0], origin}
	} else {
		routeStrategy = fmt.Sprintf("Multi-city loop: %s → %s → %s",
			origin, strings.Join(destinations, " → "), origin)
		routeOrder = append(append([]string{origin}, destinations...), origin)
	}

	// Even split with a floor at half the even share, never below one
	// day; leftover days go to the earlier destinations.
	nDest := len(destinations)
	minPerDest := duration / (nDest * 2)
	if minPerDest < 1 {
		minPerDest = 1
	}
	baseDays := duration / nDest
	if baseDays < minPerDest {
		baseDays = minPerDest
	}
	remainder := duration - baseDays*nDest

	dayCounter := 1
	var days []travel.DayItinerary
	for idx, city := range destinations {
		cityDays := baseDays
		if idx < remainder {
			cityDays++
		}
		if cityDays < 1 {
			cityDays = 1
		}
		for d := 0; d < cityDays; d++ {
			note := ""
			if d == 0 && idx > 0 && len(destinations) > 1 {
				note = "Arrival & check-in day"
			}
			days = append(days, travel.DayItinerary{
				Day:         dayCounter,
				City:        city,
				Activities:  []string{},
				WeatherNote: note,
			})
			dayCounter++
		}
	}

	var passes []string
	destSet := make(map[string]bool, nDest)
	for _, d := range destinations {
		destSet[strings.ToLower(d)] = true
	}
	countIn := func(group map[string]bool) int {
		n := 0
		for d := range destSet {
			if group[d] {
				n++
			}
		}
		return n
	}

	if n := countIn(japanRailCities); n >= 2 {
		passes = append(passes, "Japan Rail Pass (7-day)")
	} else if n == 1 {
		passes = append(passes, "Suica / Pasmo IC Card")
	}

	if n := countIn(eurailCities); n >= 3 {
		passes = append(passes, "Eurail Global Pass")
	} else if n == 2 {
		passes = append(passes, "Eurail 2-Country Pass")
	}

	if destSet["london"] || destSet["edinburgh"] {
		passes = append(passes, "Oyster Card / Contactless")
	}

	if countIn(indiaDomesticCities) >= 3 {
		passes = append(passes, "IndiGo/SpiceJet multi-city domestic pass")
	}

	for _, d := range destinations {
		passes = append(passes, fmt.Sprintf("%s local transit / metro card", d))
	}

	st.Itinerary = days
	st.TransportPlan = travel.TransportPlan{
		RecommendedPasses: passes,
		RouteOrder:        routeOrder,
	}
	st.RouteStrategy = routeStrategy
	st.Summary = fmt.Sprintf("%d-day trip covering %d destination(s): %s for %d traveler(s).",
		duration, nDest, strings.Join(destinations, ", "), intent.TravelerCount)

	st.appendLog("itinerary_planner", "Route planned: %s. %d day-slots allocated.", routeStrategy, len(days))
	return nil
}
