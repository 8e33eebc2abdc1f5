package pipeline

import (
	"context"

	"github.com/voyageai/voyageai/catalog"
)

// The flight stage prices every leg implied by the route, including the
// return, taking the cheapest option per leg.
func runFlightStage(_ context.Context, deps *Deps, st *State) error {
	intent := st.Intent
	origin := intent.OriginCity
	if origin == "" {
		origin = "Delhi"
	}
	destinations := intent.Destinations
	if len(destinations) == 0 {
		destinations = []string{"Unknown"}
	}

	var allOptions []catalog.FlightOption
	var totalFlightCost float64

	prev := origin
	for _, dest := range destinations {
		flights := deps.Catalog.FlightOptions(prev, dest)
		allOptions = append(allOptions, flights...)
		totalFlightCost += cheapestFare(flights)
		prev = dest
	}

	returnFlights := deps.Catalog.FlightOptions(destinations[len(destinations)-1], origin)
	allOptions = append(allOptions, returnFlights...)
	totalFlightCost += cheapestFare(returnFlights)

	st.FlightOptions = allOptions
	st.CostBreakdown.FlightsEstimated = totalFlightCost

	st.appendLog("flight_finder",
		"Evaluated %d flight options across %d legs. Total flight cost: ₹%s.",
		len(allOptions), len(destinations)+1, formatINR(totalFlightCost))
	return nil
}

func cheapestFare(flights []catalog.FlightOption) float64 {
	if len(flights) == 0 {
		return 0
	}
	min := flights[0].PriceINR
	for _, f := range flights[1:] {
		if f.PriceINR < min {
			min = f.PriceINR
		}
	}
	return min
}
