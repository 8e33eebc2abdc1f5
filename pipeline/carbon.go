package pipeline

import (
	"context"
	"fmt"
	"math"

	"github.com/voyageai/voyageai/travel"
)

// The carbon stage estimates trip emissions per flight leg using
// distance-banded factors, adds a daily local-transport allowance, then
// derives a qualitative rating, an offset cost and reduction tips.

// kg CO2 per passenger-km by flight distance band.
const (
	shortHaulFactor  = 0.255 // < 1500 km
	mediumHaulFactor = 0.195 // 1500-3500 km
	longHaulFactor   = 0.150 // > 3500 km

	localCO2PerDayKg   = 5.5 // per traveler, buses and metro
	localKmPerDay      = 40
	offsetRateINRPerKg = 1.2
)

func emissionFactor(distanceKm float64) float64 {
	if distanceKm < 1500 {
		return shortHaulFactor
	}
	if distanceKm < 3500 {
		return mediumHaulFactor
	}
	return longHaulFactor
}

func carbonRating(totalKg float64) string {
	switch {
	case totalKg < 200:
		return "low"
	case totalKg < 600:
		return "moderate"
	case totalKg < 1200:
		return "high"
	}
	return "very high"
}

func carbonTips(legs []travel.CarbonLeg, rating string) []string {
	var tips []string
	for _, l := range legs {
		if l.Mode == "flight" && l.DistanceKm < 800 {
			tips = append(tips, "Consider trains for short-haul legs under 800 km — up to 80% less CO₂")
			break
		}
	}
	if rating == "high" || rating == "very high" {
		tips = append(tips,
			"Choose direct flights when possible — takeoff and landing consume the most fuel",
			"Pack light — every kg of luggage adds ~0.1 kg CO₂ per 1000 km")
	}
	tips = append(tips,
		"Choose eco-certified hotels to reduce accommodation emissions",
		"Use public transport or cycle at destinations instead of taxis")
	if len(legs) > 4 {
		tips = append(tips, "Combine nearby destinations to reduce the number of flight legs")
	}
	return tips
}

func runCarbonStage(_ context.Context, deps *Deps, st *State) error {
	intent := st.Intent
	origin := intent.OriginCity
	if origin == "" {
		origin = "Delhi"
	}
	destinations := intent.Destinations
	travelers := float64(intent.TravelerCount)

	var legs []travel.CarbonLeg
	var totalCO2 float64

	flightLeg := func(from, to string) {
		dist := deps.Catalog.Distance(from, to)
		co2 := round1(dist * emissionFactor(dist) * travelers)
		legs = append(legs, travel.CarbonLeg{
			Leg:        fmt.Sprintf("%s → %s", titleWords(from), titleWords(to)),
			Mode:       "flight",
			DistanceKm: math.Round(dist),
			CO2Kg:      co2,
		})
		totalCO2 += co2
	}

	prev := origin
	for _, dest := range destinations {
		flightLeg(prev, dest)
		prev = dest
	}
	if len(destinations) > 0 {
		flightLeg(destinations[len(destinations)-1], origin)
	}

	localDays := intent.DurationDays
	localCO2 := round1(float64(localDays) * localCO2PerDayKg * travelers)
	if localCO2 > 0 {
		legs = append(legs, travel.CarbonLeg{
			Leg:        "Local transport (all destinations)",
			Mode:       "bus",
			DistanceKm: float64(localDays * localKmPerDay),
			CO2Kg:      localCO2,
		})
		totalCO2 += localCO2
	}

	totalCO2 = round1(totalCO2)
	rating := carbonRating(totalCO2)
	tips := carbonTips(legs, rating)
	offsetCost := math.Round(totalCO2 * offsetRateINRPerKg)

	st.CarbonFootprint = travel.CarbonFootprint{
		TotalCO2Kg:    totalCO2,
		Rating:        rating,
		OffsetCostINR: offsetCost,
		Legs:          legs,
		Tips:          tips,
	}

	st.appendLog("carbon_estimator",
		"Carbon footprint: %.1f kg CO₂ (%s). Offset cost: ₹%s. %d tip(s) generated.",
		totalCO2, rating, formatINR(offsetCost), len(tips))
	return nil
}
