package pipeline

import (
	"context"
	"math"

	"github.com/voyageai/voyageai/travel"
)

// The confidence stage scores the reliability of each upstream stage's
// output on [0,1] from data-quality signals, then blends them into a
// weighted overall score. Runs before validation so it sees the plan
// exactly as assembled.
func runConfidenceStage(_ context.Context, _ *Deps, st *State) error {
	intent := st.Intent
	var scores travel.ConfidenceScores

	intentScore := 0.55 // something is always parsed
	if len(intent.Destinations) > 0 {
		intentScore += 0.15
	}
	if intent.BudgetTotalINR > 0 || intent.BudgetRangeINR.Max > 0 {
		intentScore += 0.10
	}
	if intent.TravelMonth != "" {
		intentScore += 0.07
	}
	if intent.OriginCity != "" {
		intentScore += 0.05
	}
	if len(intent.TripType) > 0 {
		intentScore += 0.04
	}
	if len(intent.Interests) >= 2 {
		intentScore += 0.04
	}
	scores.IntentParsing = clampScore(intentScore)

	routeScore := 0.65
	if len(st.Itinerary) == intent.DurationDays {
		routeScore += 0.15 // exact day count match
	}
	if st.RouteStrategy != "" {
		routeScore += 0.08
	}
	if len(st.TransportPlan.RouteOrder) > 0 {
		routeScore += 0.07
	}
	allCities := len(st.Itinerary) > 0
	for _, d := range st.Itinerary {
		if d.City == "" {
			allCities = false
			break
		}
	}
	if allCities {
		routeScore += 0.05
	}
	scores.RoutePlanning = clampScore(routeScore)

	flightScore := 0.60
	if len(st.FlightOptions) > 0 {
		flightScore += 0.15
		if len(st.FlightOptions) >= 3 {
			flightScore += 0.10
		}
		minP, maxP := math.Inf(1), 0.0
		hasNonPositive := false
		for _, f := range st.FlightOptions {
			if f.PriceINR <= 0 {
				hasNonPositive = true
				continue
			}
			minP = math.Min(minP, f.PriceINR)
			maxP = math.Max(maxP, f.PriceINR)
		}
		if maxP > 0 && (maxP-minP)/maxP > 0.15 {
			flightScore += 0.10 // good price diversity
		}
		if hasNonPositive {
			flightScore -= 0.10
		}
	}
	scores.FlightData = clampScore(flightScore)

	hotelScore := 0.60
	if len(st.HotelOptions) > 0 {
		hotelScore += 0.15
		if len(st.HotelOptions) >= 4 {
			hotelScore += 0.10
		}
		if len(st.StayRecommendations) > 0 {
			hotelScore += 0.10
			complete := true
			for _, r := range st.StayRecommendations {
				if r.City == "" || r.BudgetPerNightINR <= 0 {
					complete = false
					break
				}
			}
			if complete {
				hotelScore += 0.05
			}
		}
	}
	scores.HotelData = clampScore(hotelScore)

	actScore := 0.60
	daysWithActivities := 0
	var allActs []string
	for _, d := range st.Itinerary {
		if len(d.Activities) > 0 {
			daysWithActivities++
		}
		allActs = append(allActs, d.Activities...)
	}
	totalDays := len(st.Itinerary)
	if totalDays > 0 && daysWithActivities == totalDays {
		actScore += 0.20 // full coverage
	} else if daysWithActivities > 0 {
		actScore += 0.10 * float64(daysWithActivities) / float64(totalDays)
	}
	if len(st.Experiences) > 3 {
		actScore += 0.10
	}
	if len(st.RemoteWorkSpots) > 0 {
		actScore += 0.05
	}
	if len(allActs) > 0 {
		unique := make(map[string]bool, len(allActs))
		for _, a := range allActs {
			unique[a] = true
		}
		if float64(len(unique))/float64(len(allActs)) > 0.7 {
			actScore += 0.05 // good variety
		}
	}
	scores.ActivityData = clampScore(actScore)

	budgetScore := 0.60
	if st.CostBreakdown.TotalEstimated > 0 {
		budgetScore += 0.15
		if budgetMax := intent.BudgetCeiling(); budgetMax > 0 {
			ratio := st.CostBreakdown.TotalEstimated / budgetMax
			if ratio >= 0.75 && ratio <= 1.05 {
				budgetScore += 0.15
			} else if ratio >= 0.6 && ratio <= 1.15 {
				budgetScore += 0.08
			}
		}
	}
	if st.OptimizationScore >= 8 {
		budgetScore += 0.10
	} else if st.OptimizationScore >= 6 {
		budgetScore += 0.05
	}
	scores.BudgetOptimization = clampScore(budgetScore)

	riskConf := 0.65
	if len(st.WeatherData) > 0 {
		riskConf += 0.10
	}
	if st.VisaInformation.Details != "" {
		riskConf += 0.10
		riskConf += 0.08
	}
	riskConf += 0.07 // risk score always computed upstream
	scores.RiskAssessment = clampScore(riskConf)

	overall := scores.IntentParsing*0.20 +
		scores.RoutePlanning*0.15 +
		scores.FlightData*0.15 +
		scores.HotelData*0.15 +
		scores.ActivityData*0.15 +
		scores.BudgetOptimization*0.10 +
		scores.RiskAssessment*0.10
	scores.Overall = round2(overall)

	st.Confidence = scores

	st.appendLog("confidence_scorer",
		"Confidence: overall=%.0f%% | intent=%.0f%% route=%.0f%% flights=%.0f%% hotels=%.0f%% activities=%.0f%% budget=%.0f%% risk=%.0f%%",
		scores.Overall*100, scores.IntentParsing*100, scores.RoutePlanning*100,
		scores.FlightData*100, scores.HotelData*100, scores.ActivityData*100,
		scores.BudgetOptimization*100, scores.RiskAssessment*100)
	return nil
}

func clampScore(v float64) float64 {
	if v > 1 {
		v = 1
	}
	if v < 0 {
		v = 0
	}
	return round2(v)
}
