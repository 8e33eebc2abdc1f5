package pipeline

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/voyageai/voyageai/travel"
)

// The validation stage is the final guardrail. It repairs what it can
// (duplicate days, oversized city names, inconsistent totals) and
// records everything it found as warnings. It never fails the run.
func runValidationStage(_ context.Context, _ *Deps, st *State) error {
	var errs []string

	// Duplicate day numbers: keep the first occurrence of each.
	seen := make(map[int]bool)
	deduped := st.Itinerary[:0]
	hadDup := false
	for _, d := range st.Itinerary {
		if seen[d.Day] {
			hadDup = true
			continue
		}
		seen[d.Day] = true
		deduped = append(deduped, d)
	}
	if hadDup {
		errs = append(errs, "Duplicate day numbers detected; deduplicated.")
		st.Itinerary = deduped
	}

	// City fields must be names, not raw prompt text.
	for i := range st.Itinerary {
		if len(st.Itinerary[i].City) > 50 {
			truncated := strings.Fields(st.Itinerary[i].City[:50])
			if len(truncated) > 0 {
				st.Itinerary[i].City = truncated[0]
			}
			errs = append(errs, fmt.Sprintf("Day %d: city name truncated.", st.Itinerary[i].Day))
		}
	}

	// Breakdown total must match the category sum within one unit.
	cb := &st.CostBreakdown
	recalc := cb.FlightsEstimated + cb.AccommodationEstimated +
		cb.ActivitiesEstimated + cb.TransportEstimated
	if math.Abs(recalc-cb.TotalEstimated) > 1 {
		cb.TotalEstimated = recalc
		errs = append(errs, "Cost breakdown total was inconsistent; recalculated.")
	}

	if budgetMax := st.Intent.BudgetCeiling(); budgetMax > 0 && cb.TotalEstimated > budgetMax {
		errs = append(errs, fmt.Sprintf(
			"Plan still exceeds budget (₹%s > ₹%s). Consider further manual adjustments.",
			formatINR(cb.TotalEstimated), formatINR(budgetMax)))
	}

	if len(st.Intent.Destinations) == 0 {
		errs = append(errs, "No destinations could be extracted from the prompt.")
	}

	var emptyDays []int
	for _, d := range st.Itinerary {
		if len(d.Activities) == 0 {
			emptyDays = append(emptyDays, d.Day)
		}
	}
	if len(emptyDays) > 0 {
		errs = append(errs, fmt.Sprintf("Days with no activities: %v.", emptyDays))
	}

	st.ValidationErrors = errs
	if len(errs) > 0 {
		st.appendLog("plan_validator", "Validation completed with %d warning(s): %s",
			len(errs), strings.Join(errs, "; "))
	} else {
		st.appendLog("plan_validator", "Validation passed — plan is clean.")
	}
	return nil
}

// BuildResponse assembles the API response artifact from a completed
// run's state.
func BuildResponse(st *State) *travel.PlanResponse {
	return &travel.PlanResponse{
		Intent: st.Intent,
		Plan: travel.TravelPlan{
			Summary:             st.Summary,
			RouteStrategy:       st.RouteStrategy,
			DayByDayItinerary:   st.Itinerary,
			TransportPlan:       st.TransportPlan,
			StayRecommendations: st.StayRecommendations,
			VisaInformation:     st.VisaInformation,
			CostBreakdown:       st.CostBreakdown,
			RemoteWorkSpots:     st.RemoteWorkSpots,
			OptimizationScore:   st.OptimizationScore,
			CarbonFootprint:     st.CarbonFootprint,
			WeatherInsights:     st.WeatherInsights,
		},
		RiskScore:           st.RiskScore,
		Confidence:          st.Confidence,
		OptimizationSummary: st.OptimizationSummary,
		AgentLogs:           st.Logs,
		ValidationErrors:    st.ValidationErrors,
	}
}
