package pipeline

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// The budget stage fits the plan to the user's ceiling with a
// proportional flexibility-pool shrink, then a hard trim if the pool
// runs dry, and propagates every reduction back into the per-day and
// per-stay artifacts so breakdown and itinerary stay consistent.

type budgetCategory int

const (
	catFlights budgetCategory = iota
	catTransport
	catAccommodation
	catActivities
)

// flexOrder lists categories least-flexible first. minShare is the
// fraction of the original value a category may shrink to in the
// proportional pass: flights are nearly non-negotiable, activities
// have many free alternatives.
var flexOrder = []struct {
	cat      budgetCategory
	minShare float64
}{
	{catFlights, 0.95},
	{catTransport, 0.60},
	{catAccommodation, 0.40},
	{catActivities, 0.25},
}

// hardTrimOrder is the most-flexible-first order for the second pass.
var hardTrimOrder = []budgetCategory{catActivities, catAccommodation, catTransport}

func runBudgetStage(_ context.Context, _ *Deps, st *State) error {
	cb := &st.CostBreakdown
	cb.TotalEstimated = cb.Sum()

	budgetMax := st.Intent.BudgetCeiling()
	rounds := 0

	get := func(c budgetCategory) float64 {
		switch c {
		case catFlights:
			return cb.FlightsEstimated
		case catTransport:
			return cb.TransportEstimated
		case catAccommodation:
			return cb.AccommodationEstimated
		default:
			return cb.ActivitiesEstimated
		}
	}
	set := func(c budgetCategory, v float64) {
		switch c {
		case catFlights:
			cb.FlightsEstimated = v
		case catTransport:
			cb.TransportEstimated = v
		case catAccommodation:
			cb.AccommodationEstimated = v
		default:
			cb.ActivitiesEstimated = v
		}
	}

	if budgetMax > 0 && cb.TotalEstimated > budgetMax {
		overshoot := cb.TotalEstimated - budgetMax

		// Headroom each category can give back before hitting its floor.
		var totalHeadroom float64
		headrooms := make([]float64, len(flexOrder))
		for i, f := range flexOrder {
			original := get(f.cat)
			headrooms[i] = original - original*f.minShare
			if headrooms[i] > 0 {
				totalHeadroom += headrooms[i]
			}
		}

		if totalHeadroom > 0 {
			scale := overshoot / totalHeadroom
			if scale > 1 {
				scale = 1
			}
			for i, f := range flexOrder {
				if headrooms[i] <= 0 {
					continue
				}
				reduction := round2(headrooms[i] * scale)
				set(f.cat, get(f.cat)-reduction)
			}
			rounds = 1
			propagateAccommodation(st)
			propagateActivities(st)
		}

		cb.TotalEstimated = cb.Sum()

		// Still over: hard trim down to 20% of current values,
		// most flexible categories first.
		if cb.TotalEstimated > budgetMax {
			remaining := cb.TotalEstimated - budgetMax
			for _, cat := range hardTrimOrder {
				if remaining <= 0 {
					break
				}
				current := get(cat)
				canCut := current - current*0.20
				cut := math.Min(canCut, remaining)
				if cut > 0 {
					set(cat, current-cut)
					remaining -= cut
					rounds++
				}
			}
			propagateAccommodation(st)
			propagateActivities(st)
			cb.TotalEstimated = cb.Sum()
		}
	}

	st.TotalCost = cb.TotalEstimated

	var score float64
	if budgetMax > 0 {
		ratio := cb.TotalEstimated / budgetMax
		if ratio <= 1.0 {
			// Under budget is good even when far under.
			score = round1(math.Max(5.0, 10.0-(1.0-ratio)*15))
		} else {
			score = round1(math.Max(0, 10.0-(ratio-1.0)*30))
		}
	} else {
		score = 7.5
	}
	st.OptimizationScore = score

	parts := []string{fmt.Sprintf("Total: ₹%s.", formatINR(cb.TotalEstimated))}
	if budgetMax > 0 {
		diff := budgetMax - cb.TotalEstimated
		if diff >= 0 {
			pct := round1(diff / budgetMax * 100)
			parts = append(parts, fmt.Sprintf("Under budget by ₹%s (%s%% savings).",
				formatINR(diff), strconv.FormatFloat(pct, 'f', -1, 64)))
		} else {
			parts = append(parts, fmt.Sprintf("Over budget by ₹%s — manual adjustments recommended.",
				formatINR(-diff)))
		}
		if rounds > 0 {
			parts = append(parts, fmt.Sprintf("Auto-optimised in %d pass(es).", rounds))
		}
	}
	parts = append(parts, fmt.Sprintf("Score: %s/10.", strconv.FormatFloat(score, 'f', -1, 64)))
	st.OptimizationSummary = strings.Join(parts, " ")

	st.appendLog("budget_optimizer", "%s", st.OptimizationSummary)
	return nil
}

// propagateAccommodation recomputes each stay's nightly budget from the
// shrunk accommodation bucket, using the same nights split as the hotel
// stage.
func propagateAccommodation(st *State) {
	stays := st.StayRecommendations
	if len(stays) == 0 {
		return
	}
	nDest := len(stays)
	duration := st.Intent.DurationDays
	baseNights := duration / nDest
	remainder := duration % nDest
	totalNights := 0
	for i := 0; i < nDest; i++ {
		totalNights += baseNights
		if i < remainder {
			totalNights++
		}
	}
	if totalNights == 0 {
		return
	}
	perNight := math.Round(st.CostBreakdown.AccommodationEstimated / float64(totalNights))
	for i := range stays {
		stays[i].BudgetPerNightINR = perNight
	}
}

// propagateActivities spreads the shrunk activities bucket evenly over
// the itinerary days.
func propagateActivities(st *State) {
	days := st.Itinerary
	if len(days) == 0 {
		return
	}
	perDay := math.Round(st.CostBreakdown.ActivitiesEstimated / float64(len(days)))
	for i := range days {
		days[i].EstimatedCostINR = perDay
	}
}
