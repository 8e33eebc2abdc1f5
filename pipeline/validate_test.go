package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/voyageai/voyageai/travel"
)

func runValidation(t *testing.T, st *State) {
	t.Helper()
	if err := runValidationStage(context.Background(), &Deps{}, st); err != nil {
		t.Fatalf("validation stage failed: %v", err)
	}
}

func TestValidationDeduplicatesDays(t *testing.T) {
	st := NewState("")
	st.Intent.Destinations = []string{"Goa"}
	st.Itinerary = []travel.DayItinerary{
		{Day: 1, City: "Goa", Activities: []string{"a"}},
		{Day: 2, City: "Goa", Activities: []string{"b"}},
		{Day: 2, City: "Goa", Activities: []string{"c"}},
		{Day: 3, City: "Goa", Activities: []string{"d"}},
	}
	runValidation(t, st)

	if len(st.Itinerary) != 3 {
		t.Fatalf("itinerary = %d days after dedup, want 3", len(st.Itinerary))
	}
	// First occurrence wins.
	if st.Itinerary[1].Activities[0] != "b" {
		t.Errorf("kept wrong duplicate: %+v", st.Itinerary[1])
	}
	if !hasWarning(st, "Duplicate day numbers") {
		t.Errorf("warnings = %v", st.ValidationErrors)
	}
}

func TestValidationTruncatesGarbledCity(t *testing.T) {
	st := NewState("")
	st.Intent.Destinations = []string{"Goa"}
	st.Itinerary = []travel.DayItinerary{{
		Day:        1,
		City:       "please plan me an amazing beach holiday somewhere warm with great food",
		Activities: []string{"a"},
	}}
	runValidation(t, st)

	if got := st.Itinerary[0].City; got != "please" {
		t.Errorf("city = %q, want first word of the truncation", got)
	}
	if !hasWarning(st, "city name truncated") {
		t.Errorf("warnings = %v", st.ValidationErrors)
	}
}

func TestValidationRecomputesInconsistentTotal(t *testing.T) {
	st := NewState("")
	st.Intent.Destinations = []string{"Goa"}
	st.CostBreakdown = travel.CostBreakdown{
		FlightsEstimated:       10000,
		AccommodationEstimated: 5000,
		ActivitiesEstimated:    2000,
		TransportEstimated:     1000,
		TotalEstimated:         99999,
	}
	runValidation(t, st)

	if st.CostBreakdown.TotalEstimated != 18000 {
		t.Errorf("total = %v, want recomputed 18000", st.CostBreakdown.TotalEstimated)
	}
	if !hasWarning(st, "recalculated") {
		t.Errorf("warnings = %v", st.ValidationErrors)
	}
}

func TestValidationWithinToleranceLeftAlone(t *testing.T) {
	st := NewState("")
	st.Intent.Destinations = []string{"Goa"}
	st.CostBreakdown = travel.CostBreakdown{
		FlightsEstimated: 10000,
		TotalEstimated:   10000.5,
	}
	runValidation(t, st)

	if st.CostBreakdown.TotalEstimated != 10000.5 {
		t.Errorf("total = %v, sub-unit drift should be tolerated", st.CostBreakdown.TotalEstimated)
	}
}

func TestValidationWarningsOnly(t *testing.T) {
	st := NewState("")
	st.Intent.BudgetTotalINR = 1000
	st.CostBreakdown = travel.CostBreakdown{FlightsEstimated: 5000, TotalEstimated: 5000}
	st.Itinerary = []travel.DayItinerary{{Day: 1, City: "Goa"}}
	runValidation(t, st)

	if !hasWarning(st, "exceeds budget") {
		t.Errorf("warnings = %v, want budget overshoot", st.ValidationErrors)
	}
	if !hasWarning(st, "No destinations") {
		t.Errorf("warnings = %v, want missing destinations", st.ValidationErrors)
	}
	if !hasWarning(st, "Days with no activities") {
		t.Errorf("warnings = %v, want empty-day listing", st.ValidationErrors)
	}
}

func TestValidationCleanPlan(t *testing.T) {
	st := NewState("")
	st.Intent.Destinations = []string{"Goa"}
	st.CostBreakdown = travel.CostBreakdown{FlightsEstimated: 5000, TotalEstimated: 5000}
	st.Itinerary = []travel.DayItinerary{{Day: 1, City: "Goa", Activities: []string{"beach"}}}
	runValidation(t, st)

	if len(st.ValidationErrors) != 0 {
		t.Errorf("clean plan produced warnings: %v", st.ValidationErrors)
	}
}

func hasWarning(st *State, substr string) bool {
	for _, e := range st.ValidationErrors {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}
