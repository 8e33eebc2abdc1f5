package pipeline

import (
	"context"
	"testing"

	"github.com/voyageai/voyageai/catalog"
	"github.com/voyageai/voyageai/travel"
)

func runConfidence(t *testing.T, st *State) travel.ConfidenceScores {
	t.Helper()
	if err := runConfidenceStage(context.Background(), &Deps{}, st); err != nil {
		t.Fatalf("confidence stage failed: %v", err)
	}
	return st.Confidence
}

func TestConfidenceBaselines(t *testing.T) {
	scores := runConfidence(t, NewState(""))

	if scores.IntentParsing != 0.55 {
		t.Errorf("intent = %v, want bare 0.55 baseline", scores.IntentParsing)
	}
	if scores.FlightData != 0.60 {
		t.Errorf("flights = %v", scores.FlightData)
	}
	if scores.HotelData != 0.60 {
		t.Errorf("hotels = %v", scores.HotelData)
	}
	// Risk always gets the computed-score bonus.
	if scores.RiskAssessment != 0.72 {
		t.Errorf("risk = %v", scores.RiskAssessment)
	}
}

func TestConfidenceFullIntentMaxesOut(t *testing.T) {
	st := NewState("")
	st.Intent = travel.UserIntent{
		Destinations:   []string{"Tokyo"},
		OriginCity:     "Delhi",
		DurationDays:   5,
		TravelMonth:    "April",
		BudgetTotalINR: 150000,
		TravelerCount:  2,
		TripType:       []string{"culture"},
		Interests:      []string{"food", "temples"},
	}
	scores := runConfidence(t, st)

	if scores.IntentParsing != 1.0 {
		t.Errorf("intent = %v, want 1.0 with every signal present", scores.IntentParsing)
	}
}

func TestConfidenceRouteBonuses(t *testing.T) {
	st := NewState("")
	st.Intent.DurationDays = 3
	st.RouteStrategy = "Single-city deep dive"
	st.TransportPlan.RouteOrder = []string{"Goa"}
	st.Itinerary = []travel.DayItinerary{
		{Day: 1, City: "Goa"}, {Day: 2, City: "Goa"}, {Day: 3, City: "Goa"},
	}
	scores := runConfidence(t, st)

	if scores.RoutePlanning != 1.0 {
		t.Errorf("route = %v, want 1.0 with all bonuses", scores.RoutePlanning)
	}
}

func TestConfidenceFlightDiversityBonus(t *testing.T) {
	st := NewState("")
	st.FlightOptions = []catalog.FlightOption{
		{Carrier: "A", PriceINR: 10000},
		{Carrier: "B", PriceINR: 20000},
		{Carrier: "C", PriceINR: 15000},
	}
	scores := runConfidence(t, st)

	// 0.60 base + 0.15 present + 0.10 three options + 0.10 price spread.
	if scores.FlightData != 0.95 {
		t.Errorf("flights = %v, want 0.95", scores.FlightData)
	}
}

func TestConfidenceNonPositiveFarePenalty(t *testing.T) {
	st := NewState("")
	st.FlightOptions = []catalog.FlightOption{
		{Carrier: "A", PriceINR: 10000},
		{Carrier: "B", PriceINR: 0},
	}
	scores := runConfidence(t, st)

	// 0.60 + 0.15 present − 0.10 bad fare.
	if scores.FlightData != 0.65 {
		t.Errorf("flights = %v, want 0.65", scores.FlightData)
	}
}

func TestConfidenceBudgetFitBands(t *testing.T) {
	cases := []struct {
		name  string
		total float64
		want  float64
	}{
		// 0.60 base + 0.15 total present, plus the fit bonus.
		{"snug fit", 90000, 0.90},
		{"loose fit", 70000, 0.83},
		{"way under", 30000, 0.75},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := NewState("")
			st.Intent.BudgetTotalINR = 100000
			st.CostBreakdown.TotalEstimated = tc.total
			scores := runConfidence(t, st)
			if scores.BudgetOptimization != tc.want {
				t.Errorf("budget = %v, want %v", scores.BudgetOptimization, tc.want)
			}
		})
	}
}

func TestConfidenceOverallIsWeightedBlend(t *testing.T) {
	exec := NewExecutor(Deps{})
	st, err := exec.Run(context.Background(), e2ePrompt)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	s := st.Confidence

	want := round2(s.IntentParsing*0.20 + s.RoutePlanning*0.15 +
		s.FlightData*0.15 + s.HotelData*0.15 + s.ActivityData*0.15 +
		s.BudgetOptimization*0.10 + s.RiskAssessment*0.10)
	if s.Overall != want {
		t.Errorf("overall = %v, want %v from sub-scores %+v", s.Overall, want, s)
	}
	if s.Overall < 0.6 || s.Overall > 1 {
		t.Errorf("overall = %v, implausible for a complete run", s.Overall)
	}
}
