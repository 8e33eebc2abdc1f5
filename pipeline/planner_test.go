package pipeline

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/voyageai/voyageai/travel"
)

func planState(t *testing.T, intent travel.UserIntent) *State {
	t.Helper()
	st := NewState("")
	st.Intent = intent
	if err := runPlannerStage(context.Background(), &Deps{}, st); err != nil {
		t.Fatalf("planner stage failed: %v", err)
	}
	return st
}

func TestPlannerEvenSplitWithArrivalFlag(t *testing.T) {
	st := planState(t, travel.UserIntent{
		OriginCity:    "Delhi",
		Destinations:  []string{"Tokyo", "Kyoto"},
		DurationDays:  6,
		TravelerCount: 2,
	})

	if len(st.Itinerary) != 6 {
		t.Fatalf("allocated %d days, want 6", len(st.Itinerary))
	}
	for i, d := range st.Itinerary {
		wantCity := "Tokyo"
		if i >= 3 {
			wantCity = "Kyoto"
		}
		if d.City != wantCity {
			t.Errorf("day %d city = %q, want %q", d.Day, d.City, wantCity)
		}
	}
	// First day in the second city is the arrival day.
	if st.Itinerary[3].WeatherNote != "Arrival & check-in day" {
		t.Errorf("day 4 note = %q, want arrival flag", st.Itinerary[3].WeatherNote)
	}
	if st.Itinerary[0].WeatherNote != "" {
		t.Errorf("day 1 should not carry an arrival flag, got %q", st.Itinerary[0].WeatherNote)
	}
}

func TestPlannerDayNumbersContiguous(t *testing.T) {
	for _, tt := range []struct {
		duration int
		dests    []string
	}{
		{5, []string{"Goa"}},
		{7, []string{"Tokyo", "Kyoto"}},
		{10, []string{"Paris", "Amsterdam", "Berlin"}},
		{9, []string{"Tokyo", "Kyoto", "Osaka", "Seoul"}},
	} {
		st := planState(t, travel.UserIntent{
			Destinations: tt.dests, DurationDays: tt.duration, TravelerCount: 1,
		})
		if len(st.Itinerary) != tt.duration {
			t.Errorf("%v/%d: allocated %d days", tt.dests, tt.duration, len(st.Itinerary))
		}
		for i, d := range st.Itinerary {
			if d.Day != i+1 {
				t.Errorf("%v/%d: day at index %d numbered %d", tt.dests, tt.duration, i, d.Day)
			}
		}
	}
}

func TestPlannerRemainderGoesToEarlierCities(t *testing.T) {
	st := planState(t, travel.UserIntent{
		Destinations: []string{"Paris", "Rome"}, DurationDays: 7, TravelerCount: 1,
	})
	counts := map[string]int{}
	for _, d := range st.Itinerary {
		counts[d.City]++
	}
	if counts["Paris"] != 4 || counts["Rome"] != 3 {
		t.Errorf("day split = %v, want Paris:4 Rome:3", counts)
	}
}

func TestPlannerRouteOrder(t *testing.T) {
	st := planState(t, travel.UserIntent{
		OriginCity: "Delhi", Destinations: []string{"Tokyo", "Kyoto"},
		DurationDays: 6, TravelerCount: 1,
	})
	want := []string{"Delhi", "Tokyo", "Kyoto", "Delhi"}
	if !reflect.DeepEqual(st.TransportPlan.RouteOrder, want) {
		t.Errorf("route = %v, want %v", st.TransportPlan.RouteOrder, want)
	}
	if !strings.HasPrefix(st.RouteStrategy, "Multi-city loop:") {
		t.Errorf("strategy = %q", st.RouteStrategy)
	}

	single := planState(t, travel.UserIntent{
		OriginCity: "Mumbai", Destinations: []string{"Goa"},
		DurationDays: 3, TravelerCount: 2,
	})
	if !strings.HasPrefix(single.RouteStrategy, "Direct round-trip:") {
		t.Errorf("strategy = %q", single.RouteStrategy)
	}
}

func TestPlannerTransitPasses(t *testing.T) {
	st := planState(t, travel.UserIntent{
		Destinations: []string{"Tokyo", "Kyoto"}, DurationDays: 6, TravelerCount: 1,
	})
	if !contains(st.TransportPlan.RecommendedPasses, "Japan Rail Pass (7-day)") {
		t.Errorf("passes = %v, want JR pass for two Japanese cities", st.TransportPlan.RecommendedPasses)
	}

	st = planState(t, travel.UserIntent{
		Destinations: []string{"Osaka"}, DurationDays: 4, TravelerCount: 1,
	})
	if !contains(st.TransportPlan.RecommendedPasses, "Suica / Pasmo IC Card") {
		t.Errorf("passes = %v, want IC card for a single Japanese city", st.TransportPlan.RecommendedPasses)
	}

	st = planState(t, travel.UserIntent{
		Destinations: []string{"Paris", "Amsterdam", "Berlin"}, DurationDays: 9, TravelerCount: 1,
	})
	if !contains(st.TransportPlan.RecommendedPasses, "Eurail Global Pass") {
		t.Errorf("passes = %v, want Eurail Global Pass for three EU cities", st.TransportPlan.RecommendedPasses)
	}

	// Every destination gets a local transit card entry.
	for _, d := range []string{"Paris", "Amsterdam", "Berlin"} {
		if !contains(st.TransportPlan.RecommendedPasses, d+" local transit / metro card") {
			t.Errorf("passes = %v, missing card for %s", st.TransportPlan.RecommendedPasses, d)
		}
	}
}
