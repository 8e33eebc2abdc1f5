package pipeline

import (
	"context"
	"testing"

	"github.com/voyageai/voyageai/catalog"
	"github.com/voyageai/voyageai/travel"
)

func experienceState(intent travel.UserIntent, days []travel.DayItinerary) *State {
	st := NewState("")
	st.Intent = intent
	st.Itinerary = days
	return st
}

func runExperience(t *testing.T, st *State) {
	t.Helper()
	deps := &Deps{Catalog: catalog.New()}
	if err := runExperienceStage(context.Background(), deps, st); err != nil {
		t.Fatalf("experience stage failed: %v", err)
	}
}

func daysIn(city string, n int, startDay int) []travel.DayItinerary {
	days := make([]travel.DayItinerary, n)
	for i := range days {
		days[i] = travel.DayItinerary{Day: startDay + i, City: city}
	}
	return days
}

func TestExperienceNoRepeatsUntilPoolExhausted(t *testing.T) {
	// Tokyo has 8 curated activities; 2 full days at 3 each stay
	// within the pool, so no name may repeat.
	st := experienceState(
		travel.UserIntent{Destinations: []string{"Tokyo"}, DurationDays: 2, TravelerCount: 1},
		daysIn("Tokyo", 2, 1),
	)
	runExperience(t, st)

	seen := map[string]bool{}
	for _, d := range st.Itinerary {
		if len(d.Activities) != 3 {
			t.Errorf("day %d has %d activities, want 3", d.Day, len(d.Activities))
		}
		for _, a := range d.Activities {
			if seen[a] {
				t.Errorf("activity %q repeated before pool exhausted", a)
			}
			seen[a] = true
		}
	}
}

func TestExperienceRotationResetsAfterExhaustion(t *testing.T) {
	// Paris has 6 activities. A long stay must exhaust and recycle
	// the pool, but no single day may list a duplicate.
	st := experienceState(
		travel.UserIntent{Destinations: []string{"Paris"}, DurationDays: 5, TravelerCount: 1},
		daysIn("Paris", 5, 1),
	)
	runExperience(t, st)

	for _, d := range st.Itinerary {
		today := map[string]bool{}
		if len(d.Activities) == 0 {
			t.Errorf("day %d has no activities", d.Day)
		}
		for _, a := range d.Activities {
			if today[a] {
				t.Errorf("day %d lists %q twice", d.Day, a)
			}
			today[a] = true
		}
	}
}

func TestExperienceArrivalDayIsLighter(t *testing.T) {
	days := append(daysIn("Tokyo", 2, 1), daysIn("Kyoto", 2, 3)...)
	st := experienceState(
		travel.UserIntent{Destinations: []string{"Tokyo", "Kyoto"}, DurationDays: 4, TravelerCount: 1},
		days,
	)
	runExperience(t, st)

	if got := len(st.Itinerary[2].Activities); got != 2 {
		t.Errorf("arrival day in Kyoto has %d activities, want 2", got)
	}
	if got := len(st.Itinerary[0].Activities); got != 3 {
		t.Errorf("first day in Tokyo has %d activities, want 3", got)
	}
}

func TestExperienceRelaxationTripsAreLighter(t *testing.T) {
	st := experienceState(
		travel.UserIntent{
			Destinations: []string{"Bali"}, DurationDays: 2, TravelerCount: 2,
			TripType: []string{"honeymoon"},
		},
		daysIn("Bali", 2, 1),
	)
	runExperience(t, st)

	for _, d := range st.Itinerary {
		if len(d.Activities) != 2 {
			t.Errorf("day %d has %d activities, want 2 for a honeymoon", d.Day, len(d.Activities))
		}
	}
}

func TestExperienceInterestsRankFirst(t *testing.T) {
	st := experienceState(
		travel.UserIntent{
			Destinations: []string{"Tokyo"}, DurationDays: 1, TravelerCount: 1,
			Interests: []string{"food"},
		},
		daysIn("Tokyo", 1, 1),
	)
	runExperience(t, st)

	if len(st.Itinerary[0].Activities) == 0 {
		t.Fatal("no activities assigned")
	}
	if st.Itinerary[0].Activities[0] != "Tsukiji Outer Market food tour" {
		t.Errorf("top pick = %q, want the food-typed activity first", st.Itinerary[0].Activities[0])
	}
}

func TestExperienceCostsAndRemoteSpots(t *testing.T) {
	st := experienceState(
		travel.UserIntent{Destinations: []string{"Tokyo"}, DurationDays: 2, TravelerCount: 1},
		daysIn("Tokyo", 2, 1),
	)
	runExperience(t, st)

	var wantActivities float64
	for _, d := range st.Itinerary {
		wantActivities += d.EstimatedCostINR
	}
	if st.CostBreakdown.ActivitiesEstimated != wantActivities {
		t.Errorf("activities bucket %.2f != per-day sum %.2f",
			st.CostBreakdown.ActivitiesEstimated, wantActivities)
	}
	if st.CostBreakdown.TransportEstimated <= 0 {
		t.Errorf("transport bucket = %.2f, want daily cost accumulated", st.CostBreakdown.TransportEstimated)
	}
	if len(st.RemoteWorkSpots) != 1 || st.RemoteWorkSpots[0].City != "Tokyo" {
		t.Errorf("remote spots = %+v, want one Tokyo entry", st.RemoteWorkSpots)
	}
	if len(st.Experiences) != 8 {
		t.Errorf("experience pool = %d entries, want all 8 Tokyo activities", len(st.Experiences))
	}
}
