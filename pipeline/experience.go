package pipeline

import (
	"context"
	"sort"
	"strings"

	"github.com/voyageai/voyageai/catalog"
	"github.com/voyageai/voyageai/travel"
)

// The experience stage fills each itinerary day with activities ranked
// by interest overlap then quality score, rotating through each city's
// pool so consecutive days never repeat an activity until the pool is
// exhausted. It also accumulates per-day activity costs, daily local
// transport, and remote-work spots (once per city).

// rotation tracks duplicate-avoidance state for one city's activity
// pool across the days spent there.
type rotation struct {
	used   map[string]bool
	offset int
}

// pick selects up to n activities from ranked, preferring unused ones
// starting at the rotation offset, then filling with repeats by rank.
// When the whole pool has been used the rotation resets so the next
// stay cycles through fresh picks again.
func (r *rotation) pick(ranked []catalog.Activity, n int) []catalog.Activity {
	poolLen := len(ranked)
	if poolLen == 0 {
		return nil
	}

	var chosen []catalog.Activity
	for i := 0; i < poolLen && len(chosen) < n; i++ {
		act := ranked[(r.offset+i)%poolLen]
		if !r.used[act.Name] {
			chosen = append(chosen, act)
		}
	}

	// Pool exhausted for today: allow repeats, highest-ranked first,
	// skipping anything already chosen today.
	if len(chosen) < n {
		today := make(map[string]bool, len(chosen))
		for _, a := range chosen {
			today[a.Name] = true
		}
		for _, act := range ranked {
			if today[act.Name] {
				continue
			}
			chosen = append(chosen, act)
			today[act.Name] = true
			if len(chosen) >= n {
				break
			}
		}
	}

	for _, a := range chosen {
		r.used[a.Name] = true
	}
	r.offset += len(chosen)
	if len(r.used) >= poolLen {
		r.used = make(map[string]bool)
	}
	return chosen
}

func runExperienceStage(_ context.Context, deps *Deps, st *State) error {
	intent := st.Intent
	interests := make(map[string]bool, len(intent.Interests))
	for _, i := range intent.Interests {
		interests[strings.ToLower(i)] = true
	}
	relaxed := false
	for _, t := range intent.TripType {
		if t == "relaxation" || t == "honeymoon" {
			relaxed = true
		}
	}

	var allExperiences []catalog.Activity
	var totalActivityCost, totalTransportCost float64
	var remoteSpots []travel.RemoteWorkSpot

	activityCache := make(map[string][]catalog.Activity)
	transportCache := make(map[string]float64)
	rotations := make(map[string]*rotation)
	seenRemote := make(map[string]bool)

	cityKey := func(c string) string { return strings.ToLower(strings.TrimSpace(c)) }

	for dayIdx := range st.Itinerary {
		day := &st.Itinerary[dayIdx]
		ck := cityKey(day.City)

		pool, ok := activityCache[ck]
		if !ok {
			pool = deps.Catalog.Activities(day.City)
			activityCache[ck] = pool
			allExperiences = append(allExperiences, pool...)
		}

		ranked := make([]catalog.Activity, len(pool))
		copy(ranked, pool)
		sort.SliceStable(ranked, func(i, j int) bool {
			mi, mj := 0, 0
			if interests[strings.ToLower(ranked[i].Type)] {
				mi = 1
			}
			if interests[strings.ToLower(ranked[j].Type)] {
				mj = 1
			}
			if mi != mj {
				return mi > mj
			}
			return ranked[i].Score > ranked[j].Score
		})

		isArrivalDay := dayIdx > 0 && cityKey(st.Itinerary[dayIdx-1].City) != ck

		var nPerDay int
		switch {
		case isArrivalDay, relaxed:
			nPerDay = 2 // lighter day
		case len(ranked) <= 4:
			nPerDay = len(ranked)
			if nPerDay > 3 {
				nPerDay = 3
			}
		default:
			nPerDay = 3
		}

		rot, ok := rotations[ck]
		if !ok {
			rot = &rotation{used: make(map[string]bool)}
			rotations[ck] = rot
		}
		chosen := rot.pick(ranked, nPerDay)

		names := make([]string, len(chosen))
		var dayCost float64
		for i, a := range chosen {
			names[i] = a.Name
			dayCost += a.CostINR
		}
		day.Activities = names
		day.EstimatedCostINR = dayCost
		totalActivityCost += dayCost

		if _, ok := transportCache[ck]; !ok {
			transportCache[ck] = deps.Catalog.DailyTransportCost(day.City)
		}
		totalTransportCost += transportCache[ck]

		if !seenRemote[ck] {
			seenRemote[ck] = true
			if spots := deps.Catalog.RemoteWorkSpots(day.City); len(spots) > 0 {
				remoteSpots = append(remoteSpots, travel.RemoteWorkSpot{
					City:            day.City,
					Recommendations: spots,
				})
			}
		}
	}

	st.Experiences = allExperiences
	st.CostBreakdown.ActivitiesEstimated = totalActivityCost
	st.CostBreakdown.TransportEstimated = totalTransportCost
	st.RemoteWorkSpots = remoteSpots

	totalActs := 0
	for _, d := range st.Itinerary {
		totalActs += len(d.Activities)
	}
	st.appendLog("experience_curator",
		"Curated %d activities across %d days. Activity cost: ₹%s.",
		totalActs, len(st.Itinerary), formatINR(totalActivityCost))
	return nil
}
