package pipeline

import (
	"context"
	"sort"
	"strings"

	"github.com/voyageai/voyageai/catalog"
	"github.com/voyageai/voyageai/travel"
)

// The hotel stage picks one stay per destination matching accommodation
// preferences and totals the nightly cost over each destination's share
// of the nights.
func runHotelStage(_ context.Context, deps *Deps, st *State) error {
	intent := st.Intent
	destinations := intent.Destinations
	if len(destinations) == 0 {
		destinations = []string{"Unknown"}
	}
	duration := intent.DurationDays

	prefs := make(map[string]bool, len(intent.AccommodationPreferences))
	for _, p := range intent.AccommodationPreferences {
		prefs[strings.ToLower(p)] = true
	}

	var allOptions []catalog.HotelOption
	var stays []travel.StayRecommendation
	var totalAccommodation float64

	nDest := len(destinations)
	baseNights := duration / nDest
	remainder := duration % nDest

	for idx, dest := range destinations {
		nights := baseNights
		if idx < remainder {
			nights++
		}
		hotels := deps.Catalog.HotelOptions(dest)
		allOptions = append(allOptions, hotels...)

		chosen := pickHotel(hotels, prefs)
		totalAccommodation += chosen.NightlyRateINR * float64(nights)

		stays = append(stays, travel.StayRecommendation{
			City:              dest,
			StayType:          chosen.Type,
			BudgetPerNightINR: chosen.NightlyRateINR,
		})
	}

	st.HotelOptions = allOptions
	st.StayRecommendations = stays
	st.CostBreakdown.AccommodationEstimated = totalAccommodation

	st.appendLog("hotel_finder",
		"Selected stays for %d destination(s). Total accommodation: ₹%s.",
		nDest, formatINR(totalAccommodation))
	return nil
}

// pickHotel maps preferences to a rate tier: luxury takes the priciest,
// hostel/budget the cheapest, and everything else the median by rate.
func pickHotel(hotels []catalog.HotelOption, prefs map[string]bool) catalog.HotelOption {
	if len(hotels) == 0 {
		return catalog.HotelOption{Type: "hotel"}
	}
	if prefs["luxury hotel"] || prefs["5-star hotel"] {
		best := hotels[0]
		for _, h := range hotels[1:] {
			if h.NightlyRateINR > best.NightlyRateINR {
				best = h
			}
		}
		return best
	}
	if prefs["hostel"] || prefs["budget hotel"] {
		best := hotels[0]
		for _, h := range hotels[1:] {
			if h.NightlyRateINR < best.NightlyRateINR {
				best = h
			}
		}
		return best
	}
	byRate := make([]catalog.HotelOption, len(hotels))
	copy(byRate, hotels)
	sort.SliceStable(byRate, func(i, j int) bool {
		return byRate[i].NightlyRateINR < byRate[j].NightlyRateINR
	})
	return byRate[len(byRate)/2]
}
