package pipeline

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/voyageai/voyageai/catalog"
	"github.com/voyageai/voyageai/travel"
)

// The risk stage builds per-destination weather insights, rewrites each
// day's weather note, consolidates visa requirements per country, and
// blends five normalized factors into one composite 0-10 risk score.
//
// Factor weights: weather/storm 30%, budget exposure 25%, visa
// complexity 20%, rain disruption 15%, temperature extremes 10%.

func runRiskStage(_ context.Context, deps *Deps, st *State) error {
	intent := st.Intent
	destinations := intent.Destinations
	if len(destinations) == 0 {
		destinations = []string{"Unknown"}
	}

	var maxStorm, maxRain, maxTempExtreme float64
	var insights []travel.WeatherInsight

	for _, dest := range destinations {
		w := deps.Catalog.WeatherProfile(dest)
		st.WeatherData[dest] = w

		maxStorm = math.Max(maxStorm, w.StormProbability)
		maxRain = math.Max(maxRain, w.RainChance)
		// Distance from the 18-28°C comfort band, normalized.
		if w.AvgTempC > 28 {
			maxTempExtreme = math.Max(maxTempExtreme, (w.AvgTempC-28)/20)
		} else if w.AvgTempC < 18 {
			maxTempExtreme = math.Max(maxTempExtreme, (18-w.AvgTempC)/20)
		}

		insights = append(insights, travel.WeatherInsight{
			City:           dest,
			AvgTempC:       w.AvgTempC,
			RainChance:     w.RainChance,
			Advisory:       w.AdvisoryLevel,
			BestMonths:     w.BestMonths,
			Recommendation: monthRecommendation(dest, intent.TravelMonth, w),
		})
	}

	st.WeatherInsights = insights

	byCity := make(map[string]travel.WeatherInsight, len(insights))
	for _, wi := range insights {
		byCity[strings.ToLower(wi.City)] = wi
	}
	for i := range st.Itinerary {
		if wi, ok := byCity[strings.ToLower(st.Itinerary[i].City)]; ok {
			st.Itinerary[i].WeatherNote = weatherNote(wi)
		}
	}

	// One visa entry per country across all destinations. An explicit
	// passport-relevant country in the intent overrides city lookup.
	visaRequired := false
	visaCount := 0
	var visaDetails []string
	seenCountries := make(map[string]bool)

	for _, dest := range destinations {
		country := intent.Country
		if country == "" {
			country = deps.Catalog.CountryForCity(dest)
		}
		if country == "" || seenCountries[strings.ToLower(country)] {
			continue
		}
		seenCountries[strings.ToLower(country)] = true
		info := deps.Catalog.VisaInfo(dest, country)
		if info.Required {
			visaRequired = true
			visaCount++
		}
		visaDetails = append(visaDetails, fmt.Sprintf("%s: %s", country, info.Details))
	}

	details := "No visa information available."
	if len(visaDetails) > 0 {
		details = strings.Join(visaDetails, " | ")
	}
	st.VisaInformation = travel.VisaInformation{Required: visaRequired, Details: details}

	// Storm probability of 0.20 already maxes this factor out.
	weatherRisk := math.Min(maxStorm*50, 10.0)

	budgetMax := intent.BudgetCeiling()
	var budgetRisk float64
	if budgetMax > 0 {
		ratio := st.TotalCost / budgetMax
		switch {
		case ratio <= 0.8:
			budgetRisk = 1.0
		case ratio <= 1.0:
			budgetRisk = 1.0 + (ratio-0.8)*20
		case ratio <= 1.3:
			budgetRisk = 5.0 + (ratio-1.0)*16.7
		default:
			budgetRisk = 10.0
		}
	} else {
		budgetRisk = 3.0 // unknown budget
	}

	visaRisk := math.Min(float64(visaCount)*3.3, 10.0)
	rainRisk := math.Min(maxRain*15, 10.0)
	tempRisk := math.Min(maxTempExtreme*10, 10.0)

	composite := weatherRisk*0.30 + budgetRisk*0.25 + visaRisk*0.20 + rainRisk*0.15 + tempRisk*0.10
	st.RiskScore = round1(math.Min(composite, 10.0))

	st.appendLog("risk_assessor",
		"Risk score: %.1f/10 (weather=%.1f, budget=%.1f, visa=%.1f, rain=%.1f, temp=%.1f). Visa required: %t. %d weather insight(s).",
		st.RiskScore, weatherRisk, budgetRisk, visaRisk, rainRisk, tempRisk, visaRequired, len(insights))
	return nil
}

func monthRecommendation(dest, travelMonth string, w catalog.WeatherProfile) string {
	best := w.BestMonths
	switch {
	case travelMonth != "" && len(best) > 0:
		for _, m := range best {
			if m == travelMonth {
				return fmt.Sprintf("Great choice! %s is one of the best months to visit %s.", travelMonth, dest)
			}
		}
		alt := strings.Join(firstN(best, 2), " or ")
		conditions := "less ideal conditions"
		if w.RainChance > 0.35 {
			conditions = "heavy rain"
		}
		return fmt.Sprintf("Consider visiting in %s for better weather. %s may have %s.", alt, travelMonth, conditions)
	case len(best) > 0:
		return fmt.Sprintf("Best months to visit: %s.", strings.Join(firstN(best, 3), ", "))
	}
	return "Weather data limited — check local forecasts closer to travel."
}

// weatherNote picks the highest-priority condition for a day: rain
// first, then heat, then cold, else pleasant.
func weatherNote(wi travel.WeatherInsight) string {
	switch {
	case wi.RainChance > 0.5:
		return fmt.Sprintf("🌧️ Very likely rain (%.0f%%) — plan indoor activities", wi.RainChance*100)
	case wi.RainChance > 0.35:
		return fmt.Sprintf("🌦️ Possible rain (%.0f%%) — carry umbrella", wi.RainChance*100)
	case wi.AvgTempC > 38:
		return fmt.Sprintf("🔥 Extreme heat (%g°C) — stay hydrated, avoid midday sun", wi.AvgTempC)
	case wi.AvgTempC > 33:
		return fmt.Sprintf("🌡️ Hot (%g°C) — plan indoor activities midday", wi.AvgTempC)
	case wi.AvgTempC < 5:
		return fmt.Sprintf("❄️ Very cold (%g°C) — pack heavy layers", wi.AvgTempC)
	case wi.AvgTempC < 15:
		return fmt.Sprintf("🧥 Cool (%g°C) — bring a jacket", wi.AvgTempC)
	}
	return fmt.Sprintf("☀️ Pleasant (%g°C) — ideal for outdoor activities", wi.AvgTempC)
}

func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
