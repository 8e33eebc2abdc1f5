// Package travel defines the data model shared by the planning pipeline
// and the HTTP API. All money amounts are in INR; field names on the wire
// keep the `_inr` suffix so downstream consumers can tell at a glance.
package travel

import "math"

// BudgetRange is an optional {min,max} budget band extracted from the
// prompt. Zero means unset.
type BudgetRange struct {
	Min float64 `json:"min,omitempty"`
	Max float64 `json:"max,omitempty"`
}

// UserIntent holds the structured fields extracted from a natural-language
// trip description. It is written once by the intent stage and read-only
// for every stage after it.
type UserIntent struct {
	OriginCity               string      `json:"origin_city,omitempty"`
	Destinations             []string    `json:"destinations"`
	Country                  string      `json:"country,omitempty"`
	DurationDays             int         `json:"duration_days"`
	TravelMonth              string      `json:"travel_month,omitempty"`
	TravelYear               int         `json:"travel_year,omitempty"`
	BudgetTotalINR           float64     `json:"budget_total_inr,omitempty"`
	BudgetRangeINR           BudgetRange `json:"budget_range_inr"`
	TripType                 []string    `json:"trip_type"`
	TravelerCount            int         `json:"traveler_count"`
	AccommodationPreferences []string    `json:"accommodation_preferences"`
	Interests                []string    `json:"interests"`
	TransportPreferences     []string    `json:"transport_preferences"`
	SpecialRequirements      []string    `json:"special_requirements"`
}

// BudgetCeiling returns the effective budget ceiling: range max if set,
// else the flat total, else zero (no ceiling).
func (u UserIntent) BudgetCeiling() float64 {
	if u.BudgetRangeINR.Max > 0 {
		return u.BudgetRangeINR.Max
	}
	return u.BudgetTotalINR
}

// DayItinerary is one day of the plan. Day numbers are 1-based and must
// stay contiguous and unique; the validation stage repairs violations.
type DayItinerary struct {
	Day              int      `json:"day"`
	City             string   `json:"city"`
	Activities       []string `json:"activities"`
	EstimatedCostINR float64  `json:"estimated_cost_inr"`
	WeatherNote      string   `json:"weather_note"`
}

// TransportPlan holds the ordered route (origin -> destinations -> origin)
// and recommended transit passes. Written once by the planner stage.
type TransportPlan struct {
	RecommendedPasses []string `json:"recommended_passes"`
	RouteOrder        []string `json:"route_order"`
}

// StayRecommendation is the chosen accommodation for one destination.
// The nightly budget is recomputed when the budget stage shrinks the
// accommodation bucket.
type StayRecommendation struct {
	City              string  `json:"city"`
	StayType          string  `json:"stay_type"`
	BudgetPerNightINR float64 `json:"budget_per_night_inr"`
}

// VisaInformation is the consolidated visa requirement across all
// destination countries.
type VisaInformation struct {
	Required bool   `json:"required"`
	Details  string `json:"details"`
}

// CostBreakdown carries the four category subtotals plus a cached total.
// Invariant: Total == flights + accommodation + activities + transport
// within one unit; the validation stage recomputes on mismatch.
type CostBreakdown struct {
	FlightsEstimated       float64 `json:"flights_estimated"`
	AccommodationEstimated float64 `json:"accommodation_estimated"`
	ActivitiesEstimated    float64 `json:"activities_estimated"`
	TransportEstimated     float64 `json:"transport_estimated"`
	TotalEstimated         float64 `json:"total_estimated"`
}

// Sum recomputes the category total rounded to two decimals.
func (cb CostBreakdown) Sum() float64 {
	return round2(cb.FlightsEstimated + cb.AccommodationEstimated +
		cb.ActivitiesEstimated + cb.TransportEstimated)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RemoteWorkSpot lists remote-work friendly places for one city.
type RemoteWorkSpot struct {
	City            string   `json:"city"`
	Recommendations []string `json:"recommendations"`
}

// CarbonLeg is the CO2 estimate for a single travel leg.
type CarbonLeg struct {
	Leg        string  `json:"leg"`
	Mode       string  `json:"mode"`
	DistanceKm float64 `json:"distance_km"`
	CO2Kg      float64 `json:"co2_kg"`
}

// CarbonFootprint is the total trip footprint with a per-leg breakdown,
// qualitative rating, offset cost estimate and reduction tips. Computed
// once by the carbon stage and read-only afterward.
type CarbonFootprint struct {
	TotalCO2Kg    float64     `json:"total_co2_kg"`
	Rating        string      `json:"rating"`
	OffsetCostINR float64     `json:"offset_cost_inr"`
	Legs          []CarbonLeg `json:"legs"`
	Tips          []string    `json:"tips"`
}

// ConfidenceScores holds per-dimension reliability scores in [0,1] plus a
// weighted overall.
type ConfidenceScores struct {
	Overall            float64 `json:"overall"`
	IntentParsing      float64 `json:"intent_parsing"`
	RoutePlanning      float64 `json:"route_planning"`
	FlightData         float64 `json:"flight_data"`
	HotelData          float64 `json:"hotel_data"`
	ActivityData       float64 `json:"activity_data"`
	BudgetOptimization float64 `json:"budget_optimization"`
	RiskAssessment     float64 `json:"risk_assessment"`
}

// WeatherInsight is the per-destination weather summary with a
// month-aware recommendation.
type WeatherInsight struct {
	City           string   `json:"city"`
	AvgTempC       float64  `json:"avg_temp_c"`
	RainChance     float64  `json:"rain_chance"`
	Advisory       string   `json:"advisory"`
	BestMonths     []string `json:"best_months"`
	Recommendation string   `json:"recommendation"`
}

// TravelPlan is the full itinerary artifact assembled by the pipeline.
type TravelPlan struct {
	Summary             string               `json:"summary"`
	RouteStrategy       string               `json:"route_strategy"`
	DayByDayItinerary   []DayItinerary       `json:"day_by_day_itinerary"`
	TransportPlan       TransportPlan        `json:"transport_plan"`
	StayRecommendations []StayRecommendation `json:"stay_recommendations"`
	VisaInformation     VisaInformation      `json:"visa_information"`
	CostBreakdown       CostBreakdown        `json:"cost_breakdown"`
	RemoteWorkSpots     []RemoteWorkSpot     `json:"remote_work_friendly_spots"`
	OptimizationScore   float64              `json:"optimization_score"`
	CarbonFootprint     CarbonFootprint      `json:"carbon_footprint"`
	WeatherInsights     []WeatherInsight     `json:"weather_insights"`
}

// PlanResponse is the API response for one plan request. ValidationErrors
// are warnings: a successful run may carry a non-empty list.
type PlanResponse struct {
	Intent              UserIntent       `json:"intent"`
	Plan                TravelPlan       `json:"plan"`
	RiskScore           float64          `json:"risk_score"`
	Confidence          ConfidenceScores `json:"confidence"`
	OptimizationSummary string           `json:"optimization_summary"`
	AgentLogs           []string         `json:"agent_logs"`
	ValidationErrors    []string         `json:"validation_errors"`
	ProcessingTimeMs    float64          `json:"processing_time_ms"`
}
