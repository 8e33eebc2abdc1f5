// Package pipeline implements the multi-stage travel planning engine: a
// fixed, ordered chain of stages that transform one shared State from a
// raw prompt into a fully-costed, risk-scored plan. Stages run strictly
// sequentially; each reads fields written by its predecessors and writes
// its own. The stage order is data (see Stages), not control flow.
package pipeline

import (
	"fmt"

	"github.com/voyageai/voyageai/catalog"
	"github.com/voyageai/voyageai/travel"
)

// State is the single mutable record threaded through all stages for one
// plan request. Exactly one stage reads and writes it at any instant, so
// no locking is needed. Field ownership:
//
//	intent stage      writes Intent
//	memory stage      writes MemoryContext
//	planner stage     writes Itinerary (skeleton), TransportPlan,
//	                  RouteStrategy, Summary
//	flight stage      writes FlightOptions, CostBreakdown.Flights
//	hotel stage       writes HotelOptions, StayRecommendations,
//	                  CostBreakdown.Accommodation
//	experience stage  writes Itinerary activities/costs, Experiences,
//	                  RemoteWorkSpots, CostBreakdown.Activities/.Transport
//	budget stage      rewrites CostBreakdown, per-day costs, nightly
//	                  budgets; writes TotalCost, OptimizationScore/Summary
//	carbon stage      writes CarbonFootprint
//	risk stage        writes WeatherInsights, day weather notes,
//	                  VisaInformation, RiskScore
//	confidence stage  writes Confidence
//	validation stage  writes ValidationErrors, repairs invariants
type State struct {
	RawPrompt string
	Intent    travel.UserIntent

	FlightOptions []catalog.FlightOption
	HotelOptions  []catalog.HotelOption
	Experiences   []catalog.Activity
	WeatherData   map[string]catalog.WeatherProfile

	Itinerary           []travel.DayItinerary
	TransportPlan       travel.TransportPlan
	StayRecommendations []travel.StayRecommendation
	VisaInformation     travel.VisaInformation
	CostBreakdown       travel.CostBreakdown
	RemoteWorkSpots     []travel.RemoteWorkSpot
	Summary             string
	RouteStrategy       string

	CarbonFootprint travel.CarbonFootprint
	Confidence      travel.ConfidenceScores
	WeatherInsights []travel.WeatherInsight

	TotalCost           float64
	RiskScore           float64
	OptimizationScore   float64
	OptimizationSummary string

	Logs             []string
	MemoryContext    string
	ValidationErrors []string
}

// NewState returns a State initialized for one run of the pipeline.
func NewState(prompt string) *State {
	return &State{
		RawPrompt:        prompt,
		Intent:           travel.UserIntent{DurationDays: 5, TravelerCount: 1},
		WeatherData:      make(map[string]catalog.WeatherProfile),
		Logs:             []string{},
		ValidationErrors: []string{},
	}
}

// appendLog records one human-readable line for a stage in the run's
// ordered log list.
func (s *State) appendLog(stageID, format string, args ...interface{}) {
	s.Logs = append(s.Logs, fmt.Sprintf("[%s] ", stageID)+fmt.Sprintf(format, args...))
}
