package pipeline

import (
	"context"

	"github.com/voyageai/voyageai/catalog"
	"github.com/voyageai/voyageai/logging"
	"github.com/voyageai/voyageai/memory"
)

// Lookup is the read-only reference data surface each stage plans
// against. *catalog.Catalog satisfies it; tests substitute fakes.
type Lookup interface {
	FlightOptions(origin, destination string) []catalog.FlightOption
	HotelOptions(destination string) []catalog.HotelOption
	Activities(destination string) []catalog.Activity
	WeatherProfile(destination string) catalog.WeatherProfile
	VisaInfo(destination, passportCountry string) catalog.VisaInfo
	CountryForCity(city string) string
	Distance(origin, destination string) float64
	DailyTransportCost(destination string) float64
	RemoteWorkSpots(destination string) []string
}

// Deps holds the collaborators stages draw on. Catalog is required;
// Memory and Embedder power the context-recall stage and may be nil,
// in which case that stage degrades to an empty context.
type Deps struct {
	Catalog  Lookup
	Memory   memory.VectorStore
	Embedder memory.Embedder
	Logger   logging.Logger
}

// Stage is one step of the planning chain. ID names it in logs and
// telemetry, Label is the user-facing progress text.
type Stage struct {
	ID    string
	Label string
	Run   func(ctx context.Context, deps *Deps, st *State) error
}

// Stages returns the full ordered chain. Order is load-bearing: every
// stage assumes its predecessors' State fields are populated.
func Stages() []Stage {
	return []Stage{
		{ID: "intent_extractor", Label: "Parsing your trip description...", Run: runIntentStage},
		{ID: "memory_context", Label: "Loading travel memory...", Run: runMemoryStage},
		{ID: "itinerary_planner", Label: "Optimizing route & itinerary...", Run: runPlannerStage},
		{ID: "flight_finder", Label: "Searching flight options...", Run: runFlightStage},
		{ID: "hotel_finder", Label: "Finding best accommodations...", Run: runHotelStage},
		{ID: "experience_curator", Label: "Curating activities & experiences...", Run: runExperienceStage},
		{ID: "budget_optimizer", Label: "Optimizing budget allocation...", Run: runBudgetStage},
		{ID: "carbon_estimator", Label: "Calculating carbon footprint...", Run: runCarbonStage},
		{ID: "risk_assessor", Label: "Analyzing risks & visa requirements...", Run: runRiskStage},
		{ID: "confidence_scorer", Label: "Scoring confidence levels...", Run: runConfidenceStage},
		{ID: "plan_validator", Label: "Validating final plan...", Run: runValidationStage},
	}
}
