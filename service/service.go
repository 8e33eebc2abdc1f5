// Package service orchestrates the planning pipeline behind the API:
// response caching, progress streaming, and mapping run state to the
// wire schema.
package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/voyageai/voyageai/cache"
	"github.com/voyageai/voyageai/logging"
	"github.com/voyageai/voyageai/pipeline"
)

// Event is one streamed planning event. Type is "progress", "result"
// or "error"; the other fields are populated per type.
type Event struct {
	Type       string          `json:"type"`
	Agent      string          `json:"agent,omitempty"`
	Label      string          `json:"label,omitempty"`
	Progress   int             `json:"progress,omitempty"`
	Step       int             `json:"step,omitempty"`
	TotalSteps int             `json:"total_steps,omitempty"`
	Data       json.RawMessage `json:"data,omitempty"`
	Message    string          `json:"message,omitempty"`
}

// TravelService runs plan requests through the pipeline with a
// response cache in front keyed on the prompt hash.
type TravelService struct {
	executor *pipeline.Executor
	cache    cache.Cache
	cacheTTL time.Duration
	logger   logging.Logger
}

// New builds a TravelService. logger may be nil.
func New(executor *pipeline.Executor, c cache.Cache, cacheTTL time.Duration, logger logging.Logger) *TravelService {
	if logger == nil {
		logger = &logging.NoOpLogger{}
	}
	return &TravelService{
		executor: executor,
		cache:    c,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// Plan produces a full plan response for prompt, served from cache when
// an identical prompt was planned recently. The cached payload is the
// serialized response, so repeat requests skip the pipeline entirely.
func (s *TravelService) Plan(ctx context.Context, prompt string) (json.RawMessage, error) {
	key := cache.Key(prompt)
	if cached, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		return cached, nil
	} else if err != nil {
		s.logger.Warn("Cache get failed", map[string]interface{}{"error": err.Error()})
	}

	start := time.Now()
	st, err := s.executor.Run(ctx, prompt)
	if err != nil {
		return nil, err
	}

	resp := pipeline.BuildResponse(st)
	resp.ProcessingTimeMs = elapsedMs(start)

	payload, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
		s.logger.Warn("Cache set failed", map[string]interface{}{"error": err.Error()})
	}
	return payload, nil
}

// PlanStream runs the pipeline and emits one progress event per
// completed stage, a terminal 100% event, then the result. On a cache
// hit it emits a synthetic full progress burst before the cached
// result so stream consumers see a consistent shape. Pipeline failures
// surface as an error event, not an error return.
func (s *TravelService) PlanStream(ctx context.Context, prompt string, emit func(Event) error) error {
	key := cache.Key(prompt)
	stages := pipeline.Stages()
	total := len(stages)

	if cached, ok, err := s.cache.Get(ctx, key); err == nil && ok {
		for i, stage := range stages {
			ev := Event{
				Type:       "progress",
				Agent:      stage.ID,
				Label:      stage.Label,
				Progress:   int(math.Round(float64(i+1) / float64(total) * 100)),
				Step:       i + 1,
				TotalSteps: total,
			}
			if err := emit(ev); err != nil {
				return err
			}
		}
		return emit(Event{Type: "result", Data: cached})
	} else if err != nil {
		s.logger.Warn("Cache get failed", map[string]interface{}{"error": err.Error()})
	}

	start := time.Now()
	var emitErr error
	st, runErr := s.executor.RunWithProgress(ctx, prompt, func(p pipeline.ProgressEvent) {
		if emitErr != nil {
			return
		}
		emitErr = emit(Event{
			Type:       "progress",
			Agent:      p.Stage,
			Label:      p.Label,
			Progress:   p.Progress,
			Step:       p.Step,
			TotalSteps: p.TotalSteps,
		})
	})
	if emitErr != nil {
		return emitErr
	}
	if runErr != nil {
		return emit(Event{Type: "error", Message: runErr.Error()})
	}

	resp := pipeline.BuildResponse(st)
	resp.ProcessingTimeMs = elapsedMs(start)

	payload, err := json.Marshal(resp)
	if err != nil {
		return emit(Event{Type: "error", Message: err.Error()})
	}

	if err := emit(Event{
		Type:       "progress",
		Agent:      "done",
		Label:      "Plan complete!",
		Progress:   100,
		Step:       total,
		TotalSteps: total,
	}); err != nil {
		return err
	}
	if err := emit(Event{Type: "result", Data: payload}); err != nil {
		return err
	}

	if err := s.cache.Set(ctx, key, payload, s.cacheTTL); err != nil {
		s.logger.Warn("Cache set failed", map[string]interface{}{"error": err.Error()})
	}
	return nil
}

func elapsedMs(start time.Time) float64 {
	return math.Round(float64(time.Since(start).Microseconds())/1000*10) / 10
}
