package pipeline

import (
	"context"
	"fmt"
	"math"

	"github.com/voyageai/voyageai/catalog"
	"github.com/voyageai/voyageai/logging"
	"github.com/voyageai/voyageai/memory"
	"github.com/voyageai/voyageai/telemetry"
)

// ProgressEvent reports that a stage finished. Progress is a percentage
// capped at 99; callers emit their own terminal event once the full
// result is ready.
type ProgressEvent struct {
	Stage      string
	Label      string
	Progress   int
	Step       int
	TotalSteps int
}

// Executor runs the stage chain over a fresh State per request.
type Executor struct {
	deps   Deps
	stages []Stage
}

// NewExecutor builds an executor, filling in defaults for any
// collaborator left nil in deps.
func NewExecutor(deps Deps) *Executor {
	if deps.Catalog == nil {
		deps.Catalog = catalog.New()
	}
	if deps.Logger == nil {
		deps.Logger = &logging.NoOpLogger{}
	}
	if deps.Memory == nil {
		deps.Memory = memory.NewInMemoryStore()
	}
	if deps.Embedder == nil {
		deps.Embedder = memory.DeterministicEmbedder{}
	}
	return &Executor{deps: deps, stages: Stages()}
}

// Run executes every stage in order against prompt. The first stage
// error aborts the run; the partially-populated State is returned
// alongside the error for diagnostics.
func (e *Executor) Run(ctx context.Context, prompt string) (*State, error) {
	return e.RunWithProgress(ctx, prompt, nil)
}

// RunWithProgress is Run with a per-stage progress callback. onProgress
// may be nil. The callback fires after each stage completes, with
// progress capped at 99 so the caller owns the 100% terminal event.
func (e *Executor) RunWithProgress(ctx context.Context, prompt string, onProgress func(ProgressEvent)) (*State, error) {
	st := NewState(prompt)
	total := len(e.stages)
	for i, stage := range e.stages {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		if err := e.runStage(ctx, stage, st); err != nil {
			e.deps.Logger.Error("Stage failed", map[string]interface{}{
				"stage": stage.ID,
				"error": err.Error(),
			})
			return st, fmt.Errorf("stage %s: %w", stage.ID, err)
		}
		if onProgress != nil {
			pct := int(math.Round(float64(i+1) / float64(total) * 100))
			if pct > 99 {
				pct = 99
			}
			onProgress(ProgressEvent{
				Stage:      stage.ID,
				Label:      stage.Label,
				Progress:   pct,
				Step:       i + 1,
				TotalSteps: total,
			})
		}
	}
	return st, nil
}

func (e *Executor) runStage(ctx context.Context, stage Stage, st *State) error {
	ctx, span := telemetry.StartStageSpan(ctx, stage.ID)
	defer span.End()
	e.deps.Logger.Debug("Running stage", map[string]interface{}{"stage": stage.ID})
	return stage.Run(ctx, &e.deps, st)
}
