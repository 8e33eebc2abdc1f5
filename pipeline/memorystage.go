package pipeline

import (
	"context"
	"fmt"
	"strings"
)

// The memory stage recalls similar past trips from the vector store and
// records the current trip pattern. It is strictly best-effort: store
// failures leave MemoryContext empty and never fail the run.
func runMemoryStage(ctx context.Context, deps *Deps, st *State) error {
	if deps.Memory == nil || deps.Embedder == nil {
		st.MemoryContext = ""
		st.appendLog("memory_context", "Memory store unavailable; continuing without context.")
		return nil
	}

	intent := st.Intent
	destinations := strings.Join(intent.Destinations, " ")
	query := fmt.Sprintf("%s %s %s",
		destinations,
		strings.Join(intent.Interests, " "),
		strings.Join(intent.TripType, " "))

	vector := deps.Embedder.Embed(query)
	similar, err := deps.Memory.Query(ctx, vector, 2)
	if err != nil {
		deps.Logger.Warn("Memory query failed", map[string]interface{}{"error": err.Error()})
		st.MemoryContext = ""
		st.appendLog("memory_context", "Memory lookup failed; continuing without context.")
		return nil
	}

	parts := make([]string, 0, len(similar))
	for _, m := range similar {
		parts = append(parts, m.Metadata["summary"])
	}
	st.MemoryContext = strings.Join(parts, " | ")

	origin := intent.OriginCity
	if origin == "" {
		origin = "unknown"
	}
	err = deps.Memory.Upsert(ctx,
		fmt.Sprintf("trip-%s-%s", origin, destinations),
		vector,
		map[string]string{"summary": fmt.Sprintf("Trip pattern: %s → %s", origin, destinations)})
	if err != nil {
		deps.Logger.Warn("Memory upsert failed", map[string]interface{}{"error": err.Error()})
	}

	st.appendLog("memory_context", "Memory context loaded and refreshed.")
	return nil
}
