package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/voyageai/voyageai/logging"
	"github.com/voyageai/voyageai/memory"
)

func TestMemoryStageRecallsSimilarTrips(t *testing.T) {
	ctx := context.Background()
	store := memory.NewInMemoryStore()
	embedder := memory.DeterministicEmbedder{}

	prior := "Tokyo Kyoto food culture"
	store.Upsert(ctx, "trip-delhi-Tokyo Kyoto", embedder.Embed(prior),
		map[string]string{"summary": "Trip pattern: delhi → Tokyo Kyoto"})

	deps := &Deps{Memory: store, Embedder: embedder, Logger: &logging.NoOpLogger{}}
	st := NewState("")
	st.Intent.Destinations = []string{"Tokyo", "Kyoto"}
	st.Intent.Interests = []string{"food"}
	st.Intent.OriginCity = "Delhi"

	if err := runMemoryStage(ctx, deps, st); err != nil {
		t.Fatalf("memory stage: %v", err)
	}
	if !strings.Contains(st.MemoryContext, "Tokyo Kyoto") {
		t.Errorf("memory context = %q, want the prior trip recalled", st.MemoryContext)
	}

	// The stage also records this trip's pattern.
	matches, err := store.Query(ctx, embedder.Embed("Tokyo Kyoto food "), 5)
	if err != nil {
		t.Fatal(err)
	}
	var recorded bool
	for _, m := range matches {
		if m.ID == "trip-Delhi-Tokyo Kyoto" {
			recorded = true
		}
	}
	if !recorded {
		t.Errorf("trip pattern not upserted, matches = %+v", matches)
	}
}

func TestMemoryStageNilStoreDegrades(t *testing.T) {
	st := NewState("")
	if err := runMemoryStage(context.Background(), &Deps{}, st); err != nil {
		t.Fatalf("memory stage: %v", err)
	}
	if st.MemoryContext != "" {
		t.Errorf("memory context = %q", st.MemoryContext)
	}
	if len(st.Logs) != 1 || !strings.Contains(st.Logs[0], "unavailable") {
		t.Errorf("logs = %v", st.Logs)
	}
}
