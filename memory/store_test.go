package memory

import (
	"context"
	"reflect"
	"testing"
)

func TestDeterministicEmbedder(t *testing.T) {
	e := DeterministicEmbedder{}
	a := e.Embed("goa beach trip relaxation")
	b := e.Embed("goa beach trip relaxation")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same text embedded differently:\n%v\n%v", a, b)
	}
	if len(a) != Dimensions {
		t.Fatalf("vector width = %d, want %d", len(a), Dimensions)
	}
	if reflect.DeepEqual(a, e.Embed("tokyo winter trip")) {
		t.Errorf("distinct texts produced identical vectors")
	}
}

func TestDeterministicEmbedderTruncates(t *testing.T) {
	e := DeterministicEmbedder{}
	long := make([]rune, 200)
	for i := range long {
		long[i] = 'x'
	}
	a := e.Embed(string(long[:64]))
	b := e.Embed(string(long))
	if !reflect.DeepEqual(a, b) {
		t.Errorf("text beyond 64 runes influenced the embedding")
	}
}

func TestInMemoryStoreQueryOrdering(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	s.Upsert(ctx, "far", []float64{0, 1}, map[string]string{"summary": "far"})
	s.Upsert(ctx, "near", []float64{1, 0}, map[string]string{"summary": "near"})
	s.Upsert(ctx, "mid", []float64{0.5, 0.5}, map[string]string{"summary": "mid"})

	matches, err := s.Query(ctx, []float64{1, 0}, 0)
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(matches) != 3 {
		t.Fatalf("matches = %d, want all 3", len(matches))
	}
	for i, want := range []string{"near", "mid", "far"} {
		if matches[i].ID != want {
			t.Errorf("match %d = %q, want %q", i, matches[i].ID, want)
		}
	}
	if matches[0].Metadata["summary"] != "near" {
		t.Errorf("metadata lost: %+v", matches[0])
	}
}

func TestInMemoryStoreQueryTiesBreakByID(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()

	s.Upsert(ctx, "b", []float64{1, 0}, nil)
	s.Upsert(ctx, "a", []float64{1, 0}, nil)

	matches, _ := s.Query(ctx, []float64{1, 0}, 0)
	if matches[0].ID != "a" || matches[1].ID != "b" {
		t.Errorf("tie order = %q, %q", matches[0].ID, matches[1].ID)
	}
}

func TestInMemoryStoreTopK(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	s.Upsert(ctx, "a", []float64{3}, nil)
	s.Upsert(ctx, "b", []float64{2}, nil)
	s.Upsert(ctx, "c", []float64{1}, nil)

	matches, _ := s.Query(ctx, []float64{1}, 2)
	if len(matches) != 2 || matches[0].ID != "a" || matches[1].ID != "b" {
		t.Errorf("topK = %+v", matches)
	}
}

func TestInMemoryStoreUpsertReplaces(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	s.Upsert(ctx, "k", []float64{1}, map[string]string{"summary": "old"})
	s.Upsert(ctx, "k", []float64{1}, map[string]string{"summary": "new"})

	matches, _ := s.Query(ctx, []float64{1}, 1)
	if len(matches) != 1 || matches[0].Metadata["summary"] != "new" {
		t.Errorf("replaced entry = %+v", matches)
	}
}

func TestInMemoryStoreUpsertCopiesVector(t *testing.T) {
	ctx := context.Background()
	s := NewInMemoryStore()
	vec := []float64{1, 0}
	s.Upsert(ctx, "k", vec, nil)
	vec[0] = -100

	matches, _ := s.Query(ctx, []float64{1, 0}, 1)
	if matches[0].Score != 1 {
		t.Errorf("stored vector aliased caller's slice, score = %v", matches[0].Score)
	}
}
