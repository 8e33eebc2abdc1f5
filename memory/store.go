package memory

import (
	"context"
	"sort"
	"sync"
)

// Match is one scored result from a similarity query.
type Match struct {
	ID       string            `json:"id"`
	Score    float64           `json:"score"`
	Metadata map[string]string `json:"metadata"`
}

// VectorStore stores vectors with metadata and answers top-K similarity
// queries. Implementations must be safe for concurrent use.
type VectorStore interface {
	Upsert(ctx context.Context, key string, vector []float64, metadata map[string]string) error
	Query(ctx context.Context, vector []float64, topK int) ([]Match, error)
}

// InMemoryStore keeps vectors in a map guarded by an RWMutex. Similarity
// is the raw dot product, matching how stored trip patterns were scored
// historically.
type InMemoryStore struct {
	mu    sync.RWMutex
	items map[string]entry
}

type entry struct {
	vector   []float64
	metadata map[string]string
}

// NewInMemoryStore creates an empty store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{items: make(map[string]entry)}
}

// Upsert inserts or replaces a vector.
func (s *InMemoryStore) Upsert(ctx context.Context, key string, vector []float64, metadata map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vec := make([]float64, len(vector))
	copy(vec, vector)
	s.items[key] = entry{vector: vec, metadata: metadata}
	return nil
}

// Query returns the topK entries by descending dot-product score. Ties
// break by key so results are stable.
func (s *InMemoryStore) Query(ctx context.Context, vector []float64, topK int) ([]Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]Match, 0, len(s.items))
	for key, e := range s.items {
		matches = append(matches, Match{
			ID:       key,
			Score:    dot(e.vector, vector),
			Metadata: e.metadata,
		})
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].ID < matches[j].ID
	})
	if topK > 0 && len(matches) > topK {
		matches = matches[:topK]
	}
	return matches, nil
}

func dot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
