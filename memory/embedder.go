// Package memory implements the similarity memory store used to enrich a
// plan with context from prior runs. Vectors come from a deterministic
// embedder so the store works without any embedding API; replace the
// embedder to plug in a real model.
package memory

// Dimensions is the fixed embedding width.
const Dimensions = 8

// Embedder turns text into a fixed-width vector.
type Embedder interface {
	Embed(text string) []float64
}

// DeterministicEmbedder folds the first 64 characters of the input into
// an 8-dim vector. Identical text always yields identical vectors.
type DeterministicEmbedder struct{}

// Embed implements Embedder.
func (DeterministicEmbedder) Embed(text string) []float64 {
	vec := make([]float64, Dimensions)
	runes := []rune(text)
	if len(runes) > 64 {
		runes = runes[:64]
	}
	for i, r := range runes {
		vec[i%Dimensions] += float64(int(r)%97) / 100
	}
	return vec
}
