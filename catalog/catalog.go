// Package catalog provides the deterministic lookup collaborators the
// planning pipeline depends on: flight/hotel/activity catalogs, weather
// profiles, visa tables, distances, currency rates, local transport costs
// and remote-work spots. Every function is a pure lookup keyed by
// lower-cased city name, so the pipeline works end-to-end without any
// external API. Swap individual methods for real HTTP integrations
// (Amadeus, Booking, Mapbox, ...) when ready.
package catalog

import (
	"crypto/md5"
	"encoding/binary"
	"strings"
)

// Catalog is the concrete provider backed by the curated tables in this
// package. The zero value is ready to use.
type Catalog struct{}

// New returns a Catalog.
func New() *Catalog { return &Catalog{} }

// cityKey canonicalizes a city name for table lookups.
func cityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

// cityHash returns a stable numeric hash for a city name, used for
// deterministic variance in generated option prices.
func cityHash(city string) uint32 {
	sum := md5.Sum([]byte(strings.ToLower(city)))
	return binary.BigEndian.Uint32(sum[:4])
}

// titleCase upper-cases the first letter of each space-separated word,
// matching how city names appear in the curated tables.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
