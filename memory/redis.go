package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"
)

// RedisStore persists vectors in a single Redis hash so trip patterns
// survive restarts. Queries fetch the whole hash and score client-side,
// which is fine at the store's scale (one small entry per distinct
// route). All keys live under the configured namespace to avoid
// collisions with the response cache.
type RedisStore struct {
	client    *redis.Client
	namespace string
}

type redisEntry struct {
	Vector   []float64         `json:"vector"`
	Metadata map[string]string `json:"metadata"`
}

// NewRedisStore connects to redisURL and verifies the connection.
func NewRedisStore(ctx context.Context, redisURL, namespace string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	if namespace == "" {
		namespace = "voyageai:memory"
	}
	return &RedisStore{client: client, namespace: namespace}, nil
}

// Upsert stores the vector and metadata under the namespace hash.
func (s *RedisStore) Upsert(ctx context.Context, key string, vector []float64, metadata map[string]string) error {
	data, err := json.Marshal(redisEntry{Vector: vector, Metadata: metadata})
	if err != nil {
		return fmt.Errorf("encoding memory entry: %w", err)
	}
	if err := s.client.HSet(ctx, s.namespace, key, data).Err(); err != nil {
		return fmt.Errorf("storing memory entry: %w", err)
	}
	return nil
}

// Query scores every stored entry against the vector and returns the
// topK by descending dot product.
func (s *RedisStore) Query(ctx context.Context, vector []float64, topK int) ([]Match, error) {
	raw, err := s.client.HGetAll(ctx, s.namespace).Result()
	if err != nil {
		return nil, fmt.Errorf("reading memory entries: %w", err)
	}

	matches := make([]Match, 0, len(raw))
	for key, blob := range raw {
		var e redisEntry
		if err := json.Unmarshal([]byte(blob), &e); err != nil {
			continue // skip corrupt entries
		}
		matches = append(matches, Match{
			ID:       key,
			Score:    dot(e.Vector, vector),
			Metadata: e.Metadata,
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

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
