package cache

import (
	"context"
	"encoding/json"
	"time"

	"rostering/pkg/domain"
)

// MatchCache is a specialized cache for match results.
type MatchCache struct {
	cache      Cache
	defaultTTL time.Duration
}

// CachedMatchResult is a cached matching outcome.
type CachedMatchResult struct {
	Summary           *domain.MatchSummary `json:"summary"`
	Iterations        int                  `json:"iterations"`
	ComputationTimeMs float64              `json:"computation_time_ms"`
	ComputedAt        time.Time            `json:"computed_at"`
}

// NewMatchCache creates a cache for match results.
func NewMatchCache(cache Cache, defaultTTL time.Duration) *MatchCache {
	if defaultTTL <= 0 {
		defaultTTL = 10 * time.Minute
	}
	return &MatchCache{
		cache:      cache,
		defaultTTL: defaultTTL,
	}
}

// Get retrieves a cached match result for the given inputs.
func (mc *MatchCache) Get(ctx context.Context, roster *domain.Roster, customers []string) (*CachedMatchResult, bool, error) {
	key := BuildMatchKey(RosterHash(roster, customers))

	data, err := mc.cache.Get(ctx, key)
	if err != nil {
		if err == ErrKeyNotFound {
			return nil, false, nil
		}
		return nil, false, err
	}

	var result CachedMatchResult
	if err := json.Unmarshal(data, &result); err != nil {
		// Corrupted entry, drop it
		_ = mc.cache.Delete(ctx, key) //nolint:errcheck // best effort cleanup
		return nil, false, nil
	}

	return &result, true, nil
}

// Set stores a match result in the cache.
func (mc *MatchCache) Set(ctx context.Context, roster *domain.Roster, customers []string, result *CachedMatchResult, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = mc.defaultTTL
	}

	key := BuildMatchKey(RosterHash(roster, customers))
	result.ComputedAt = time.Now()

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return mc.cache.Set(ctx, key, data, ttl)
}

// Invalidate removes the cached result for the given inputs.
func (mc *MatchCache) Invalidate(ctx context.Context, roster *domain.Roster, customers []string) error {
	return mc.cache.Delete(ctx, BuildMatchKey(RosterHash(roster, customers)))
}

// InvalidateAll removes all cached match results.
func (mc *MatchCache) InvalidateAll(ctx context.Context) (int64, error) {
	return mc.cache.DeleteByPattern(ctx, "match:*")
}
