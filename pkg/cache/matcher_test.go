package cache

import (
	"context"
	"testing"
	"time"

	"rostering/pkg/domain"
)

func newTestMatchCache(t *testing.T) *MatchCache {
	t.Helper()
	backing := NewMemoryCache(DefaultOptions())
	t.Cleanup(func() { _ = backing.Close() })
	return NewMatchCache(backing, time.Minute)
}

func sampleResult() *CachedMatchResult {
	return &CachedMatchResult{
		Summary: &domain.MatchSummary{
			SuccessfulMatches: 2,
			Matches: map[string]string{
				"Customer1": "Alice",
				"Customer2": "Bob",
			},
			UnmatchedCustomers:   []string{},
			AvailableEmployees:   []string{"Alice", "Bob"},
			UnavailableEmployees: []string{},
		},
		Iterations:        2,
		ComputationTimeMs: 1.5,
	}
}

func TestMatchCache_SetGet(t *testing.T) {
	mc := newTestMatchCache(t)
	ctx := context.Background()
	roster := testRoster()
	customers := []string{"Customer1", "Customer2"}

	_, found, err := mc.Get(ctx, roster, customers)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("expected cache miss on empty cache")
	}

	if err := mc.Set(ctx, roster, customers, sampleResult(), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, found, err := mc.Get(ctx, roster, customers)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("expected cache hit")
	}
	if got.Summary.SuccessfulMatches != 2 {
		t.Errorf("SuccessfulMatches = %d, want 2", got.Summary.SuccessfulMatches)
	}
	if got.Summary.Matches["Customer1"] != "Alice" {
		t.Errorf("Matches[Customer1] = %s, want Alice", got.Summary.Matches["Customer1"])
	}
	if got.ComputedAt.IsZero() {
		t.Error("ComputedAt should be set on store")
	}
}

func TestMatchCache_DifferentInputsMiss(t *testing.T) {
	mc := newTestMatchCache(t)
	ctx := context.Background()
	customers := []string{"Customer1", "Customer2"}

	if err := mc.Set(ctx, testRoster(), customers, sampleResult(), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	other := testRoster()
	other.Employees[1].Available = false

	_, found, err := mc.Get(ctx, other, customers)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("changed roster should not hit the cache")
	}
}

func TestMatchCache_Invalidate(t *testing.T) {
	mc := newTestMatchCache(t)
	ctx := context.Background()
	roster := testRoster()
	customers := []string{"Customer1", "Customer2"}

	if err := mc.Set(ctx, roster, customers, sampleResult(), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := mc.Invalidate(ctx, roster, customers); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}

	_, found, err := mc.Get(ctx, roster, customers)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("expected miss after invalidation")
	}
}

func TestMatchCache_InvalidateAll(t *testing.T) {
	mc := newTestMatchCache(t)
	ctx := context.Background()
	customers := []string{"Customer1", "Customer2"}

	if err := mc.Set(ctx, testRoster(), customers, sampleResult(), 0); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	deleted, err := mc.InvalidateAll(ctx)
	if err != nil {
		t.Fatalf("InvalidateAll() error = %v", err)
	}
	if deleted != 1 {
		t.Errorf("deleted = %d, want 1", deleted)
	}
}
