// Package service orchestrates a matching run: cache lookup, engine
// execution, metrics, tracing and persistence.
package service

import (
	"context"
	"encoding/json"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"rostering/pkg/cache"
	"rostering/pkg/domain"
	"rostering/pkg/logger"
	"rostering/pkg/metrics"
	"rostering/pkg/telemetry"
	"rostering/services/matcher-svc/internal/matching"
	"rostering/services/matcher-svc/internal/repository"
)

// MatcherService runs matchings end to end. Cache and repository are
// optional; a nil value disables that concern.
type MatcherService struct {
	engine     *matching.Engine
	matchCache *cache.MatchCache
	repo       repository.MatchRunRepository
	metrics    *metrics.Metrics
}

// NewMatcherService creates a service around the engine.
func NewMatcherService(engine *matching.Engine, matchCache *cache.MatchCache, repo repository.MatchRunRepository) *MatcherService {
	if engine == nil {
		engine = matching.NewEngine(nil)
	}
	return &MatcherService{
		engine:     engine,
		matchCache: matchCache,
		repo:       repo,
		metrics:    metrics.Get(),
	}
}

// MatchOutcome is the result of one orchestrated run.
type MatchOutcome struct {
	Summary    *domain.MatchSummary
	RosterHash string
	RunID      string
	Iterations int
	Nodes      int
	Edges      int
	DurationMs float64
	CacheHit   bool
}

// Match produces assignments for the roster and customer list.
func (s *MatcherService) Match(ctx context.Context, roster *domain.Roster, customers []string) (*MatchOutcome, error) {
	ctx, span := telemetry.StartSpan(ctx, "MatcherService.Match",
		trace.WithAttributes(
			attribute.Int("employees", rosterSize(roster)),
			attribute.Int("customers", len(customers)),
		),
	)
	defer span.End()

	if s.matchCache != nil {
		cached, found, err := s.matchCache.Get(ctx, roster, customers)
		if err != nil {
			logger.Log.Warn("match cache lookup failed", "error", err)
		}
		s.metrics.RecordCacheLookup(err == nil && found)
		if err == nil && found {
			telemetry.AddEvent(ctx, "cache_hit",
				attribute.Int("matched", cached.Summary.SuccessfulMatches),
			)
			span.SetAttributes(attribute.Bool("cache_hit", true))

			applySummary(roster, cached.Summary)
			return &MatchOutcome{
				Summary:    cached.Summary,
				RosterHash: cache.RosterHash(roster, customers),
				Iterations: cached.Iterations,
				DurationMs: cached.ComputationTimeMs,
				CacheHit:   true,
			}, nil
		}
		span.SetAttributes(attribute.Bool("cache_hit", false))
	}

	start := time.Now()
	result, err := s.engine.Match(ctx, roster, customers)
	elapsed := time.Since(start)

	if err != nil {
		telemetry.SetError(ctx, err)
		s.metrics.RecordMatchRun("engine", false, elapsed, 0, len(customers))
		return nil, err
	}

	s.metrics.RecordMatchRun("engine", true, elapsed,
		result.Summary.SuccessfulMatches, len(result.Summary.UnmatchedCustomers))
	s.metrics.RecordRosterSize(rosterSize(roster), len(customers))
	s.metrics.RecordAugmentingPaths(result.Iterations)

	span.SetAttributes(telemetry.MatchingAttributes(
		rosterSize(roster), len(customers),
		result.Iterations, result.Summary.SuccessfulMatches,
	)...)

	outcome := &MatchOutcome{
		Summary:    result.Summary,
		RosterHash: cache.RosterHash(roster, customers),
		Iterations: result.Iterations,
		Nodes:      result.Nodes,
		Edges:      result.Edges,
		DurationMs: float64(elapsed.Microseconds()) / 1000.0,
	}

	if s.matchCache != nil {
		entry := &cache.CachedMatchResult{
			Summary:           result.Summary,
			Iterations:        result.Iterations,
			ComputationTimeMs: outcome.DurationMs,
		}
		if err := s.matchCache.Set(ctx, roster, customers, entry, 0); err != nil {
			logger.Log.Warn("failed to cache match result", "error", err)
		}
	}

	if s.repo != nil {
		if id, err := s.saveRun(ctx, outcome, rosterSize(roster), len(customers)); err != nil {
			logger.Log.Warn("failed to persist match run", "error", err)
		} else {
			outcome.RunID = id
		}
	}

	return outcome, nil
}

// History returns persisted runs, newest first.
func (s *MatcherService) History(ctx context.Context, opts *repository.ListOptions) ([]*repository.MatchRun, int64, error) {
	if s.repo == nil {
		return nil, 0, nil
	}

	ctx, span := telemetry.StartSpan(ctx, "MatcherService.History")
	defer span.End()

	return s.repo.List(ctx, opts)
}

// Statistics aggregates persisted runs since the given time.
func (s *MatcherService) Statistics(ctx context.Context, since *time.Time) (*repository.RunStatistics, error) {
	if s.repo == nil {
		return &repository.RunStatistics{}, nil
	}

	ctx, span := telemetry.StartSpan(ctx, "MatcherService.Statistics")
	defer span.End()

	return s.repo.GetStatistics(ctx, since)
}

// InvalidateCache drops every cached match result.
func (s *MatcherService) InvalidateCache(ctx context.Context) (int64, error) {
	if s.matchCache == nil {
		return 0, nil
	}
	return s.matchCache.InvalidateAll(ctx)
}

func (s *MatcherService) saveRun(ctx context.Context, outcome *MatchOutcome, employees, customers int) (string, error) {
	payload, err := json.Marshal(outcome.Summary)
	if err != nil {
		return "", err
	}

	run := &repository.MatchRun{
		RosterHash:        outcome.RosterHash,
		EmployeeCount:     employees,
		CustomerCount:     customers,
		SuccessfulMatches: outcome.Summary.SuccessfulMatches,
		Iterations:        outcome.Iterations,
		DurationMs:        outcome.DurationMs,
		Summary:           payload,
	}
	if err := s.repo.Create(ctx, run); err != nil {
		return "", err
	}
	return run.ID, nil
}

// applySummary replays cached assignments onto the roster so employee
// state matches what a fresh engine run would have produced.
func applySummary(roster *domain.Roster, summary *domain.MatchSummary) {
	if roster == nil || summary == nil {
		return
	}
	roster.ResetAssignments()

	byName := make(map[string]*domain.Employee, len(roster.Employees))
	for _, e := range roster.Employees {
		byName[e.Name] = e
	}
	for customer, name := range summary.Matches {
		if e, ok := byName[name]; ok {
			e.AssignedCustomer = customer
		}
	}
}

func rosterSize(roster *domain.Roster) int {
	if roster == nil {
		return 0
	}
	return len(roster.Employees)
}
