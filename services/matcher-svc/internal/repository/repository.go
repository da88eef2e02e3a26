// Package repository persists the history of matching runs.
package repository

import (
	"context"
	"errors"
	"time"
)

var (
	ErrRunNotFound = errors.New("match run not found")
)

// MatchRun is one persisted matching run.
type MatchRun struct {
	ID                string
	RosterHash        string
	EmployeeCount     int
	CustomerCount     int
	SuccessfulMatches int
	Iterations        int
	DurationMs        float64
	Summary           []byte // JSON-encoded domain.MatchSummary
	CreatedAt         time.Time
}

// ListOptions controls pagination for listing runs.
type ListOptions struct {
	Limit  int
	Offset int
}

// RunStatistics aggregates persisted runs.
type RunStatistics struct {
	TotalRuns         int
	AverageMatches    float64
	AverageIterations float64
	AverageDurationMs float64
	DistinctRosters   int
	LastRunAt         *time.Time
}

// MatchRunRepository stores and retrieves matching runs.
type MatchRunRepository interface {
	Create(ctx context.Context, run *MatchRun) error
	GetByID(ctx context.Context, id string) (*MatchRun, error)
	GetLatestByHash(ctx context.Context, rosterHash string) (*MatchRun, error)
	List(ctx context.Context, opts *ListOptions) ([]*MatchRun, int64, error)
	GetStatistics(ctx context.Context, since *time.Time) (*RunStatistics, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
