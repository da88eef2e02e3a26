package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rostering/pkg/database"
	"rostering/pkg/telemetry"
)

// PostgresMatchRunRepository is the PostgreSQL implementation.
type PostgresMatchRunRepository struct {
	db database.DB
}

// NewPostgresMatchRunRepository creates a new repository.
func NewPostgresMatchRunRepository(db database.DB) *PostgresMatchRunRepository {
	return &PostgresMatchRunRepository{db: db}
}

func (r *PostgresMatchRunRepository) Create(ctx context.Context, run *MatchRun) error {
	ctx, span := telemetry.StartSpan(ctx, "PostgresMatchRunRepository.Create")
	defer span.End()

	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	query := `
		INSERT INTO match_runs (
			id, roster_hash, employee_count, customer_count,
			successful_matches, iterations, duration_ms, summary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		run.ID,
		run.RosterHash,
		run.EmployeeCount,
		run.CustomerCount,
		run.SuccessfulMatches,
		run.Iterations,
		run.DurationMs,
		run.Summary,
	).Scan(&run.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create match run: %w", err)
	}

	return nil
}

func (r *PostgresMatchRunRepository) GetByID(ctx context.Context, id string) (*MatchRun, error) {
	ctx, span := telemetry.StartSpan(ctx, "PostgresMatchRunRepository.GetByID")
	defer span.End()

	query := `
		SELECT
			id, roster_hash, employee_count, customer_count,
			successful_matches, iterations, duration_ms, summary, created_at
		FROM match_runs
		WHERE id = $1
	`

	return r.scanRun(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresMatchRunRepository) GetLatestByHash(ctx context.Context, rosterHash string) (*MatchRun, error) {
	ctx, span := telemetry.StartSpan(ctx, "PostgresMatchRunRepository.GetLatestByHash")
	defer span.End()

	query := `
		SELECT
			id, roster_hash, employee_count, customer_count,
			successful_matches, iterations, duration_ms, summary, created_at
		FROM match_runs
		WHERE roster_hash = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	return r.scanRun(r.db.QueryRow(ctx, query, rosterHash))
}

func (r *PostgresMatchRunRepository) List(ctx context.Context, opts *ListOptions) ([]*MatchRun, int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "PostgresMatchRunRepository.List")
	defer span.End()

	if opts == nil {
		opts = &ListOptions{Limit: 20}
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM match_runs`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count match runs: %w", err)
	}

	query := `
		SELECT
			id, roster_hash, employee_count, customer_count,
			successful_matches, iterations, duration_ms, summary, created_at
		FROM match_runs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list match runs: %w", err)
	}
	defer rows.Close()

	var results []*MatchRun
	for rows.Next() {
		run := &MatchRun{}
		err := rows.Scan(
			&run.ID,
			&run.RosterHash,
			&run.EmployeeCount,
			&run.CustomerCount,
			&run.SuccessfulMatches,
			&run.Iterations,
			&run.DurationMs,
			&run.Summary,
			&run.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan match run: %w", err)
		}
		results = append(results, run)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows iteration error: %w", err)
	}

	return results, total, nil
}

func (r *PostgresMatchRunRepository) GetStatistics(ctx context.Context, since *time.Time) (*RunStatistics, error) {
	ctx, span := telemetry.StartSpan(ctx, "PostgresMatchRunRepository.GetStatistics")
	defer span.End()

	query := `
		SELECT
			COUNT(*),
			COALESCE(AVG(successful_matches), 0),
			COALESCE(AVG(iterations), 0),
			COALESCE(AVG(duration_ms), 0),
			COUNT(DISTINCT roster_hash),
			MAX(created_at)
		FROM match_runs
		WHERE ($1::timestamptz IS NULL OR created_at >= $1)
	`

	stats := &RunStatistics{}
	err := r.db.QueryRow(ctx, query, since).Scan(
		&stats.TotalRuns,
		&stats.AverageMatches,
		&stats.AverageIterations,
		&stats.AverageDurationMs,
		&stats.DistinctRosters,
		&stats.LastRunAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get run statistics: %w", err)
	}

	return stats, nil
}

func (r *PostgresMatchRunRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, span := telemetry.StartSpan(ctx, "PostgresMatchRunRepository.DeleteOlderThan")
	defer span.End()

	result, err := r.db.Exec(ctx, `DELETE FROM match_runs WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete match runs: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *PostgresMatchRunRepository) scanRun(row pgx.Row) (*MatchRun, error) {
	run := &MatchRun{}
	err := row.Scan(
		&run.ID,
		&run.RosterHash,
		&run.EmployeeCount,
		&run.CustomerCount,
		&run.SuccessfulMatches,
		&run.Iterations,
		&run.DurationMs,
		&run.Summary,
		&run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get match run: %w", err)
	}
	return run, nil
}
