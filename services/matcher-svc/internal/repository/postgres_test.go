package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pgxMockAdapter struct {
	mock pgxmock.PgxPoolIface
}

func (a *pgxMockAdapter) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return a.mock.Exec(ctx, sql, args...)
}

func (a *pgxMockAdapter) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return a.mock.Query(ctx, sql, args...)
}

func (a *pgxMockAdapter) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return a.mock.QueryRow(ctx, sql, args...)
}

func (a *pgxMockAdapter) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return a.mock.BeginTx(ctx, txOptions)
}

func (a *pgxMockAdapter) Close() {
	a.mock.Close()
}

func (a *pgxMockAdapter) Ping(ctx context.Context) error {
	return a.mock.Ping(ctx)
}

func setupMockDB(t *testing.T) (pgxmock.PgxPoolIface, *PostgresMatchRunRepository) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)

	repo := NewPostgresMatchRunRepository(&pgxMockAdapter{mock: mock})
	return mock, repo
}

func sampleRun() *MatchRun {
	return &MatchRun{
		RosterHash:        "abcd1234",
		EmployeeCount:     7,
		CustomerCount:     4,
		SuccessfulMatches: 4,
		Iterations:        4,
		DurationMs:        1.25,
		Summary:           []byte(`{"successful_matches":4}`),
	}
}

func TestPostgresMatchRunRepository_Create_Success(t *testing.T) {
	mock, repo := setupMockDB(t)
	defer mock.Close()

	run := sampleRun()
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO match_runs`).
		WithArgs(
			pgxmock.AnyArg(), // generated UUID
			run.RosterHash,
			run.EmployeeCount,
			run.CustomerCount,
			run.SuccessfulMatches,
			run.Iterations,
			run.DurationMs,
			run.Summary,
		).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	err := repo.Create(context.Background(), run)
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, now, run.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMatchRunRepository_Create_KeepsProvidedID(t *testing.T) {
	mock, repo := setupMockDB(t)
	defer mock.Close()

	run := sampleRun()
	run.ID = "11111111-2222-3333-4444-555555555555"

	mock.ExpectQuery(`INSERT INTO match_runs`).
		WithArgs(
			run.ID,
			run.RosterHash,
			run.EmployeeCount,
			run.CustomerCount,
			run.SuccessfulMatches,
			run.Iterations,
			run.DurationMs,
			run.Summary,
		).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	err := repo.Create(context.Background(), run)
	require.NoError(t, err)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", run.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMatchRunRepository_Create_Error(t *testing.T) {
	mock, repo := setupMockDB(t)
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO match_runs`).
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnError(errors.New("connection refused"))

	err := repo.Create(context.Background(), sampleRun())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create match run")
}

func TestPostgresMatchRunRepository_GetByID_Success(t *testing.T) {
	mock, repo := setupMockDB(t)
	defer mock.Close()

	now := time.Now()
	rows := pgxmock.NewRows([]string{
		"id", "roster_hash", "employee_count", "customer_count",
		"successful_matches", "iterations", "duration_ms", "summary", "created_at",
	}).AddRow("run-1", "abcd1234", 7, 4, 4, 4, 1.25, []byte(`{}`), now)

	mock.ExpectQuery(`SELECT`).WithArgs("run-1").WillReturnRows(rows)

	run, err := repo.GetByID(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, "abcd1234", run.RosterHash)
	assert.Equal(t, 4, run.SuccessfulMatches)
}

func TestPostgresMatchRunRepository_GetByID_NotFound(t *testing.T) {
	mock, repo := setupMockDB(t)
	defer mock.Close()

	mock.ExpectQuery(`SELECT`).WithArgs("missing").WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
}

func TestPostgresMatchRunRepository_GetLatestByHash(t *testing.T) {
	mock, repo := setupMockDB(t)
	defer mock.Close()

	now := time.Now()
	rows := pgxmock.NewRows([]string{
		"id", "roster_hash", "employee_count", "customer_count",
		"successful_matches", "iterations", "duration_ms", "summary", "created_at",
	}).AddRow("run-2", "hash-x", 3, 2, 2, 2, 0.8, []byte(`{}`), now)

	mock.ExpectQuery(`SELECT`).WithArgs("hash-x").WillReturnRows(rows)

	run, err := repo.GetLatestByHash(context.Background(), "hash-x")
	require.NoError(t, err)
	assert.Equal(t, "run-2", run.ID)
}

func TestPostgresMatchRunRepository_List(t *testing.T) {
	mock, repo := setupMockDB(t)
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	now := time.Now()
	rows := pgxmock.NewRows([]string{
		"id", "roster_hash", "employee_count", "customer_count",
		"successful_matches", "iterations", "duration_ms", "summary", "created_at",
	}).
		AddRow("run-1", "h1", 7, 4, 4, 4, 1.0, []byte(`{}`), now).
		AddRow("run-2", "h2", 3, 2, 1, 1, 0.5, []byte(`{}`), now.Add(-time.Hour))

	mock.ExpectQuery(`SELECT`).WithArgs(20, 0).WillReturnRows(rows)

	runs, total, err := repo.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-1", runs[0].ID)
}

func TestPostgresMatchRunRepository_List_ClampsLimit(t *testing.T) {
	mock, repo := setupMockDB(t)
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(`SELECT`).WithArgs(100, 0).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "roster_hash", "employee_count", "customer_count",
			"successful_matches", "iterations", "duration_ms", "summary", "created_at",
		}))

	_, _, err := repo.List(context.Background(), &ListOptions{Limit: 500})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresMatchRunRepository_DeleteOlderThan(t *testing.T) {
	mock, repo := setupMockDB(t)
	defer mock.Close()

	cutoff := time.Now().Add(-30 * 24 * time.Hour)
	mock.ExpectExec(`DELETE FROM match_runs`).
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 5))

	deleted, err := repo.DeleteOlderThan(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(5), deleted)
}
