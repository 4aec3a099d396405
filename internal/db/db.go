// Package db provides PostgreSQL storage for analysis run history. Each
// analyze invocation becomes a run row plus one score row per candidate, so
// recruiters can compare how a candidate pool evolved between postings.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/recruiter-portal/internal/types"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// Run represents one analysis invocation.
type Run struct {
	ID             uuid.UUID `json:"id"`
	JobTitle       string    `json:"job_title"`
	Strategy       string    `json:"strategy"`
	CandidateCount int       `json:"candidate_count"`
	CreatedAt      time.Time `json:"created_at"`
}

// ScoreRecord is one candidate's result within a run, in ranked order.
type ScoreRecord struct {
	ID          uuid.UUID `json:"id"`
	RunID       uuid.UUID `json:"run_id"`
	Rank        int       `json:"rank"`
	Email       string    `json:"email"`
	FinalScore  float64   `json:"final_score"`
	Explanation string    `json:"explanation"`
	Degraded    bool      `json:"degraded"`
}

// CreateRun records a new analysis run and returns its ID
func (db *DB) CreateRun(ctx context.Context, jobTitle, strategy string, candidateCount int) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO analysis_runs (job_title, strategy, candidate_count)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		jobTitle, strategy, candidateCount,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// SaveScores stores the ranked results of a run. results must already be in
// ranked order; the position becomes the stored rank.
func (db *DB) SaveScores(ctx context.Context, runID uuid.UUID, results []types.ScoreResult) error {
	for i, result := range results {
		_, err := db.pool.Exec(ctx,
			`INSERT INTO candidate_scores (run_id, rank, email, final_score, explanation, degraded)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			runID, i+1, result.CandidateEmail, result.FinalScore, result.Explanation, result.Degraded,
		)
		if err != nil {
			return fmt.Errorf("failed to save score for %s: %w", result.CandidateEmail, err)
		}
	}
	return nil
}

// GetRun retrieves a run by ID, or nil when it does not exist
func (db *DB) GetRun(ctx context.Context, runID uuid.UUID) (*Run, error) {
	var run Run
	err := db.pool.QueryRow(ctx,
		`SELECT id, job_title, strategy, candidate_count, created_at
		 FROM analysis_runs WHERE id = $1`,
		runID,
	).Scan(&run.ID, &run.JobTitle, &run.Strategy, &run.CandidateCount, &run.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return &run, nil
}

// ListRuns retrieves recent runs, newest first
func (db *DB) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, job_title, strategy, candidate_count, created_at
		 FROM analysis_runs ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.JobTitle, &run.Strategy, &run.CandidateCount, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, nil
}

// RunScores retrieves the stored results of a run in ranked order
func (db *DB) RunScores(ctx context.Context, runID uuid.UUID) ([]ScoreRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, run_id, rank, email, final_score, explanation, degraded
		 FROM candidate_scores WHERE run_id = $1 ORDER BY rank ASC`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	defer rows.Close()

	var scores []ScoreRecord
	for rows.Next() {
		var s ScoreRecord
		if err := rows.Scan(&s.ID, &s.RunID, &s.Rank, &s.Email, &s.FinalScore, &s.Explanation, &s.Degraded); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, s)
	}
	return scores, nil
}

// DeleteRun deletes a run and its scores (via cascade)
func (db *DB) DeleteRun(ctx context.Context, runID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analysis_runs WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("run not found: %s", runID)
	}
	return nil
}
