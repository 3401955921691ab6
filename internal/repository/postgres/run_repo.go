package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/jkclark/shutbox/internal/model"
	"github.com/jkclark/shutbox/internal/stats"
)

// RunRepo handles simulation run and game-record database operations.
type RunRepo struct {
	db *sql.DB
}

// NewRunRepo creates a RunRepo.
func NewRunRepo(db *sql.DB) *RunRepo {
	return &RunRepo{db: db}
}

// CreateRun inserts a new run in "running" status.
func (r *RunRepo) CreateRun(ctx context.Context, strategy string, games int, seed int64) (*model.Run, error) {
	var run model.Run
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO runs (strategy, games, seed)
		 VALUES ($1, $2, $3)
		 RETURNING id, strategy, games, seed, status, created_at`,
		strategy, games, seed,
	).Scan(&run.ID, &run.Strategy, &run.Games, &run.Seed, &run.Status, &run.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create run: %w", err)
	}
	return &run, nil
}

// FinishRun marks a run finished and stores its summary statistics.
func (r *RunRepo) FinishRun(ctx context.Context, runID string, summary stats.Summary) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE runs
		 SET status = 'finished', mean = $2, std_dev = $3, median = $4, shut = $5, avg_turns = $6,
		     finished_at = now()
		 WHERE id = $1`,
		runID, summary.Mean, summary.StdDev, summary.Median, summary.Shut, summary.AvgTurns)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// FailRun marks a run failed.
func (r *RunRepo) FailRun(ctx context.Context, runID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE runs SET status = 'failed', finished_at = now() WHERE id = $1`, runID)
	if err != nil {
		return fmt.Errorf("fail run: %w", err)
	}
	return nil
}

// SaveGames bulk-inserts game records using the pq COPY protocol.
func (r *RunRepo) SaveGames(ctx context.Context, records []model.GameRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save games: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("run_games", "run_id", "game_index", "score", "turns", "shut"))
	if err != nil {
		return fmt.Errorf("prepare copy: %w", err)
	}

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.RunID, rec.GameIndex, rec.Score, rec.Turns, rec.Shut); err != nil {
			stmt.Close()
			return fmt.Errorf("copy game record: %w", err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return fmt.Errorf("flush copy: %w", err)
	}
	if err := stmt.Close(); err != nil {
		return fmt.Errorf("close copy: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save games: %w", err)
	}
	return nil
}

// FindRun returns a run by ID, or nil if it does not exist.
func (r *RunRepo) FindRun(ctx context.Context, id string) (*model.Run, error) {
	var run model.Run
	err := r.db.QueryRowContext(ctx,
		`SELECT id, strategy, games, seed, status, mean, std_dev, median, shut, avg_turns, created_at, finished_at
		 FROM runs WHERE id = $1`, id,
	).Scan(&run.ID, &run.Strategy, &run.Games, &run.Seed, &run.Status,
		&run.Mean, &run.StdDev, &run.Median, &run.Shut, &run.AvgTurns,
		&run.CreatedAt, &run.FinishedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find run: %w", err)
	}
	return &run, nil
}

// ListRuns returns the most recent runs, newest first.
func (r *RunRepo) ListRuns(ctx context.Context, limit int) ([]model.Run, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, strategy, games, seed, status, mean, std_dev, median, shut, avg_turns, created_at, finished_at
		 FROM runs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []model.Run
	for rows.Next() {
		var run model.Run
		if err := rows.Scan(&run.ID, &run.Strategy, &run.Games, &run.Seed, &run.Status,
			&run.Mean, &run.StdDev, &run.Median, &run.Shut, &run.AvgTurns,
			&run.CreatedAt, &run.FinishedAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GamesByRun returns every game record for a run, in game order.
func (r *RunRepo) GamesByRun(ctx context.Context, runID string) ([]model.GameRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT run_id, game_index, score, turns, shut, created_at
		 FROM run_games WHERE run_id = $1 ORDER BY game_index`, runID)
	if err != nil {
		return nil, fmt.Errorf("games by run: %w", err)
	}
	defer rows.Close()

	var records []model.GameRecord
	for rows.Next() {
		var rec model.GameRecord
		if err := rows.Scan(&rec.RunID, &rec.GameIndex, &rec.Score, &rec.Turns, &rec.Shut, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan game record: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
