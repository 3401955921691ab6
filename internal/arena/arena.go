// Package arena runs batches of Shut the Box games for one strategy and
// aggregates their scores. Games are independent, so batches fan out
// across a worker pool.
package arena

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jkclark/shutbox/internal/model"
	"github.com/jkclark/shutbox/internal/repository"
	"github.com/jkclark/shutbox/internal/stats"
	"github.com/jkclark/shutbox/internal/strategy"
	"github.com/jkclark/shutbox/pkg/shutbox"
)

// Config configures a simulation batch.
type Config struct {
	Strategy string
	Games    int
	Workers  int   // parallel games; <1 means 1
	Seed     int64 // base seed; 0 picks one from the clock
	DryRun   bool  // skip persistence even when a repo is provided
}

// BatchResult describes a completed batch.
type BatchResult struct {
	RunID    string        `json:"run_id,omitempty"`
	Strategy string        `json:"strategy"`
	Seed     int64         `json:"seed"`
	Scores   []int         `json:"-"`
	Turns    []int         `json:"-"`
	Summary  stats.Summary `json:"summary"`
}

// ProgressFunc is called after each completed game, from the worker
// goroutine that finished it.
type ProgressFunc func(gameIndex int, result shutbox.Result)

// RunGame plays a single game with the named strategy, fully determined
// by seed: the same seed replays the same dice and the same choices.
func RunGame(strategyName string, seed int64) (shutbox.Result, error) {
	rng := rand.New(rand.NewSource(seed))
	strat, err := strategy.ForName(strategyName, rng)
	if err != nil {
		return shutbox.Result{}, err
	}
	return shutbox.Play(strat, shutbox.NewRoller(rng)), nil
}

// RunBatch plays cfg.Games independent games, persists them through repo
// (unless repo is nil or cfg.DryRun), and returns the aggregate result.
// Game i uses seed cfg.Seed+i, so any single game can be replayed.
func RunBatch(ctx context.Context, cfg Config, repo repository.RunRepository, onGame ProgressFunc) (*BatchResult, error) {
	if cfg.Games <= 0 {
		return nil, fmt.Errorf("batch needs at least one game, got %d", cfg.Games)
	}
	if _, err := strategy.ForName(cfg.Strategy, nil); err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	persist := repo != nil && !cfg.DryRun

	var runID string
	if persist {
		run, err := repo.CreateRun(ctx, cfg.Strategy, cfg.Games, cfg.Seed)
		if err != nil {
			return nil, fmt.Errorf("create run: %w", err)
		}
		runID = run.ID
	}

	scores := make([]int, cfg.Games)
	turns := make([]int, cfg.Games)

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, cfg.Workers)
	var firstErr error

	for i := 0; i < cfg.Games; i++ {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()

			result, err := RunGame(cfg.Strategy, cfg.Seed+int64(idx))
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}

			mu.Lock()
			scores[idx] = result.Score
			turns[idx] = result.Turns
			mu.Unlock()

			if onGame != nil {
				onGame(idx, result)
			}
		}(i)
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		if persist {
			failBestEffort(repo, runID)
		}
		return nil, err
	}
	if firstErr != nil {
		if persist {
			failBestEffort(repo, runID)
		}
		return nil, firstErr
	}

	batch := &BatchResult{
		RunID:    runID,
		Strategy: cfg.Strategy,
		Seed:     cfg.Seed,
		Scores:   scores,
		Turns:    turns,
		Summary:  stats.Summarize(scores, turns),
	}

	if persist {
		records := make([]model.GameRecord, cfg.Games)
		for i := range records {
			records[i] = model.GameRecord{
				RunID:     runID,
				GameIndex: i,
				Score:     scores[i],
				Turns:     turns[i],
				Shut:      scores[i] == 0,
			}
		}
		if err := repo.SaveGames(ctx, records); err != nil {
			return nil, fmt.Errorf("save games: %w", err)
		}
		if err := repo.FinishRun(ctx, runID, batch.Summary); err != nil {
			return nil, fmt.Errorf("finish run: %w", err)
		}
	}

	log.Info().
		Str("strategy", cfg.Strategy).
		Int("games", cfg.Games).
		Int64("seed", cfg.Seed).
		Float64("mean", batch.Summary.Mean).
		Float64("shutRate", batch.Summary.ShutRate).
		Msg("Batch completed")

	return batch, nil
}

func failBestEffort(repo repository.RunRepository, runID string) {
	if err := repo.FailRun(context.Background(), runID); err != nil {
		log.Warn().Err(err).Str("runId", runID).Msg("Failed to mark run failed")
	}
}
