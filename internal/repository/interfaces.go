package repository

import (
	"context"

	"github.com/jkclark/shutbox/internal/model"
	"github.com/jkclark/shutbox/internal/stats"
)

// RunRepository defines simulation run and game-record data operations.
type RunRepository interface {
	CreateRun(ctx context.Context, strategy string, games int, seed int64) (*model.Run, error)
	FinishRun(ctx context.Context, runID string, summary stats.Summary) error
	FailRun(ctx context.Context, runID string) error
	SaveGames(ctx context.Context, records []model.GameRecord) error
	FindRun(ctx context.Context, id string) (*model.Run, error)
	ListRuns(ctx context.Context, limit int) ([]model.Run, error)
	GamesByRun(ctx context.Context, runID string) ([]model.GameRecord, error)
}

// SummaryCache defines cached per-strategy results (Redis).
type SummaryCache interface {
	SetSummary(ctx context.Context, strategy string, summary stats.Summary) error
	GetSummary(ctx context.Context, strategy string) (*stats.Summary, error)
	UpdateLeaderboard(ctx context.Context, strategy string, meanScore float64) error
	Leaderboard(ctx context.Context) ([]LeaderboardEntry, error)
}

// LeaderboardEntry pairs a strategy with its most recent mean score.
// Lower is better: the leaderboard is sorted ascending.
type LeaderboardEntry struct {
	Strategy  string  `json:"strategy"`
	MeanScore float64 `json:"mean_score"`
}
