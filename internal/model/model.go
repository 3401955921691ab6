package model

import "time"

// Run represents one simulation batch: a strategy played for a number of
// games, with its aggregate results.
type Run struct {
	ID         string     `json:"id"`
	Strategy   string     `json:"strategy"`
	Games      int        `json:"games"`
	Seed       int64      `json:"seed"`
	Status     string     `json:"status"` // running, finished, failed
	Mean       float64    `json:"mean"`
	StdDev     float64    `json:"std_dev"`
	Median     float64    `json:"median"`
	Shut       int        `json:"shut"`
	AvgTurns   float64    `json:"avg_turns"`
	CreatedAt  time.Time  `json:"created_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
}

// GameRecord represents a single completed game within a run.
type GameRecord struct {
	RunID     string    `json:"run_id"`
	GameIndex int       `json:"game_index"`
	Score     int       `json:"score"`
	Turns     int       `json:"turns"`
	Shut      bool      `json:"shut"`
	CreatedAt time.Time `json:"created_at"`
}
