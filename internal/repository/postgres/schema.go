package postgres

import (
	"database/sql"
	"fmt"
)

// schema is applied at startup. The tool owns its tables, so plain
// CREATE IF NOT EXISTS is enough; there is no migration history to keep.
const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	strategy    TEXT NOT NULL,
	games       INTEGER NOT NULL,
	seed        BIGINT NOT NULL DEFAULT 0,
	status      TEXT NOT NULL DEFAULT 'running',
	mean        DOUBLE PRECISION NOT NULL DEFAULT 0,
	std_dev     DOUBLE PRECISION NOT NULL DEFAULT 0,
	median      DOUBLE PRECISION NOT NULL DEFAULT 0,
	shut        INTEGER NOT NULL DEFAULT 0,
	avg_turns   DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	finished_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS run_games (
	run_id     UUID NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	game_index INTEGER NOT NULL,
	score      INTEGER NOT NULL,
	turns      INTEGER NOT NULL,
	shut       BOOLEAN NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (run_id, game_index)
);

CREATE INDEX IF NOT EXISTS idx_runs_strategy ON runs (strategy, created_at DESC);
`

// EnsureSchema creates the simulator's tables if they do not exist.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
