package handler

import (
	"net/http"
	"runtime"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/jkclark/shutbox/internal/arena"
	"github.com/jkclark/shutbox/internal/logger"
	"github.com/jkclark/shutbox/internal/repository"
	"github.com/jkclark/shutbox/internal/stats"
	"github.com/jkclark/shutbox/internal/strategy"
	"github.com/jkclark/shutbox/pkg/shutbox"
)

// maxGamesPerRequest caps a single simulation request; bigger experiments
// belong in the CLI.
const maxGamesPerRequest = 100000

// SimHandler handles simulation REST endpoints.
type SimHandler struct {
	runs  repository.RunRepository // nil when persistence is unavailable
	cache repository.SummaryCache  // nil when Redis is unavailable
	hub   *Hub
}

// NewSimHandler creates a SimHandler. runs and cache may be nil; the
// corresponding endpoints then report the store as unavailable.
func NewSimHandler(runs repository.RunRepository, cache repository.SummaryCache, hub *Hub) *SimHandler {
	return &SimHandler{runs: runs, cache: cache, hub: hub}
}

// ListStrategies handles GET /api/strategies.
func (h *SimHandler) ListStrategies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"strategies": strategy.Names()})
}

type createSimulationRequest struct {
	Strategy string `json:"strategy"`
	Games    int    `json:"games"`
	Seed     int64  `json:"seed"`
	Workers  int    `json:"workers"`
	Persist  bool   `json:"persist"`
}

type simulationResponse struct {
	RunID     string        `json:"run_id,omitempty"`
	Strategy  string        `json:"strategy"`
	Seed      int64         `json:"seed"`
	Summary   stats.Summary `json:"summary"`
	Histogram []int         `json:"histogram"`
}

// CreateSimulation handles POST /api/simulations — runs a batch
// synchronously and streams progress over the hub while it runs.
func (h *SimHandler) CreateSimulation(w http.ResponseWriter, r *http.Request) {
	var req createSimulationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if _, err := strategy.ForName(req.Strategy, nil); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Games <= 0 {
		req.Games = 1000
	}
	if req.Games > maxGamesPerRequest {
		writeError(w, http.StatusBadRequest, "too many games for one request")
		return
	}
	if req.Workers < 1 || req.Workers > runtime.NumCPU() {
		req.Workers = runtime.NumCPU()
	}

	cfg := arena.Config{
		Strategy: req.Strategy,
		Games:    req.Games,
		Seed:     req.Seed,
		Workers:  req.Workers,
		DryRun:   !req.Persist,
	}

	// Progress events carry a synthetic run ID until the repo assigns one;
	// clients subscribed to "*" see both.
	progressID := logger.NewRequestID()
	h.hub.BroadcastToRun(progressID, WSEvent{
		Type:  EventRunStarted,
		RunID: progressID,
		Data:  map[string]any{"strategy": req.Strategy, "games": req.Games},
	})

	// Sample game events so a large batch does not flood subscribers.
	sample := int64(req.Games / 100)
	if sample < 1 {
		sample = 1
	}
	var done atomic.Int64
	onGame := func(idx int, result shutbox.Result) {
		n := done.Add(1)
		if n%sample != 0 && n != int64(req.Games) {
			return
		}
		h.hub.BroadcastToRun(progressID, WSEvent{
			Type:  EventGameFinished,
			RunID: progressID,
			Data: map[string]any{
				"completed": n,
				"games":     req.Games,
				"score":     result.Score,
			},
		})
	}

	var repo repository.RunRepository
	if req.Persist {
		if h.runs == nil {
			writeError(w, http.StatusServiceUnavailable, "persistence is not configured")
			return
		}
		repo = h.runs
	}

	batch, err := arena.RunBatch(r.Context(), cfg, repo, onGame)
	if err != nil {
		log.Error().Err(err).Str("strategy", req.Strategy).Msg("Simulation failed")
		writeError(w, http.StatusInternalServerError, "simulation failed")
		return
	}

	h.hub.BroadcastToRun(progressID, WSEvent{
		Type:  EventRunFinished,
		RunID: progressID,
		Data:  batch.Summary,
	})

	if h.cache != nil {
		if err := h.cache.SetSummary(r.Context(), batch.Strategy, batch.Summary); err != nil {
			log.Warn().Err(err).Msg("Failed to cache summary")
		}
		if err := h.cache.UpdateLeaderboard(r.Context(), batch.Strategy, batch.Summary.Mean); err != nil {
			log.Warn().Err(err).Msg("Failed to update leaderboard")
		}
	}

	writeJSON(w, http.StatusOK, simulationResponse{
		RunID:     batch.RunID,
		Strategy:  batch.Strategy,
		Seed:      batch.Seed,
		Summary:   batch.Summary,
		Histogram: stats.Histogram(batch.Scores, shutbox.MaxScore),
	})
}

// ListSimulations handles GET /api/simulations.
func (h *SimHandler) ListSimulations(w http.ResponseWriter, r *http.Request) {
	if h.runs == nil {
		writeError(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}
	runs, err := h.runs.ListRuns(r.Context(), 50)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list runs")
		writeError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

// GetSimulation handles GET /api/simulations/{id}.
func (h *SimHandler) GetSimulation(w http.ResponseWriter, r *http.Request) {
	if h.runs == nil {
		writeError(w, http.StatusServiceUnavailable, "persistence is not configured")
		return
	}
	id := r.PathValue("id")
	run, err := h.runs.FindRun(r.Context(), id)
	if err != nil {
		log.Error().Err(err).Str("runId", id).Msg("Failed to find run")
		writeError(w, http.StatusInternalServerError, "failed to find run")
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// GetLeaderboard handles GET /api/leaderboard.
func (h *SimHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		writeError(w, http.StatusServiceUnavailable, "cache is not configured")
		return
	}
	entries, err := h.cache.Leaderboard(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to read leaderboard")
		writeError(w, http.StatusInternalServerError, "failed to read leaderboard")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"leaderboard": entries})
}
