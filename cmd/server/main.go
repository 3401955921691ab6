// Command server exposes the simulator over HTTP: run batches, browse
// stored runs, and follow live progress over WebSocket.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jkclark/shutbox/internal/config"
	"github.com/jkclark/shutbox/internal/handler"
	"github.com/jkclark/shutbox/internal/logger"
	"github.com/jkclark/shutbox/internal/middleware"
	"github.com/jkclark/shutbox/internal/repository"
	"github.com/jkclark/shutbox/internal/repository/postgres"
	redisrepo "github.com/jkclark/shutbox/internal/repository/redis"
)

func main() {
	logger.Init()
	cfg := config.Load()
	log.Info().Str("databaseURL", cfg.DatabaseURL).Msg("Config loaded")

	// Database. The server stays up without it; persistence endpoints
	// report unavailable instead.
	var runRepo repository.RunRepository
	db, err := postgres.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Warn().Err(err).Msg("Database unavailable, runs will not be persisted")
	} else {
		defer db.Close()
		if err := postgres.EnsureSchema(db); err != nil {
			log.Fatal().Err(err).Msg("Schema setup failed")
		}
		runRepo = postgres.NewRunRepo(db)
	}

	// Redis, same policy as the database.
	var cache repository.SummaryCache
	redisClient, err := redisrepo.NewClient(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, leaderboard disabled")
	} else {
		defer redisClient.Close()
		cache = redisClient
	}

	// WebSocket hub
	wsHub := handler.NewHub()

	// Handlers
	simHandler := handler.NewSimHandler(runRepo, cache, wsHub)
	wsHandler := handler.NewWSHandler(wsHub)

	// Router
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("GET /api/strategies", simHandler.ListStrategies)
	mux.HandleFunc("POST /api/simulations", simHandler.CreateSimulation)
	mux.HandleFunc("GET /api/simulations", simHandler.ListSimulations)
	mux.HandleFunc("GET /api/simulations/{id}", simHandler.GetSimulation)
	mux.HandleFunc("GET /api/leaderboard", simHandler.GetLeaderboard)
	mux.HandleFunc("GET /api/ws", wsHandler.ServeWS)

	root := middleware.Chain(mux,
		middleware.Logger,
		middleware.CORS(cfg.AllowedOrigins),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: root,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
