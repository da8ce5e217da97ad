package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/clashboard/clan-stats-api/internal/config"
	"github.com/clashboard/clan-stats-api/internal/handlers"
	"github.com/clashboard/clan-stats-api/internal/logic"
	"github.com/clashboard/clan-stats-api/internal/middleware"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "development" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	ctx := context.Background()

	pool, err := newPool(ctx, cfg)
	if err != nil {
		sugar.Fatalw("Failed to connect to Postgres", "error", err)
	}
	defer pool.Close()

	clanStore := logic.NewClanStoreService(pool)
	warStats := logic.NewWarStatsService(clanStore)
	profile := logic.NewProfileService(clanStore, warStats)

	h := handlers.New(handlers.Config{
		Postgres:  pool,
		Logger:    logger,
		ClanStore: clanStore,
		WarStats:  warStats,
		Profile:   profile,
	})

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID(sugar))
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/players", h.GetPlayers)
		r.Get("/players/{playerTag}", h.GetPlayer)
		r.Get("/players/{playerTag}/profile", h.GetPlayerProfile)
		r.Get("/playerLastTenWars/{playerTag}", h.GetPlayerLastTenWars)
		r.Get("/playerLastFiveWars/{playerTag}", h.GetPlayerLastFiveWars)
		r.Get("/wars", h.GetRecentWars)

		r.Route("/v1/system", func(r chi.Router) {
			r.Post("/install", h.InstallDatabase)
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		sugar.Infow("Server starting", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	channel := make(chan os.Signal, 1)
	signal.Notify(channel, os.Interrupt, syscall.SIGTERM)
	<-channel

	sugar.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Server shutdown failed", "error", err)
	}
}

// newPool builds the bounded connection pool that is the process's only
// persistent state, and verifies connectivity before the server starts.
func newPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolCfg.MinConns = int32(cfg.PoolMinConns)
	poolCfg.MaxConns = int32(cfg.PoolMaxConns)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return pool, nil
}
