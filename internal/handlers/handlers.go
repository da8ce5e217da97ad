package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/clashboard/clan-stats-api/internal/logic"
)

// Database is the slice of the pgx pool the handlers touch directly:
// readiness pings and schema installation. Everything else goes through
// the service layer.
type Database interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Config struct {
	Postgres Database
	Logger   *zap.Logger
	// Services
	ClanStore logic.ClanStoreService
	WarStats  logic.WarStatsService
	Profile   logic.ProfileService
}

type Handler struct {
	pg        Database
	logger    *zap.SugaredLogger
	validator *validator.Validate
	clanStore logic.ClanStoreService
	warStats  logic.WarStatsService
	profile   logic.ProfileService
}

func New(cfg Config) *Handler {
	return &Handler{
		pg:        cfg.Postgres,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
		clanStore: cfg.ClanStore,
		warStats:  cfg.WarStats,
		profile:   cfg.Profile,
	}
}
