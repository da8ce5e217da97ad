package logic

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clashboard/clan-stats-api/internal/models"
)

// PgPool defines the interface for PostgreSQL connection pool
type PgPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// ClanStoreService is the query layer over the three clan tables. Every
// operation is a single parameterized read; driver failures surface as
// ErrStoreUnavailable and never as partial results.
type ClanStoreService interface {
	ListActivePlayers(ctx context.Context) ([]models.Player, error)
	GetPlayer(ctx context.Context, playerTag string) (*models.Player, error)
	ListPlayerTags(ctx context.Context) ([]string, error)

	ListRecentWars(ctx context.Context, limit int) ([]models.War, error)
	ListRecentWarIDs(ctx context.Context, limit int) ([]int64, error)
	FindWarByOpponent(ctx context.Context, opponentClanTag string) (int64, error)
	FindCapitalRaidByStart(ctx context.Context, startTime time.Time) (int64, error)

	ListPlayerWarIDs(ctx context.Context, warIDs []int64, playerTag string) ([]int64, error)
	ListPlayerAttacksInWars(ctx context.Context, warIDs []int64, playerTag string, attackLimit int) ([]models.WarAttackSummary, error)
}

// WarStatsService aggregates a player's war participation over recency
// windows of the wars table.
type WarStatsService interface {
	CountRecentParticipation(ctx context.Context, playerTag string) (int, error)
	RecentWarSummaries(ctx context.Context, playerTag string) ([]models.PlayerWarResult, error)
}

// ProfileService assembles the combined roster/participation view.
type ProfileService interface {
	GetPlayerProfile(ctx context.Context, playerTag string) (*models.PlayerProfile, error)
}
