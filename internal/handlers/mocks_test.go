package handlers

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clashboard/clan-stats-api/internal/logic"
	"github.com/clashboard/clan-stats-api/internal/models"
)

// MockDatabase implements Database for testing
type MockDatabase struct {
	PingFunc func(ctx context.Context) error
	ExecFunc func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func (m *MockDatabase) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func (m *MockDatabase) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if m.ExecFunc != nil {
		return m.ExecFunc(ctx, sql, args...)
	}
	return pgconn.CommandTag{}, nil
}

// MockClanStoreService implements logic.ClanStoreService for testing
type MockClanStoreService struct {
	ListActivePlayersFunc func(ctx context.Context) ([]models.Player, error)
	GetPlayerFunc         func(ctx context.Context, playerTag string) (*models.Player, error)
	ListRecentWarsFunc    func(ctx context.Context, limit int) ([]models.War, error)
}

func (m *MockClanStoreService) ListActivePlayers(ctx context.Context) ([]models.Player, error) {
	if m.ListActivePlayersFunc != nil {
		return m.ListActivePlayersFunc(ctx)
	}
	return []models.Player{}, nil
}

func (m *MockClanStoreService) GetPlayer(ctx context.Context, playerTag string) (*models.Player, error) {
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(ctx, playerTag)
	}
	return &models.Player{PlayerTag: playerTag}, nil
}

func (m *MockClanStoreService) ListPlayerTags(ctx context.Context) ([]string, error) {
	return []string{}, nil
}

func (m *MockClanStoreService) ListRecentWars(ctx context.Context, limit int) ([]models.War, error) {
	if m.ListRecentWarsFunc != nil {
		return m.ListRecentWarsFunc(ctx, limit)
	}
	return []models.War{}, nil
}

func (m *MockClanStoreService) ListRecentWarIDs(ctx context.Context, limit int) ([]int64, error) {
	return []int64{}, nil
}

func (m *MockClanStoreService) FindWarByOpponent(ctx context.Context, opponentClanTag string) (int64, error) {
	return 0, logic.ErrWarNotFound
}

func (m *MockClanStoreService) FindCapitalRaidByStart(ctx context.Context, startTime time.Time) (int64, error) {
	return 0, logic.ErrRaidNotFound
}

func (m *MockClanStoreService) ListPlayerWarIDs(ctx context.Context, warIDs []int64, playerTag string) ([]int64, error) {
	return []int64{}, nil
}

func (m *MockClanStoreService) ListPlayerAttacksInWars(ctx context.Context, warIDs []int64, playerTag string, attackLimit int) ([]models.WarAttackSummary, error) {
	return []models.WarAttackSummary{}, nil
}

// MockWarStatsService implements logic.WarStatsService for testing
type MockWarStatsService struct {
	CountRecentParticipationFunc func(ctx context.Context, playerTag string) (int, error)
	RecentWarSummariesFunc       func(ctx context.Context, playerTag string) ([]models.PlayerWarResult, error)
}

func (m *MockWarStatsService) CountRecentParticipation(ctx context.Context, playerTag string) (int, error) {
	if m.CountRecentParticipationFunc != nil {
		return m.CountRecentParticipationFunc(ctx, playerTag)
	}
	return 0, nil
}

func (m *MockWarStatsService) RecentWarSummaries(ctx context.Context, playerTag string) ([]models.PlayerWarResult, error) {
	if m.RecentWarSummariesFunc != nil {
		return m.RecentWarSummariesFunc(ctx, playerTag)
	}
	return []models.PlayerWarResult{}, nil
}

// MockProfileService implements logic.ProfileService for testing
type MockProfileService struct {
	GetPlayerProfileFunc func(ctx context.Context, playerTag string) (*models.PlayerProfile, error)
}

func (m *MockProfileService) GetPlayerProfile(ctx context.Context, playerTag string) (*models.PlayerProfile, error) {
	if m.GetPlayerProfileFunc != nil {
		return m.GetPlayerProfileFunc(ctx, playerTag)
	}
	return &models.PlayerProfile{}, nil
}
