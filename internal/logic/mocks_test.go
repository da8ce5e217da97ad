package logic

import (
	"context"
	"time"

	"github.com/clashboard/clan-stats-api/internal/models"
)

// MockClanStore implements ClanStoreService for testing
type MockClanStore struct {
	ListActivePlayersFunc       func(ctx context.Context) ([]models.Player, error)
	GetPlayerFunc               func(ctx context.Context, playerTag string) (*models.Player, error)
	ListPlayerTagsFunc          func(ctx context.Context) ([]string, error)
	ListRecentWarsFunc          func(ctx context.Context, limit int) ([]models.War, error)
	ListRecentWarIDsFunc        func(ctx context.Context, limit int) ([]int64, error)
	FindWarByOpponentFunc       func(ctx context.Context, opponentClanTag string) (int64, error)
	FindCapitalRaidByStartFunc  func(ctx context.Context, startTime time.Time) (int64, error)
	ListPlayerWarIDsFunc        func(ctx context.Context, warIDs []int64, playerTag string) ([]int64, error)
	ListPlayerAttacksInWarsFunc func(ctx context.Context, warIDs []int64, playerTag string, attackLimit int) ([]models.WarAttackSummary, error)
}

func (m *MockClanStore) ListActivePlayers(ctx context.Context) ([]models.Player, error) {
	if m.ListActivePlayersFunc != nil {
		return m.ListActivePlayersFunc(ctx)
	}
	return []models.Player{}, nil
}

func (m *MockClanStore) GetPlayer(ctx context.Context, playerTag string) (*models.Player, error) {
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(ctx, playerTag)
	}
	return &models.Player{PlayerTag: playerTag}, nil
}

func (m *MockClanStore) ListPlayerTags(ctx context.Context) ([]string, error) {
	if m.ListPlayerTagsFunc != nil {
		return m.ListPlayerTagsFunc(ctx)
	}
	return []string{}, nil
}

func (m *MockClanStore) ListRecentWars(ctx context.Context, limit int) ([]models.War, error) {
	if m.ListRecentWarsFunc != nil {
		return m.ListRecentWarsFunc(ctx, limit)
	}
	return []models.War{}, nil
}

func (m *MockClanStore) ListRecentWarIDs(ctx context.Context, limit int) ([]int64, error) {
	if m.ListRecentWarIDsFunc != nil {
		return m.ListRecentWarIDsFunc(ctx, limit)
	}
	return []int64{}, nil
}

func (m *MockClanStore) FindWarByOpponent(ctx context.Context, opponentClanTag string) (int64, error) {
	if m.FindWarByOpponentFunc != nil {
		return m.FindWarByOpponentFunc(ctx, opponentClanTag)
	}
	return 0, ErrWarNotFound
}

func (m *MockClanStore) FindCapitalRaidByStart(ctx context.Context, startTime time.Time) (int64, error) {
	if m.FindCapitalRaidByStartFunc != nil {
		return m.FindCapitalRaidByStartFunc(ctx, startTime)
	}
	return 0, ErrRaidNotFound
}

func (m *MockClanStore) ListPlayerWarIDs(ctx context.Context, warIDs []int64, playerTag string) ([]int64, error) {
	if m.ListPlayerWarIDsFunc != nil {
		return m.ListPlayerWarIDsFunc(ctx, warIDs, playerTag)
	}
	return []int64{}, nil
}

func (m *MockClanStore) ListPlayerAttacksInWars(ctx context.Context, warIDs []int64, playerTag string, attackLimit int) ([]models.WarAttackSummary, error) {
	if m.ListPlayerAttacksInWarsFunc != nil {
		return m.ListPlayerAttacksInWarsFunc(ctx, warIDs, playerTag, attackLimit)
	}
	return []models.WarAttackSummary{}, nil
}

// MockWarStats implements WarStatsService for testing
type MockWarStats struct {
	CountRecentParticipationFunc func(ctx context.Context, playerTag string) (int, error)
	RecentWarSummariesFunc       func(ctx context.Context, playerTag string) ([]models.PlayerWarResult, error)
}

func (m *MockWarStats) CountRecentParticipation(ctx context.Context, playerTag string) (int, error) {
	if m.CountRecentParticipationFunc != nil {
		return m.CountRecentParticipationFunc(ctx, playerTag)
	}
	return 0, nil
}

func (m *MockWarStats) RecentWarSummaries(ctx context.Context, playerTag string) ([]models.PlayerWarResult, error) {
	if m.RecentWarSummariesFunc != nil {
		return m.RecentWarSummariesFunc(ctx, playerTag)
	}
	return []models.PlayerWarResult{}, nil
}
