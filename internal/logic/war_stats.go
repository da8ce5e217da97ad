package logic

import (
	"context"
	"fmt"

	"github.com/clashboard/clan-stats-api/internal/models"
)

// Default windows for the participation queries. The count endpoint looks
// at the last 10 wars; the summary endpoint scans a wider window of 15 so
// enough attack rows surface even when the player skipped recent wars, and
// caps the result at 5 distinct wars.
const (
	participationWindow = 10
	summaryWarWindow    = 15
	summaryAttackLimit  = 10
	summaryMaxWars      = 5
)

type warStatsService struct {
	store ClanStoreService
}

func NewWarStatsService(store ClanStoreService) WarStatsService {
	return &warStatsService{store: store}
}

// CountRecentParticipation returns how many of the last 10 wars the player
// fought in. The count is of distinct wars, not attacks: two attacks in
// one war count once.
func (s *warStatsService) CountRecentParticipation(ctx context.Context, playerTag string) (int, error) {
	return s.countParticipation(ctx, playerTag, participationWindow)
}

func (s *warStatsService) countParticipation(ctx context.Context, playerTag string, windowSize int) (int, error) {
	if playerTag == "" {
		return 0, ErrInvalidTag
	}

	warIDs, err := s.store.ListRecentWarIDs(ctx, windowSize)
	if err != nil {
		return 0, fmt.Errorf("recent war window: %w", err)
	}
	if len(warIDs) == 0 {
		return 0, ErrNoWarsFound
	}

	playerWarIDs, err := s.store.ListPlayerWarIDs(ctx, warIDs, playerTag)
	if err != nil {
		return 0, fmt.Errorf("player war ids: %w", err)
	}
	if len(playerWarIDs) == 0 {
		return 0, ErrNoParticipation
	}

	// One row per attack came back; a player can contribute up to two
	// rows per war, so count distinct war IDs.
	seen := make(map[int64]struct{}, len(playerWarIDs))
	for _, id := range playerWarIDs {
		seen[id] = struct{}{}
	}
	return len(seen), nil
}

// RecentWarSummaries returns the player's attacks in their 5 most recent
// wars, grouped per war and ordered newest war first. An empty history is
// a normal result, not an error.
func (s *warStatsService) RecentWarSummaries(ctx context.Context, playerTag string) ([]models.PlayerWarResult, error) {
	return s.recentWarSummaries(ctx, playerTag, summaryWarWindow, summaryAttackLimit, summaryMaxWars)
}

func (s *warStatsService) recentWarSummaries(ctx context.Context, playerTag string, warWindow, attackLimit, maxWars int) ([]models.PlayerWarResult, error) {
	if playerTag == "" {
		return nil, ErrInvalidTag
	}

	// Each war can contribute two attack rows, so the row cap must be at
	// least twice the war cap or the newest wars could crowd out the rest.
	if attackLimit < 2*maxWars {
		attackLimit = 2 * maxWars
	}

	warIDs, err := s.store.ListRecentWarIDs(ctx, warWindow)
	if err != nil {
		return nil, fmt.Errorf("recent war window: %w", err)
	}
	if len(warIDs) == 0 {
		return []models.PlayerWarResult{}, nil
	}

	attacks, err := s.store.ListPlayerAttacksInWars(ctx, warIDs, playerTag, attackLimit)
	if err != nil {
		return nil, fmt.Errorf("player attacks: %w", err)
	}

	// Group by war, preserving first-seen order. The fetch is ordered
	// war_id descending, so first-seen order is recency order.
	results := []models.PlayerWarResult{}
	index := make(map[int64]int, maxWars)
	for _, attack := range attacks {
		i, ok := index[attack.WarID]
		if !ok {
			index[attack.WarID] = len(results)
			i = len(results)
			results = append(results, models.PlayerWarResult{WarID: attack.WarID})
		}
		results[i].Attacks = append(results[i].Attacks, attack)
	}

	if len(results) > maxWars {
		results = results[:maxWars]
	}
	return results, nil
}
