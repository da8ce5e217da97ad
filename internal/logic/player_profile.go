package logic

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/clashboard/clan-stats-api/internal/models"
)

type profileService struct {
	store    ClanStoreService
	warStats WarStatsService
}

func NewProfileService(store ClanStoreService, warStats WarStatsService) ProfileService {
	return &profileService{store: store, warStats: warStats}
}

// GetPlayerProfile fans out the three independent reads behind the profile
// view. The empty-window participation outcomes are renderable states here,
// carried as a note on the profile rather than an error.
func (s *profileService) GetPlayerProfile(ctx context.Context, playerTag string) (*models.PlayerProfile, error) {
	if playerTag == "" {
		return nil, ErrInvalidTag
	}

	profile := &models.PlayerProfile{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		player, err := s.store.GetPlayer(ctx, playerTag)
		if err != nil {
			return fmt.Errorf("roster row: %w", err)
		}
		profile.Player = *player
		return nil
	})

	g.Go(func() error {
		count, err := s.warStats.CountRecentParticipation(ctx, playerTag)
		switch {
		case errors.Is(err, ErrNoWarsFound):
			profile.Participation = "no_wars"
			return nil
		case errors.Is(err, ErrNoParticipation):
			profile.Participation = "none"
			return nil
		case err != nil:
			return fmt.Errorf("participation count: %w", err)
		}
		profile.WarsInLastTen = count
		return nil
	})

	g.Go(func() error {
		summaries, err := s.warStats.RecentWarSummaries(ctx, playerTag)
		if err != nil {
			return fmt.Errorf("war summaries: %w", err)
		}
		profile.RecentWars = summaries
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return profile, nil
}
