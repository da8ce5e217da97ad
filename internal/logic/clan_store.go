package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/clashboard/clan-stats-api/internal/models"
)

type clanStoreService struct {
	pg PgPool
}

func NewClanStoreService(pg PgPool) ClanStoreService {
	return &clanStoreService{pg: pg}
}

// storeErr converts a driver-level failure into the taxonomy the rest of
// the service layer works with. The raw error stays wrapped for the log.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

const playerColumns = `
	player_tag, name, role, trophies, donations, donations_received,
	level, town_hall, active, wars_participated_in, wars_missed_attacks,
	capital_raids_participated_in, created_at`

func scanPlayer(row pgx.Row, p *models.Player) error {
	return row.Scan(
		&p.PlayerTag, &p.Name, &p.Role, &p.Trophies, &p.Donations,
		&p.DonationsReceived, &p.Level, &p.TownHall, &p.Active,
		&p.WarsParticipatedIn, &p.WarsMissedAttacks,
		&p.CapitalRaidsParticipatedIn, &p.CreatedAt,
	)
}

// ListActivePlayers returns every roster row with active = true,
// unordered. Ordering is a client concern.
func (s *clanStoreService) ListActivePlayers(ctx context.Context) ([]models.Player, error) {
	rows, err := s.pg.Query(ctx, `SELECT`+playerColumns+` FROM players WHERE active = true`)
	if err != nil {
		return nil, storeErr("list active players", err)
	}
	defer rows.Close()

	players := []models.Player{}
	for rows.Next() {
		var p models.Player
		if err := scanPlayer(rows, &p); err != nil {
			return nil, storeErr("scan player", err)
		}
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list active players", err)
	}
	return players, nil
}

func (s *clanStoreService) GetPlayer(ctx context.Context, playerTag string) (*models.Player, error) {
	var p models.Player
	err := scanPlayer(s.pg.QueryRow(ctx,
		`SELECT`+playerColumns+` FROM players WHERE player_tag = $1`, playerTag), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPlayerNotFound
	}
	if err != nil {
		return nil, storeErr("get player", err)
	}
	return &p, nil
}

func (s *clanStoreService) ListPlayerTags(ctx context.Context) ([]string, error) {
	rows, err := s.pg.Query(ctx, `SELECT player_tag FROM players`)
	if err != nil {
		return nil, storeErr("list player tags", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, storeErr("scan player tag", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list player tags", err)
	}
	return tags, nil
}

// ListRecentWars returns up to limit wars, newest first by creation
// timestamp. The timestamp is the authoritative recency signal, not the
// war ID.
func (s *clanStoreService) ListRecentWars(ctx context.Context, limit int) ([]models.War, error) {
	if limit <= 0 {
		return []models.War{}, nil
	}

	rows, err := s.pg.Query(ctx, `
		SELECT war_id, opponent_clan_tag, opponent_clan_name, team_size, created_at
		FROM wars
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, storeErr("list recent wars", err)
	}
	defer rows.Close()

	wars := []models.War{}
	for rows.Next() {
		var w models.War
		if err := rows.Scan(&w.WarID, &w.OpponentClanTag, &w.OpponentClanName, &w.TeamSize, &w.CreatedAt); err != nil {
			return nil, storeErr("scan war", err)
		}
		wars = append(wars, w)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list recent wars", err)
	}
	return wars, nil
}

func (s *clanStoreService) ListRecentWarIDs(ctx context.Context, limit int) ([]int64, error) {
	if limit <= 0 {
		return []int64{}, nil
	}

	rows, err := s.pg.Query(ctx, `
		SELECT war_id
		FROM wars
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, storeErr("list recent war ids", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, storeErr("scan war id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list recent war ids", err)
	}
	return ids, nil
}

func (s *clanStoreService) FindWarByOpponent(ctx context.Context, opponentClanTag string) (int64, error) {
	var id int64
	err := s.pg.QueryRow(ctx, `
		SELECT war_id
		FROM wars
		WHERE opponent_clan_tag = $1
		ORDER BY created_at DESC
		LIMIT 1`, opponentClanTag).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrWarNotFound
	}
	if err != nil {
		return 0, storeErr("find war by opponent", err)
	}
	return id, nil
}

func (s *clanStoreService) FindCapitalRaidByStart(ctx context.Context, startTime time.Time) (int64, error) {
	var id int64
	err := s.pg.QueryRow(ctx, `
		SELECT raid_id
		FROM capital_raids
		WHERE start_time = $1`, startTime).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrRaidNotFound
	}
	if err != nil {
		return 0, storeErr("find capital raid", err)
	}
	return id, nil
}

// ListPlayerWarIDs returns one war ID per attack the player made within
// the given wars. Duplicates are expected; callers deduplicate.
func (s *clanStoreService) ListPlayerWarIDs(ctx context.Context, warIDs []int64, playerTag string) ([]int64, error) {
	if len(warIDs) == 0 {
		return []int64{}, nil
	}

	rows, err := s.pg.Query(ctx, `
		SELECT war_id
		FROM war_attacks
		WHERE war_id = ANY($1) AND attacker_tag = $2`, warIDs, playerTag)
	if err != nil {
		return nil, storeErr("list player war ids", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, storeErr("scan player war id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list player war ids", err)
	}
	return ids, nil
}

// ListPlayerAttacksInWars returns up to attackLimit attacks by the player
// within the given wars, newest war first. Ordering by war_id matches
// creation order as long as IDs are assigned monotonically; the schema's
// BIGSERIAL key keeps that assumption true.
func (s *clanStoreService) ListPlayerAttacksInWars(ctx context.Context, warIDs []int64, playerTag string, attackLimit int) ([]models.WarAttackSummary, error) {
	if len(warIDs) == 0 || attackLimit <= 0 {
		return []models.WarAttackSummary{}, nil
	}

	rows, err := s.pg.Query(ctx, `
		SELECT war_id, stars, destruction_percentage
		FROM war_attacks
		WHERE war_id = ANY($1) AND attacker_tag = $2
		ORDER BY war_id DESC
		LIMIT $3`, warIDs, playerTag, attackLimit)
	if err != nil {
		return nil, storeErr("list player attacks", err)
	}
	defer rows.Close()

	attacks := []models.WarAttackSummary{}
	for rows.Next() {
		var a models.WarAttackSummary
		if err := rows.Scan(&a.WarID, &a.Stars, &a.DestructionPercentage); err != nil {
			return nil, storeErr("scan attack", err)
		}
		attacks = append(attacks, a)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("list player attacks", err)
	}
	return attacks, nil
}
