package models

import "time"

// Player is one clan roster row. The tag is the game's immutable player
// identifier; inactive players stay in the table but are excluded from
// roster listings.
type Player struct {
	PlayerTag                  string    `json:"player_tag"`
	Name                       string    `json:"name"`
	Role                       string    `json:"role"`
	Trophies                   int       `json:"trophies"`
	Donations                  int       `json:"donations"`
	DonationsReceived          int       `json:"donations_received"`
	Level                      int       `json:"level"`
	TownHall                   int       `json:"town_hall"`
	Active                     bool      `json:"active"`
	WarsParticipatedIn         int       `json:"wars_participated_in"`
	WarsMissedAttacks          int       `json:"wars_missed_attacks"`
	CapitalRaidsParticipatedIn int       `json:"capital_raids_participated_in"`
	CreatedAt                  time.Time `json:"created_at"`
}

// War recency is ordered by CreatedAt, not by ID.
type War struct {
	WarID            int64     `json:"war_id"`
	OpponentClanTag  string    `json:"opponent_clan_tag"`
	OpponentClanName string    `json:"opponent_clan_name"`
	TeamSize         int       `json:"team_size"`
	CreatedAt        time.Time `json:"created_at"`
}

type WarAttack struct {
	AttackID              int64  `json:"attack_id"`
	WarID                 int64  `json:"war_id"`
	AttackerTag           string `json:"attacker_tag"`
	Stars                 int    `json:"stars"`
	DestructionPercentage int    `json:"destruction_percentage"`
	AttackNumber          int    `json:"attack_number"`
}

type CapitalRaid struct {
	RaidID                  int64     `json:"raid_id"`
	StartTime               time.Time `json:"start_time"`
	CapitalTotalLoot        int       `json:"capital_total_loot"`
	RaidsCompleted          int       `json:"raids_completed"`
	TotalAttacks            int       `json:"total_attacks"`
	EnemyDistrictsDestroyed int       `json:"enemy_districts_destroyed"`
}

// WarAttackSummary is the per-attack slice of a war detail row.
type WarAttackSummary struct {
	WarID                 int64 `json:"war_id"`
	Stars                 int   `json:"stars"`
	DestructionPercentage int   `json:"destruction_percentage"`
}

// PlayerWarResult groups a player's attacks within a single war,
// newest war first in any returned sequence.
type PlayerWarResult struct {
	WarID   int64              `json:"war_id"`
	Attacks []WarAttackSummary `json:"attacks"`
}

// PlayerProfile is the combined view returned by the profile endpoint.
// Participation carries "none"/"no_wars" when the count query hit one of
// the legitimate empty-window outcomes, so the client can render them
// differently from a plain zero.
type PlayerProfile struct {
	Player        Player            `json:"player"`
	WarsInLastTen int               `json:"wars_in_last_ten"`
	Participation string            `json:"participation,omitempty"`
	RecentWars    []PlayerWarResult `json:"recent_wars"`
}
