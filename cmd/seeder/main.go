package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/clashboard/clan-stats-api/internal/config"
)

// Seeds a local database with a small clan so the API has something to
// serve during development. Not for production use.

var samplePlayers = []struct {
	Tag      string
	Name     string
	Role     string
	TownHall int
	Active   bool
}{
	{"#PLR001", "WarHammer", "leader", 15, true},
	{"#PLR002", "GoblinKing", "coLeader", 14, true},
	{"#PLR003", "BarbLover", "elder", 13, true},
	{"#PLR004", "WizKid", "member", 12, true},
	{"#PLR005", "SleepyDragon", "member", 11, false},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	for i, p := range samplePlayers {
		_, err := pool.Exec(ctx, `
			INSERT INTO players (player_tag, name, role, trophies, donations, donations_received,
			                     level, town_hall, active, wars_participated_in)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (player_tag) DO NOTHING`,
			p.Tag, p.Name, p.Role, 4000+i*100, 500-i*50, 300+i*20, 150+i, p.TownHall, p.Active, 20-i)
		if err != nil {
			log.Fatalf("seed player %s: %v", p.Tag, err)
		}
	}

	// A season of wars, one per day, newest last so created_at and war_id
	// line up the way the ingestion process writes them.
	for day := 0; day < 15; day++ {
		createdAt := time.Now().AddDate(0, 0, day-15)
		var warID int64
		err := pool.QueryRow(ctx, `
			INSERT INTO wars (opponent_clan_tag, opponent_clan_name, team_size, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING war_id`,
			fmt.Sprintf("#OPP%03d", day), fmt.Sprintf("Rival Clan %d", day), 15, createdAt).Scan(&warID)
		if err != nil {
			log.Fatalf("seed war: %v", err)
		}

		for _, p := range samplePlayers {
			if !p.Active || rand.Intn(3) == 0 { // some players skip wars
				continue
			}
			attacks := 1 + rand.Intn(2)
			for n := 1; n <= attacks; n++ {
				_, err := pool.Exec(ctx, `
					INSERT INTO war_attacks (war_id, attacker_tag, stars, destruction_percentage, attack_number)
					VALUES ($1, $2, $3, $4, $5)`,
					warID, p.Tag, rand.Intn(4), 40+rand.Intn(61), n)
				if err != nil {
					log.Fatalf("seed attack: %v", err)
				}
			}
		}
	}

	fmt.Println("Seed complete")
}
