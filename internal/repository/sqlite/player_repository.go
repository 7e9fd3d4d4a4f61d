package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/logger"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/repository"
)

type playerRepository struct {
	db *sql.DB
}

// NewPlayerRepository creates a new PlayerRepository implementation
func NewPlayerRepository(db *sql.DB) repository.PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Get(ctx context.Context, name string) (*models.Player, error) {
	log := logger.FromContext(ctx).WithPrefix("player_repo")
	log.Debug("getting player: name=%s", name)

	var p models.Player
	var draft sql.NullString
	err := r.db.QueryRowContext(ctx, `
SELECT name, height, weight, position, team, draft_year
FROM players
WHERE name = ?
`, name).Scan(&p.Name, &p.Height, &p.Weight, &p.Position, &p.Team, &draft)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("player not found: name=%s", name)
			return nil, nil
		}
		log.Error("failed to get player: %v", err)
		return nil, err
	}
	p.DraftYear = draft.String
	return &p, nil
}

func (r *playerRepository) List(ctx context.Context) ([]models.Player, error) {
	log := logger.FromContext(ctx).WithPrefix("player_repo")
	log.Debug("listing players")

	rows, err := r.db.QueryContext(ctx, `
SELECT name, height, weight, position, team, draft_year
FROM players
ORDER BY rowid
`)
	if err != nil {
		log.Error("failed to list players: %v", err)
		return nil, err
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		var draft sql.NullString
		if err := rows.Scan(&p.Name, &p.Height, &p.Weight, &p.Position, &p.Team, &draft); err != nil {
			log.Error("failed to scan player row: %v", err)
			return nil, err
		}
		p.DraftYear = draft.String
		players = append(players, p)
	}
	log.Debug("found %d players", len(players))
	return players, rows.Err()
}
