package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/logger"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/repository"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

type shotRepository struct {
	db *sql.DB
}

// NewShotRepository creates a new ShotRepository implementation
func NewShotRepository(db *sql.DB) repository.ShotRepository {
	return &shotRepository{db: db}
}

func (r *shotRepository) ListForPlayer(ctx context.Context, star string, lineupKeys []string) ([]models.ShotRecord, error) {
	log := logger.FromContext(ctx).WithPrefix("shot_repo")
	log.Debug("listing shots: star=%s, lineups=%d", star, len(lineupKeys))

	query := sqlBuilder.Select(
		"star_player", "lineup_key", "loc_x", "loc_y", "made",
		"zone_basic", "zone_area", "zone_range", "period",
	).From("shots").Where(squirrel.Eq{"star_player": star}).OrderBy("id")

	if len(lineupKeys) > 0 {
		query = query.Where(squirrel.Eq{"lineup_key": lineupKeys})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list shots: %v", err)
		return nil, err
	}
	defer rows.Close()

	var shots []models.ShotRecord
	for rows.Next() {
		var s models.ShotRecord
		var period sql.NullInt64
		if err := rows.Scan(&s.StarPlayer, &s.LineupKey, &s.LocX, &s.LocY, &s.Made,
			&s.ZoneBasic, &s.ZoneArea, &s.ZoneRange, &period); err != nil {
			log.Error("failed to scan shot row: %v", err)
			return nil, err
		}
		s.Period = int(period.Int64)
		shots = append(shots, s)
	}
	log.Debug("found %d shots", len(shots))
	return shots, rows.Err()
}

func (r *shotRepository) CountForPlayer(ctx context.Context, star string) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("shot_repo")

	var count int
	err := r.db.QueryRowContext(ctx, `
SELECT COUNT(*)
FROM shots
WHERE star_player = ?
`, star).Scan(&count)
	if err != nil {
		log.Error("failed to count shots: %v", err)
		return 0, err
	}
	return count, nil
}
