package sqlite

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"

	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/logger"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/repository"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/stats"
)

type lineupRepository struct {
	db *sql.DB
}

// NewLineupRepository creates a new LineupRepository implementation
func NewLineupRepository(db *sql.DB) repository.LineupRepository {
	return &lineupRepository{db: db}
}

func (r *lineupRepository) Efficiency(ctx context.Context, filter models.LineupFilter) ([]models.LineupEfficiency, error) {
	log := logger.FromContext(ctx).WithPrefix("lineup_repo")
	log.Debug("listing efficiency: star=%s, keys=%d", filter.StarPlayer, len(filter.Keys))

	query := sqlBuilder.Select(
		"star_player", "archetype1", "archetype2", "archetype3", "archetype4",
		"offensive_rating", "defensive_rating", "net_rating",
	).From("lineup_efficiency")

	// Dynamic WHERE clauses
	if filter.StarPlayer != "" {
		query = query.Where(squirrel.Eq{"star_player": filter.StarPlayer})
	}
	if len(filter.Keys) > 0 {
		query = query.Where(squirrel.Eq{"key": filter.Keys})
	}

	// Safe ORDER BY with validation; default is load order.
	orderBy := "seq"
	if filter.OrderBy == "net_rating" || filter.OrderBy == "offensive_rating" || filter.OrderBy == "defensive_rating" {
		orderBy = filter.OrderBy
	}
	orderDir := "ASC"
	if filter.OrderDir == "DESC" {
		orderDir = "DESC"
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list efficiency rows: %v", err)
		return nil, err
	}
	defer rows.Close()

	var lineups []models.LineupEfficiency
	for rows.Next() {
		var l models.LineupEfficiency
		if err := rows.Scan(&l.StarPlayer,
			&l.Archetypes[0], &l.Archetypes[1], &l.Archetypes[2], &l.Archetypes[3],
			&l.OffensiveRating, &l.DefensiveRating, &l.NetRating); err != nil {
			log.Error("failed to scan efficiency row: %v", err)
			return nil, err
		}
		lineups = append(lineups, l)
	}
	log.Debug("found %d efficiency rows", len(lineups))
	return lineups, rows.Err()
}

func (r *lineupRepository) Tendencies(ctx context.Context, star string) ([]models.LineupTendencies, error) {
	log := logger.FromContext(ctx).WithPrefix("lineup_repo")
	log.Debug("listing tendencies: star=%s", star)

	metricNames := stats.MetricNames()
	columns := append([]string{
		"star_player", "archetype1", "archetype2", "archetype3", "archetype4",
	}, metricNames...)

	sqlStr, args, err := sqlBuilder.Select(columns...).
		From("lineup_tendencies").
		Where(squirrel.Eq{"star_player": star}).
		OrderBy("seq").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list tendency rows: %v", err)
		return nil, err
	}
	defer rows.Close()

	var lineups []models.LineupTendencies
	for rows.Next() {
		var l models.LineupTendencies
		values := make([]sql.NullFloat64, len(metricNames))
		dest := []any{&l.StarPlayer,
			&l.Archetypes[0], &l.Archetypes[1], &l.Archetypes[2], &l.Archetypes[3]}
		for i := range values {
			dest = append(dest, &values[i])
		}
		if err := rows.Scan(dest...); err != nil {
			log.Error("failed to scan tendency row: %v", err)
			return nil, err
		}
		// NULL metrics stay out of the map: the row is then partial and
		// excluded from radar comparison downstream.
		l.Metrics = make(map[string]float64, len(metricNames))
		for i, name := range metricNames {
			if values[i].Valid {
				l.Metrics[name] = values[i].Float64
			}
		}
		lineups = append(lineups, l)
	}
	log.Debug("found %d tendency rows", len(lineups))
	return lineups, rows.Err()
}

func (r *lineupRepository) ComboKeys(ctx context.Context, star string) ([]string, error) {
	log := logger.FromContext(ctx).WithPrefix("lineup_repo")

	rows, err := r.db.QueryContext(ctx, `
SELECT key
FROM lineup_efficiency
WHERE star_player = ?
ORDER BY seq
`, star)
	if err != nil {
		log.Error("failed to list combo keys: %v", err)
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			log.Error("failed to scan combo key: %v", err)
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
