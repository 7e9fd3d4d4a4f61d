// Package store loads the four CSV source tables into an in-memory SQLite
// database at startup. The database is read-only after Open returns: every
// derived value is computed by other packages against this snapshot.
package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/errors"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/logger"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/stats"
)

//go:embed schema.sql
var schemaSQL string

// Source file names expected under the data directory.
const (
	FilePlayers    = "allstar_data.csv"
	FileShots      = "shot_data.csv"
	FileEfficiency = "lineup_efficiency.csv"
	FileTendencies = "lineup_tendencies.csv"
)

var archetypeColumns = []string{
	"player1_archetype", "player2_archetype", "player3_archetype", "player4_archetype",
}

// Store wraps the loaded database handle.
type Store struct {
	*sql.DB
	log *logger.Logger
}

// Open parses the CSV tables under dataDir and bulk-loads them into SQLite
// at dbPath (":memory:" in normal operation). Any missing file, missing
// required column, malformed cell, or duplicate lineup combo key fails with
// a DATA_LOAD error and the process must not start.
func Open(dataDir, dbPath string) (*Store, error) {
	log := logger.Default().WithPrefix("store")

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", dbPath)
	if dbPath == ":memory:" {
		dsn = ":memory:"
	}
	log.Info("opening database: %s", dbPath)

	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.NewDataLoadError("sqlite", err)
	}
	// A single connection keeps the in-memory database visible to every
	// query; a second connection would see an empty schema.
	sqlDB.SetMaxOpenConns(1)

	if _, err := sqlDB.Exec(schemaSQL); err != nil {
		sqlDB.Close()
		return nil, errors.NewDataLoadError("schema", err)
	}

	s := &Store{DB: sqlDB, log: log}
	ctx := context.Background()

	loaders := []struct {
		file string
		fn   func(ctx context.Context, path string) (int, error)
	}{
		{FilePlayers, s.loadPlayers},
		{FileEfficiency, s.loadEfficiency},
		{FileTendencies, s.loadTendencies},
		{FileShots, s.loadShots},
	}
	for _, l := range loaders {
		path := filepath.Join(dataDir, l.file)
		n, err := l.fn(ctx, path)
		if err != nil {
			sqlDB.Close()
			return nil, errors.NewDataLoadError(l.file, err)
		}
		log.Info("loaded %d rows from %s", n, l.file)
	}

	log.Info("data store ready")
	return s, nil
}

func (s *Store) loadPlayers(ctx context.Context, path string) (int, error) {
	t, err := readTable(path, []string{"player", "height", "weight", "position", "current_team"})
	if err != nil {
		return 0, err
	}
	if !t.has("draft year") && !t.has("draft_year") {
		s.log.Debug("players table has no draft year column, feature hidden")
	}

	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO players (name, height, weight, position, team, draft_year)
VALUES (?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i := range t.rows {
		weight, err := t.int(i, "weight")
		if err != nil {
			return 0, err
		}
		draft := t.str(i, "draft year")
		if draft == "" {
			draft = t.str(i, "draft_year")
		}
		var draftVal any
		if draft != "" {
			draftVal = draft
		}
		if _, err := stmt.ExecContext(ctx,
			t.str(i, "player"), t.str(i, "height"), weight,
			t.str(i, "position"), t.str(i, "current_team"), draftVal,
		); err != nil {
			return 0, fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return len(t.rows), tx.Commit()
}

func (s *Store) loadEfficiency(ctx context.Context, path string) (int, error) {
	required := append([]string{"star_player", "offensive_rating", "defensive_rating", "net_rating"}, archetypeColumns...)
	t, err := readTable(path, required)
	if err != nil {
		return 0, err
	}

	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO lineup_efficiency (key, star_player, archetype1, archetype2, archetype3, archetype4,
    offensive_rating, defensive_rating, net_rating, seq)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i := range t.rows {
		star, archetypes := t.str(i, "star_player"), comboArchetypes(t, i)
		off, err := t.float(i, "offensive_rating")
		if err != nil {
			return 0, err
		}
		def, err := t.float(i, "defensive_rating")
		if err != nil {
			return 0, err
		}
		net, err := t.float(i, "net_rating")
		if err != nil {
			return 0, err
		}
		key := models.ComboKey(star, archetypes)
		if _, err := stmt.ExecContext(ctx, key, star,
			archetypes[0], archetypes[1], archetypes[2], archetypes[3],
			off, def, net, i,
		); err != nil {
			// PRIMARY KEY violation means a duplicate combo within a
			// star's table, which the data model forbids.
			return 0, fmt.Errorf("row %d (combo %q): %w", i+2, key, err)
		}
	}
	return len(t.rows), tx.Commit()
}

func (s *Store) loadTendencies(ctx context.Context, path string) (int, error) {
	metricNames := stats.MetricNames()
	required := append([]string{"star_player"}, archetypeColumns...)
	required = append(required, metricNames...)
	t, err := readTable(path, required)
	if err != nil {
		return 0, err
	}

	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO lineup_tendencies (key, star_player, archetype1, archetype2, archetype3, archetype4,
    fta_per48, three_pa_per48, points_off_turnovers, second_chance_points,
    points_in_paint, pct_midrange_points, pct_unassisted_points, pct_fastbreak_points, seq)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i := range t.rows {
		star, archetypes := t.str(i, "star_player"), comboArchetypes(t, i)
		args := []any{models.ComboKey(star, archetypes), star,
			archetypes[0], archetypes[1], archetypes[2], archetypes[3]}
		// Blank metric cells load as NULL; the lineup repository leaves
		// them out of the metric map so partial rows drop out of the
		// radar comparison instead of failing the load.
		for _, name := range metricNames {
			v, err := t.optFloat(i, name)
			if err != nil {
				return 0, err
			}
			if v == nil {
				args = append(args, nil)
			} else {
				args = append(args, *v)
			}
		}
		args = append(args, i)
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			return 0, fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return len(t.rows), tx.Commit()
}

func (s *Store) loadShots(ctx context.Context, path string) (int, error) {
	required := append([]string{
		"star_player", "loc_x", "loc_y", "shot_made_flag",
		"shot_zone_basic", "shot_zone_area", "shot_zone_range",
	}, archetypeColumns...)
	t, err := readTable(path, required)
	if err != nil {
		return 0, err
	}
	hasPeriod := t.has("period")

	tx, err := s.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO shots (star_player, lineup_key, loc_x, loc_y, made, zone_basic, zone_area, zone_range, period)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for i := range t.rows {
		star := t.str(i, "star_player")
		x, err := t.float(i, "loc_x")
		if err != nil {
			return 0, err
		}
		y, err := t.float(i, "loc_y")
		if err != nil {
			return 0, err
		}
		made, err := t.madeFlag(i, "shot_made_flag")
		if err != nil {
			return 0, err
		}
		var period any
		if hasPeriod {
			if p, err := t.int(i, "period"); err == nil {
				period = p
			}
		}
		if _, err := stmt.ExecContext(ctx,
			star, models.ComboKey(star, comboArchetypes(t, i)), x, y, made,
			t.str(i, "shot_zone_basic"), t.str(i, "shot_zone_area"), t.str(i, "shot_zone_range"),
			period,
		); err != nil {
			return 0, fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	return len(t.rows), tx.Commit()
}

func comboArchetypes(t *table, row int) [4]string {
	var out [4]string
	for i, col := range archetypeColumns {
		out[i] = t.str(row, col)
	}
	return out
}
