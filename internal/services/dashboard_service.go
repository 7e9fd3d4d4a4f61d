package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/court"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/dashboard"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/errors"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/logger"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/render"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/repository"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/stats"
)

// LineupOption is one entry of the lineup multi-selector.
type LineupOption struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	NetRating float64 `json:"net_rating"`
}

// DashboardService derives the per-view display data the selection
// controller asks for, plus the selector option lists.
type DashboardService interface {
	dashboard.Deriver

	Players(ctx context.Context) ([]models.Player, error)
	LineupOptions(ctx context.Context, star string) ([]LineupOption, error)
}

type dashboardService struct {
	players repository.PlayerRepository
	shots   repository.ShotRepository
	lineups repository.LineupRepository
	zones   []court.Zone
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	players repository.PlayerRepository,
	shots repository.ShotRepository,
	lineups repository.LineupRepository,
) DashboardService {
	return &dashboardService{
		players: players,
		shots:   shots,
		lineups: lineups,
		zones:   court.Zones(),
	}
}

func (s *dashboardService) Players(ctx context.Context) ([]models.Player, error) {
	players, err := s.players.List(ctx)
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	return players, nil
}

func (s *dashboardService) LineupOptions(ctx context.Context, star string) ([]LineupOption, error) {
	rows, err := s.lineups.Efficiency(ctx, models.LineupFilter{StarPlayer: star})
	if err != nil {
		return nil, errors.NewInternalError(err)
	}
	options := make([]LineupOption, 0, len(rows))
	for _, l := range rows {
		options = append(options, LineupOption{
			Key:       l.Key(),
			Label:     l.Label(),
			NetRating: l.NetRating,
		})
	}
	return options, nil
}

func (s *dashboardService) PlayerExists(ctx context.Context, name string) (bool, error) {
	p, err := s.players.Get(ctx, name)
	if err != nil {
		return false, err
	}
	return p != nil, nil
}

func (s *dashboardService) DefaultLineups(ctx context.Context, star string, n int) ([]string, error) {
	keys, err := s.lineups.ComboKeys(ctx, star)
	if err != nil {
		return nil, err
	}
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys, nil
}

// Each view method below is its own failure boundary: whatever goes wrong is
// logged and folded into an error-state derivation, so one broken view never
// takes down its siblings.

func (s *dashboardService) ProfileView(ctx context.Context, star string) dashboard.Derivation {
	log := logger.FromContext(ctx)

	p, err := s.players.Get(ctx, star)
	if err != nil {
		log.Error("profile view failed: %v", errors.NewDerivationError("profile", err))
		return dashboard.Failed("player profile is unavailable")
	}
	if p == nil {
		return dashboard.Empty(fmt.Sprintf("no profile data for %s", star))
	}

	photoURL := "/api/assets/player/" + url.PathEscape(p.Name)
	logoURL := "/api/assets/team/" + url.PathEscape(p.Team)
	return dashboard.OK(render.PlayerProfile(*p, photoURL, logoURL))
}

func (s *dashboardService) ShotChartView(ctx context.Context, star string, keys []string, mode models.ChartMode) dashboard.Derivation {
	log := logger.FromContext(ctx)

	shots, err := s.shots.ListForPlayer(ctx, star, keys)
	if err != nil {
		log.Error("shot chart view failed: %v", errors.NewDerivationError("shot_chart", err))
		return dashboard.Failed("shot chart is unavailable")
	}

	switch mode {
	case models.ChartModeZone:
		// Zone mode renders even with zero shots: every zone reads "NA".
		breakdown := stats.AggregateZones(shots, s.zones)
		if breakdown.Unclassified > 0 {
			log.Warn("%d shots for %s matched no configured zone", breakdown.Unclassified, star)
		}
		return dashboard.OK(render.ZoneShotChart(breakdown, s.zones))
	default:
		if len(shots) == 0 {
			return dashboard.Empty(fmt.Sprintf("no shots recorded for %s in the selected lineups", star))
		}
		return dashboard.OK(render.PointShotChart(shots))
	}
}

func (s *dashboardService) EfficiencyView(ctx context.Context, star string, keys []string) dashboard.Derivation {
	log := logger.FromContext(ctx)

	population, err := s.lineups.Efficiency(ctx, models.LineupFilter{StarPlayer: star})
	if err != nil {
		log.Error("efficiency view failed: %v", errors.NewDerivationError("efficiency", err))
		return dashboard.Failed("efficiency landscape is unavailable")
	}
	if len(population) == 0 {
		return dashboard.Empty(fmt.Sprintf("no lineup data for %s", star))
	}

	// Selection order drives display order, so pick rows out of the
	// population by key rather than re-querying.
	byKey := make(map[string]models.LineupEfficiency, len(population))
	for _, l := range population {
		byKey[l.Key()] = l
	}
	selected := make([]models.LineupEfficiency, 0, len(keys))
	for _, k := range keys {
		if l, ok := byKey[k]; ok {
			selected = append(selected, l)
		}
	}
	if len(selected) == 0 {
		return dashboard.Empty("none of the selected lineups have efficiency data")
	}
	return dashboard.OK(render.Efficiency(selected, population))
}

func (s *dashboardService) RadarView(ctx context.Context, star string, keys []string) dashboard.Derivation {
	log := logger.FromContext(ctx)

	rows, err := s.lineups.Tendencies(ctx, star)
	if err != nil {
		log.Error("radar view failed: %v", errors.NewDerivationError("radar", err))
		return dashboard.Failed("tendency comparison is unavailable")
	}

	// Normalize against the player's whole lineup table so the radar stays
	// comparable across selections.
	normalized := stats.Normalize(rows, stats.MetricNames())
	radar := render.TendencyRadar(keys, normalized)
	if len(radar.Polygons) == 0 {
		return dashboard.Empty("no complete tendency data for the selected lineups")
	}
	return dashboard.OK(radar)
}
