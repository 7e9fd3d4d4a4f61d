package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/dashboard"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/render"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/services"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/testutil/mocks"
)

func newServiceWithMocks() (services.DashboardService, *mocks.MockPlayerRepository, *mocks.MockShotRepository, *mocks.MockLineupRepository) {
	players := new(mocks.MockPlayerRepository)
	shots := new(mocks.MockShotRepository)
	lineups := new(mocks.MockLineupRepository)
	return services.NewDashboardService(players, shots, lineups), players, shots, lineups
}

func lineupRow(star, archetype1 string, net float64) models.LineupEfficiency {
	return models.LineupEfficiency{
		StarPlayer:      star,
		Archetypes:      [4]string{archetype1, "B", "C", "D"},
		OffensiveRating: 110 + net,
		DefensiveRating: 110,
		NetRating:       net,
	}
}

func TestProfileView_OK(t *testing.T) {
	svc, players, _, _ := newServiceWithMocks()
	players.On("Get", mock.Anything, "Jayson Tatum").Return(&models.Player{
		Name: "Jayson Tatum",
		Team: "Boston Celtics",
	}, nil)

	d := svc.ProfileView(context.Background(), "Jayson Tatum")

	require.Equal(t, dashboard.StatusOK, d.Status)
	card, ok := d.Data.(render.ProfileCard)
	require.True(t, ok)
	assert.Equal(t, "/api/assets/player/Jayson%20Tatum", card.PhotoURL)
	assert.Equal(t, "/api/assets/team/Boston%20Celtics", card.LogoURL)
}

func TestProfileView_UnknownPlayerIsEmpty(t *testing.T) {
	svc, players, _, _ := newServiceWithMocks()
	players.On("Get", mock.Anything, "Nobody").Return(nil, nil)

	d := svc.ProfileView(context.Background(), "Nobody")

	assert.Equal(t, dashboard.StatusEmpty, d.Status)
	assert.NotEmpty(t, d.Reason)
}

func TestProfileView_RepositoryFailureIsContained(t *testing.T) {
	svc, players, _, _ := newServiceWithMocks()
	players.On("Get", mock.Anything, "Jayson Tatum").Return(nil, errors.New("db gone"))

	d := svc.ProfileView(context.Background(), "Jayson Tatum")

	assert.Equal(t, dashboard.StatusError, d.Status)
	assert.NotContains(t, d.Reason, "db gone", "internal details stay out of the placeholder")
}

func TestShotChartView_PointMode(t *testing.T) {
	svc, _, shots, _ := newServiceWithMocks()
	keys := []string{"k1", "k2"}
	shots.On("ListForPlayer", mock.Anything, "Jayson Tatum", keys).Return([]models.ShotRecord{
		{LocX: 1, LocY: 2, Made: true},
	}, nil)

	d := svc.ShotChartView(context.Background(), "Jayson Tatum", keys, models.ChartModePoint)

	require.Equal(t, dashboard.StatusOK, d.Status)
	chart, ok := d.Data.(render.ShotChart)
	require.True(t, ok)
	assert.Equal(t, models.ChartModePoint, chart.Mode)
	assert.Len(t, chart.Points, 1)
}

func TestShotChartView_PointModeNoShotsIsEmpty(t *testing.T) {
	svc, _, shots, _ := newServiceWithMocks()
	shots.On("ListForPlayer", mock.Anything, "Jayson Tatum", mock.Anything).Return([]models.ShotRecord{}, nil)

	d := svc.ShotChartView(context.Background(), "Jayson Tatum", []string{"k1", "k2"}, models.ChartModePoint)

	assert.Equal(t, dashboard.StatusEmpty, d.Status)
}

func TestShotChartView_ZoneModeRendersWithoutShots(t *testing.T) {
	svc, _, shots, _ := newServiceWithMocks()
	shots.On("ListForPlayer", mock.Anything, "Jayson Tatum", mock.Anything).Return([]models.ShotRecord{}, nil)

	d := svc.ShotChartView(context.Background(), "Jayson Tatum", []string{"k1", "k2"}, models.ChartModeZone)

	require.Equal(t, dashboard.StatusOK, d.Status, "zone mode shows the NA grid instead of an empty state")
	chart := d.Data.(render.ShotChart)
	assert.NotEmpty(t, chart.Zones)
	for _, z := range chart.Zones {
		assert.Equal(t, "NA", z.Display)
	}
}

func TestShotChartView_RepositoryFailureIsContained(t *testing.T) {
	svc, _, shots, _ := newServiceWithMocks()
	shots.On("ListForPlayer", mock.Anything, "Jayson Tatum", mock.Anything).Return(nil, errors.New("db gone"))

	d := svc.ShotChartView(context.Background(), "Jayson Tatum", []string{"k1", "k2"}, models.ChartModePoint)

	assert.Equal(t, dashboard.StatusError, d.Status)
}

func TestEfficiencyView_SelectionOrderPreserved(t *testing.T) {
	svc, _, _, lineups := newServiceWithMocks()
	population := []models.LineupEfficiency{
		lineupRow("Jayson Tatum", "A1", 10),
		lineupRow("Jayson Tatum", "A2", 2),
		lineupRow("Jayson Tatum", "A3", -3),
	}
	lineups.On("Efficiency", mock.Anything, models.LineupFilter{StarPlayer: "Jayson Tatum"}).Return(population, nil)

	selected := []string{population[2].Key(), population[0].Key()}
	d := svc.EfficiencyView(context.Background(), "Jayson Tatum", selected)

	require.Equal(t, dashboard.StatusOK, d.Status)
	scatter := d.Data.(render.EfficiencyScatter)
	require.Len(t, scatter.Points, 2)
	assert.Equal(t, population[2].Key(), scatter.Points[0].Key)
	assert.Equal(t, population[0].Key(), scatter.Points[1].Key)
}

func TestEfficiencyView_NoMatchingKeysIsEmpty(t *testing.T) {
	svc, _, _, lineups := newServiceWithMocks()
	lineups.On("Efficiency", mock.Anything, mock.Anything).Return([]models.LineupEfficiency{
		lineupRow("Jayson Tatum", "A1", 10),
	}, nil)

	d := svc.EfficiencyView(context.Background(), "Jayson Tatum", []string{"stale | key"})

	assert.Equal(t, dashboard.StatusEmpty, d.Status)
}

func TestRadarView_SkipsPartialRows(t *testing.T) {
	svc, _, _, lineups := newServiceWithMocks()

	full := models.LineupTendencies{
		StarPlayer: "Jayson Tatum",
		Archetypes: [4]string{"A1", "B", "C", "D"},
		Metrics:    fullMetrics(1),
	}
	other := models.LineupTendencies{
		StarPlayer: "Jayson Tatum",
		Archetypes: [4]string{"A2", "B", "C", "D"},
		Metrics:    fullMetrics(2),
	}
	partial := models.LineupTendencies{
		StarPlayer: "Jayson Tatum",
		Archetypes: [4]string{"A3", "B", "C", "D"},
		Metrics:    map[string]float64{"fta_per48": 10},
	}
	lineups.On("Tendencies", mock.Anything, "Jayson Tatum").
		Return([]models.LineupTendencies{full, other, partial}, nil)

	d := svc.RadarView(context.Background(), "Jayson Tatum", []string{full.Key(), partial.Key()})

	require.Equal(t, dashboard.StatusOK, d.Status)
	radar := d.Data.(render.Radar)
	require.Len(t, radar.Polygons, 1)
	assert.Equal(t, full.Key(), radar.Polygons[0].Key)
	assert.Equal(t, []string{partial.Key()}, radar.Skipped)
}

func TestRadarView_NoCompleteRowsIsEmpty(t *testing.T) {
	svc, _, _, lineups := newServiceWithMocks()
	lineups.On("Tendencies", mock.Anything, "Jayson Tatum").Return([]models.LineupTendencies{}, nil)

	d := svc.RadarView(context.Background(), "Jayson Tatum", []string{"k1"})

	assert.Equal(t, dashboard.StatusEmpty, d.Status)
}

func TestDefaultLineups_Truncates(t *testing.T) {
	svc, _, _, lineups := newServiceWithMocks()
	lineups.On("ComboKeys", mock.Anything, "Jayson Tatum").Return([]string{"k1", "k2", "k3"}, nil)

	keys, err := svc.DefaultLineups(context.Background(), "Jayson Tatum", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"k1", "k2"}, keys)
}

func TestPlayerExists(t *testing.T) {
	svc, players, _, _ := newServiceWithMocks()
	players.On("Get", mock.Anything, "Jayson Tatum").Return(&models.Player{Name: "Jayson Tatum"}, nil)
	players.On("Get", mock.Anything, "Nobody").Return(nil, nil)

	ok, err := svc.PlayerExists(context.Background(), "Jayson Tatum")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.PlayerExists(context.Background(), "Nobody")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLineupOptions(t *testing.T) {
	svc, _, _, lineups := newServiceWithMocks()
	row := lineupRow("Jayson Tatum", "A1", 10)
	lineups.On("Efficiency", mock.Anything, models.LineupFilter{StarPlayer: "Jayson Tatum"}).
		Return([]models.LineupEfficiency{row}, nil)

	options, err := svc.LineupOptions(context.Background(), "Jayson Tatum")
	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, row.Key(), options[0].Key)
	assert.Equal(t, "A1, B, C, D", options[0].Label)
	assert.Equal(t, 10.0, options[0].NetRating)
}

func fullMetrics(base float64) map[string]float64 {
	names := []string{
		"fta_per48", "three_pa_per48", "points_off_turnovers", "second_chance_points",
		"points_in_paint", "pct_midrange_points", "pct_unassisted_points", "pct_fastbreak_points",
	}
	m := make(map[string]float64, len(names))
	for i, n := range names {
		m[n] = base + float64(i)
	}
	return m
}
