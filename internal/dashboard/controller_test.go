package dashboard_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/dashboard"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
)

// stubDeriver serves canned view data and counts derivations so tests can
// assert exactly which views were rebuilt.
type stubDeriver struct {
	players map[string][]string // player -> combo keys

	profileCalls, shotCalls, effCalls, radarCalls int
}

func newStubDeriver() *stubDeriver {
	return &stubDeriver{
		players: map[string][]string{
			"Jayson Tatum": {"t1", "t2", "t3"},
			"Luka Doncic":  {"l1", "l2"},
		},
	}
}

func (d *stubDeriver) PlayerExists(ctx context.Context, name string) (bool, error) {
	_, ok := d.players[name]
	return ok, nil
}

func (d *stubDeriver) DefaultLineups(ctx context.Context, star string, n int) ([]string, error) {
	keys := d.players[star]
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys, nil
}

func (d *stubDeriver) ProfileView(ctx context.Context, star string) dashboard.Derivation {
	d.profileCalls++
	return dashboard.OK("profile:" + star)
}

func (d *stubDeriver) ShotChartView(ctx context.Context, star string, keys []string, mode models.ChartMode) dashboard.Derivation {
	d.shotCalls++
	return dashboard.OK(string(mode))
}

func (d *stubDeriver) EfficiencyView(ctx context.Context, star string, keys []string) dashboard.Derivation {
	d.effCalls++
	return dashboard.OK(len(keys))
}

func (d *stubDeriver) RadarView(ctx context.Context, star string, keys []string) dashboard.Derivation {
	d.radarCalls++
	return dashboard.OK(len(keys))
}

func newTestController(t *testing.T) (*dashboard.Controller, *stubDeriver) {
	t.Helper()
	views := newStubDeriver()
	ctl, err := dashboard.NewController(context.Background(), views, "Jayson Tatum")
	require.NoError(t, err)
	return ctl, views
}

func TestNewController_SeedsDefaultSelection(t *testing.T) {
	ctl, views := newTestController(t)

	snap := ctl.Snapshot()
	assert.Equal(t, dashboard.PhaseIdle, snap.Phase)
	assert.Equal(t, "Jayson Tatum", snap.State.Player)
	assert.Equal(t, []string{"t1", "t2"}, snap.State.Lineups)
	assert.Equal(t, models.ChartModePoint, snap.State.Mode)
	assert.False(t, snap.Advisory)

	assert.Equal(t, dashboard.StatusOK, snap.Profile.Status)
	assert.Equal(t, dashboard.StatusOK, snap.ShotChart.Status)
	assert.Equal(t, dashboard.StatusOK, snap.Efficiency.Status)
	assert.Equal(t, dashboard.StatusOK, snap.Radar.Status)

	assert.Equal(t, 1, views.profileCalls)
	assert.Equal(t, 1, views.shotCalls)
	assert.Equal(t, 1, views.effCalls)
	assert.Equal(t, 1, views.radarCalls)
}

func TestApply_UnknownPlayerIgnored(t *testing.T) {
	ctl, _ := newTestController(t)
	before := ctl.Snapshot()

	after := ctl.Apply(context.Background(), dashboard.SelectPlayer{Name: "Nobody"})

	assert.Equal(t, before, after, "unknown player should leave the selection untouched")
}

func TestApply_SamePlayerIsNoOp(t *testing.T) {
	ctl, views := newTestController(t)
	calls := views.profileCalls

	ctl.Apply(context.Background(), dashboard.SelectPlayer{Name: "Jayson Tatum"})

	assert.Equal(t, calls, views.profileCalls, "reselecting the active player should not recompute")
}

func TestApply_PlayerSwitchReseedsLineups(t *testing.T) {
	ctl, views := newTestController(t)

	snap := ctl.Apply(context.Background(), dashboard.SelectPlayer{Name: "Luka Doncic"})

	assert.Equal(t, "Luka Doncic", snap.State.Player)
	assert.Equal(t, []string{"l1", "l2"}, snap.State.Lineups)
	assert.Equal(t, dashboard.PhaseIdle, snap.Phase)
	assert.Equal(t, 2, views.profileCalls)
	assert.Equal(t, 2, views.effCalls)
	assert.Equal(t, 2, views.radarCalls)
}

func TestApply_TooFewLineupsIsInvalid(t *testing.T) {
	ctl, _ := newTestController(t)

	snap := ctl.Apply(context.Background(), dashboard.SelectLineups{Keys: []string{"t1"}})

	assert.Equal(t, dashboard.PhaseInvalid, snap.Phase)
	assert.Equal(t, dashboard.StatusEmpty, snap.ShotChart.Status)
	assert.Equal(t, dashboard.StatusEmpty, snap.Efficiency.Status)
	assert.Equal(t, dashboard.StatusEmpty, snap.Radar.Status)
	assert.NotEmpty(t, snap.ShotChart.Reason)

	// Profile depends only on the player and stays rendered.
	assert.Equal(t, dashboard.StatusOK, snap.Profile.Status)
}

func TestApply_InvalidThenValidRecovers(t *testing.T) {
	ctl, _ := newTestController(t)

	ctl.Apply(context.Background(), dashboard.SelectLineups{Keys: []string{"t1"}})
	snap := ctl.Apply(context.Background(), dashboard.SelectLineups{Keys: []string{"t1", "t2", "t3"}})

	assert.Equal(t, dashboard.PhaseIdle, snap.Phase)
	assert.Equal(t, dashboard.StatusOK, snap.ShotChart.Status)
	assert.Equal(t, dashboard.StatusOK, snap.Radar.Status)
}

func TestApply_OversizeSelectionIsAdvisory(t *testing.T) {
	ctl, _ := newTestController(t)

	snap := ctl.Apply(context.Background(), dashboard.SelectLineups{
		Keys: []string{"t1", "t2", "t3", "t4", "t5", "t6"},
	})

	assert.Equal(t, dashboard.PhaseIdle, snap.Phase, "oversize selections still render")
	assert.True(t, snap.Advisory)
	assert.Equal(t, dashboard.StatusOK, snap.Radar.Status)
}

func TestApply_ModeToggleOnlyRebuildsShotChart(t *testing.T) {
	ctl, views := newTestController(t)
	effCalls, radarCalls := views.effCalls, views.radarCalls

	snap := ctl.Apply(context.Background(), dashboard.SelectChartMode{Mode: models.ChartModeZone})

	assert.Equal(t, models.ChartModeZone, snap.State.Mode)
	assert.Equal(t, "zone", snap.ShotChart.Data)
	assert.Equal(t, effCalls, views.effCalls, "mode change must not rebuild efficiency")
	assert.Equal(t, radarCalls, views.radarCalls, "mode change must not rebuild radar")
}

func TestApply_SameModeIsNoOp(t *testing.T) {
	ctl, views := newTestController(t)
	calls := views.shotCalls

	ctl.Apply(context.Background(), dashboard.SelectChartMode{Mode: models.ChartModePoint})

	assert.Equal(t, calls, views.shotCalls)
}

func TestApply_InvalidModeIgnored(t *testing.T) {
	ctl, _ := newTestController(t)
	before := ctl.Snapshot()

	after := ctl.Apply(context.Background(), dashboard.SelectChartMode{Mode: "heatmap"})

	assert.Equal(t, before, after)
}

func TestApply_LineupOrderPreserved(t *testing.T) {
	ctl, _ := newTestController(t)

	snap := ctl.Apply(context.Background(), dashboard.SelectLineups{Keys: []string{"t3", "t1"}})

	assert.Equal(t, []string{"t3", "t1"}, snap.State.Lineups, "selection order drives palette assignment")
}

func TestSnapshot_StateIsACopy(t *testing.T) {
	ctl, _ := newTestController(t)

	snap := ctl.Snapshot()
	snap.State.Lineups[0] = "mutated"

	assert.Equal(t, "t1", ctl.Snapshot().State.Lineups[0], "snapshot must not alias controller state")
}
