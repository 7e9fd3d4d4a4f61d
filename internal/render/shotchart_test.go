package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/court"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/render"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/stats"
)

func TestPointShotChart(t *testing.T) {
	shots := []models.ShotRecord{
		{LocX: 10, LocY: 20, Made: true},
		{LocX: -30, LocY: 150, Made: false},
	}

	chart := render.PointShotChart(shots)

	assert.Equal(t, models.ChartModePoint, chart.Mode)
	assert.Equal(t, 2, chart.Total)
	require.Len(t, chart.Points, 2)
	assert.Equal(t, 10.0, chart.Points[0].X)
	assert.NotEqual(t, chart.Points[0].Color, chart.Points[1].Color, "made and missed shots get distinct colors")
	assert.Nil(t, chart.Zones)
}

func TestZoneShotChart_ShadesAttemptedZones(t *testing.T) {
	shots := []models.ShotRecord{
		{Made: true, ZoneBasic: "Restricted Area", ZoneArea: "Center(C)", ZoneRange: "Less Than 8 ft."},
		{Made: true, ZoneBasic: "Restricted Area", ZoneArea: "Center(C)", ZoneRange: "Less Than 8 ft."},
		{Made: false, ZoneBasic: "Mid-Range", ZoneArea: "Center(C)", ZoneRange: "8-16 ft."},
	}
	zones := court.Zones()
	chart := render.ZoneShotChart(stats.AggregateZones(shots, zones), zones)

	assert.Equal(t, models.ChartModeZone, chart.Mode)
	require.Len(t, chart.Zones, len(zones))

	var ra, mid render.ZoneShape
	for _, z := range chart.Zones {
		switch z.Name {
		case "Restricted Area":
			ra = z
		case "Mid-Range 8-16ft Center":
			mid = z
		}
	}

	assert.Equal(t, "100.0%", ra.Display)
	assert.NotEmpty(t, ra.Fill)
	assert.Equal(t, "0.0%", mid.Display)

	// RA is shot from twice as often, so it shades stronger.
	assert.Greater(t, ra.Opacity, mid.Opacity)
}

func TestZoneShotChart_EmptyZonesShowNA(t *testing.T) {
	zones := court.Zones()
	chart := render.ZoneShotChart(stats.AggregateZones(nil, zones), zones)

	for _, z := range chart.Zones {
		assert.Equal(t, "NA", z.Display)
		assert.Empty(t, z.Fill, "zone %q without attempts must not carry a fill", z.Name)
		assert.Zero(t, z.Opacity)
	}
}

func TestZoneShotChart_OpacityBounds(t *testing.T) {
	shots := []models.ShotRecord{
		{Made: true, ZoneBasic: "Restricted Area", ZoneArea: "Center(C)", ZoneRange: "Less Than 8 ft."},
		{Made: false, ZoneBasic: "Mid-Range", ZoneArea: "Center(C)", ZoneRange: "8-16 ft."},
		{Made: false, ZoneBasic: "Backcourt", ZoneArea: "Back Court(BC)", ZoneRange: "Back Court Shot"},
	}
	zones := court.Zones()
	chart := render.ZoneShotChart(stats.AggregateZones(shots, zones), zones)

	for _, z := range chart.Zones {
		if !z.Stat.Valid {
			continue
		}
		assert.GreaterOrEqual(t, z.Opacity, 0.15)
		assert.LessOrEqual(t, z.Opacity, 0.95)
	}
}

func TestZoneShotChart_CarriesShapeGeometry(t *testing.T) {
	zones := court.Zones()
	chart := render.ZoneShotChart(stats.AggregateZones(nil, zones), zones)

	for _, z := range chart.Zones {
		switch z.Shape {
		case court.ShapeRect:
			assert.NotNil(t, z.Rect, "rect zone %q needs bounds", z.Name)
		case court.ShapePolygon:
			assert.NotEmpty(t, z.Corners, "polygon zone %q needs corners", z.Name)
		case court.ShapeArc:
			assert.NotNil(t, z.Arc, "arc zone %q needs arc parameters", z.Name)
		}
	}
}
