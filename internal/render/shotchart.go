package render

import (
	"fmt"

	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/court"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/stats"
)

const (
	madeColor = "#1A9850"
	missColor = "#D73027"

	// Zone fill opacity range; the least-used zone fades, the most-used
	// zone stands out.
	minZoneOpacity = 0.15
	maxZoneOpacity = 0.95
)

// ShotChart is the display description of the shot chart in either mode.
// Points is populated in point mode, Zones in zone mode.
type ShotChart struct {
	Mode   models.ChartMode `json:"mode"`
	Court  court.Dimensions `json:"court"`
	Points []ShotPoint      `json:"points,omitempty"`
	Zones  []ZoneShape      `json:"zones,omitempty"`

	Total        int `json:"total_shots"`
	Unclassified int `json:"unclassified,omitempty"`
}

// ShotPoint is one shot marker.
type ShotPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Made  bool    `json:"made"`
	Color string  `json:"color"`
}

// ZoneShape is one shaded court zone. Fill and Opacity are empty/zero for
// zones without attempts, which the client leaves uncolored.
type ZoneShape struct {
	Name    string          `json:"name"`
	Shape   court.ShapeType `json:"shape"`
	Rect    *RectBounds     `json:"rect,omitempty"`
	Corners []court.Point   `json:"corners,omitempty"`
	Arc     *ArcShape       `json:"arc,omitempty"`
	LabelX  float64         `json:"label_x"`
	LabelY  float64         `json:"label_y"`

	Stat    models.ZoneStat `json:"stat"`
	Display string          `json:"display"` // "66.7%" or "NA"
	Fill    string          `json:"fill,omitempty"`
	Opacity float64         `json:"opacity,omitempty"`
}

// RectBounds is an axis-aligned rectangle.
type RectBounds struct {
	XMin float64 `json:"x_min"`
	YMin float64 `json:"y_min"`
	XMax float64 `json:"x_max"`
	YMax float64 `json:"y_max"`
}

// ArcShape is a circular arc sector, angles in degrees.
type ArcShape struct {
	CenterX    float64 `json:"center_x"`
	CenterY    float64 `json:"center_y"`
	Radius     float64 `json:"radius"`
	AngleStart float64 `json:"angle_start"`
	AngleEnd   float64 `json:"angle_end"`
}

// PointShotChart renders individual shot markers colored by outcome.
func PointShotChart(shots []models.ShotRecord) ShotChart {
	out := ShotChart{
		Mode:   models.ChartModePoint,
		Court:  court.Dims(),
		Points: make([]ShotPoint, 0, len(shots)),
		Total:  len(shots),
	}
	for _, s := range shots {
		p := ShotPoint{X: s.LocX, Y: s.LocY, Made: s.Made, Color: missColor}
		if s.Made {
			p.Color = madeColor
		}
		out.Points = append(out.Points, p)
	}
	return out
}

// ZoneShotChart renders the zone partition shaded by shooting percentage,
// with opacity scaled by how often the player shoots from each zone. Zones
// without attempts display "NA" and carry no fill.
func ZoneShotChart(breakdown stats.ZoneBreakdown, zones []court.Zone) ShotChart {
	out := ShotChart{
		Mode:         models.ChartModeZone,
		Court:        court.Dims(),
		Zones:        make([]ZoneShape, 0, len(zones)),
		Total:        breakdown.Total,
		Unclassified: breakdown.Unclassified,
	}

	maxFreq := 0.0
	for _, z := range breakdown.Zones {
		if z.Valid && z.Frequency > maxFreq {
			maxFreq = z.Frequency
		}
	}

	for i, z := range zones {
		stat := breakdown.Zones[i]
		shape := ZoneShape{
			Name:    z.Name,
			Shape:   z.Shape,
			LabelX:  z.LabelX,
			LabelY:  z.LabelY,
			Stat:    stat,
			Display: "NA",
		}
		switch z.Shape {
		case court.ShapeRect:
			shape.Rect = &RectBounds{XMin: z.XMin, YMin: z.YMin, XMax: z.XMax, YMax: z.YMax}
		case court.ShapePolygon:
			shape.Corners = z.Corners
		case court.ShapeArc:
			shape.Arc = &ArcShape{
				CenterX: z.CenterX, CenterY: z.CenterY, Radius: z.Radius,
				AngleStart: z.AngleStart, AngleEnd: z.AngleEnd,
			}
		}
		if stat.Valid {
			shape.Display = formatPct(stat.Pct)
			shape.Fill = PctColor(stat.Pct)
			shape.Opacity = minZoneOpacity
			if maxFreq > 0 {
				shape.Opacity = minZoneOpacity + (maxZoneOpacity-minZoneOpacity)*(stat.Frequency/maxFreq)
			}
		}
		out.Zones = append(out.Zones, shape)
	}
	return out
}

// formatPct renders a shooting percentage with one decimal, e.g. "66.7%".
func formatPct(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct*100)
}
