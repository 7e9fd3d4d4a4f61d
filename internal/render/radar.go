package render

import (
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/stats"
)

// Radar is the display description of the tendency comparison: an octagon
// with one spoke per metric and one closed polygon per selected combo.
type Radar struct {
	Spokes   []RadarSpoke   `json:"spokes"`
	Polygons []RadarPolygon `json:"polygons"`
	// Skipped lists combos excluded because their tendency row is missing
	// one or more metrics.
	Skipped []string `json:"skipped,omitempty"`
}

// RadarSpoke is one axis of the octagon.
type RadarSpoke struct {
	Metric string `json:"metric"`
	Label  string `json:"label"`
	Desc   string `json:"description"`
}

// RadarPolygon is one lineup combo's outline. Values, Percentiles and
// Display are indexed by spoke; the client closes the polygon by repeating
// the first vertex.
type RadarPolygon struct {
	Key         string      `json:"key"`
	Color       LineupColor `json:"color"`
	Values      []float64   `json:"values"`      // normalized, in [0,1]
	Percentiles []float64   `json:"percentiles"` // in [0,100]
	Display     []string    `json:"display"`     // formatted raw values
}

// TendencyRadar renders one polygon per selected combo key, in selection
// order, coloring from the fixed palette cyclically. Keys without a complete
// normalized row are reported in Skipped rather than failing the view.
func TendencyRadar(selectedKeys []string, rows []stats.NormalizedRow) Radar {
	byKey := make(map[string]stats.NormalizedRow, len(rows))
	for _, r := range rows {
		byKey[r.Key] = r
	}

	out := Radar{Spokes: make([]RadarSpoke, len(stats.TendencyMetrics))}
	for i, m := range stats.TendencyMetrics {
		out.Spokes[i] = RadarSpoke{Metric: m.Name, Label: m.Label, Desc: m.Desc}
	}

	for _, key := range selectedKeys {
		row, ok := byKey[key]
		if !ok {
			out.Skipped = append(out.Skipped, key)
			continue
		}
		poly := RadarPolygon{
			Key:         key,
			Color:       PaletteColor(len(out.Polygons)),
			Values:      make([]float64, len(stats.TendencyMetrics)),
			Percentiles: make([]float64, len(stats.TendencyMetrics)),
			Display:     make([]string, len(stats.TendencyMetrics)),
		}
		for i, m := range stats.TendencyMetrics {
			nv := row.Metrics[m.Name]
			poly.Values[i] = nv.Normalized
			poly.Percentiles[i] = nv.Percentile
			poly.Display[i] = stats.FormatValue(m, nv.Raw)
		}
		out.Polygons = append(out.Polygons, poly)
	}
	return out
}
