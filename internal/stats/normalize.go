package stats

import (
	"fmt"
	"sort"

	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
)

// Metric describes one tendency metric column.
type Metric struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Desc  string `json:"description"`
	AsPct bool   `json:"as_pct"`
}

// TendencyMetrics is the fixed set of 8 play-style metrics compared on the
// radar chart, in spoke order.
var TendencyMetrics = []Metric{
	{Name: "fta_per48", Label: "FTA/48", Desc: "Free Throw Attempts per 48 min"},
	{Name: "three_pa_per48", Label: "3PA/48", Desc: "3-Point Attempts per 48 min"},
	{Name: "points_off_turnovers", Label: "Points Off TO", Desc: "Points from Turnovers"},
	{Name: "second_chance_points", Label: "2nd Chance Pts", Desc: "Second Chance Points"},
	{Name: "points_in_paint", Label: "Paint Points", Desc: "Points in the Paint"},
	{Name: "pct_midrange_points", Label: "Midrange %", Desc: "% Points from Midrange", AsPct: true},
	{Name: "pct_unassisted_points", Label: "Unassisted %", Desc: "% Unassisted Points", AsPct: true},
	{Name: "pct_fastbreak_points", Label: "Fastbreak %", Desc: "% Fastbreak Points", AsPct: true},
}

// MetricNames returns the metric column names in spoke order.
func MetricNames() []string {
	names := make([]string, len(TendencyMetrics))
	for i, m := range TendencyMetrics {
		names[i] = m.Name
	}
	return names
}

// NormalizedRow is one lineup combo augmented with per-metric normalized
// values and percentile ranks.
type NormalizedRow struct {
	Key     string                            `json:"key"`
	Metrics map[string]models.NormalizedValue `json:"metrics"`
}

// Normalize min-max rescales the requested metrics across every given row
// and attaches a percentile rank per value.
//
// The min/max range covers the whole population, not any selected subset, so
// normalized values stay comparable across selections. Percentile is the
// row's position in a stable ascending sort of the metric, scaled to
// [0,100]; ties keep first-seen order, so equal values earn increasing
// percentiles in row order. With a single row, or when every value of a
// metric is identical (max == min), normalized is fixed at 0.5 and
// percentile at 50 rather than dividing by zero.
//
// Rows missing any requested metric are excluded from the result entirely:
// a partial row cannot be compared spoke-for-spoke.
func Normalize(rows []models.LineupTendencies, metricNames []string) []NormalizedRow {
	complete := rows[:0:0]
	for _, r := range rows {
		if hasAll(r, metricNames) {
			complete = append(complete, r)
		}
	}
	n := len(complete)
	if n == 0 {
		return nil
	}

	out := make([]NormalizedRow, n)
	for i, r := range complete {
		out[i] = NormalizedRow{
			Key:     r.Key(),
			Metrics: make(map[string]models.NormalizedValue, len(metricNames)),
		}
	}

	for _, name := range metricNames {
		minV, maxV := complete[0].Metrics[name], complete[0].Metrics[name]
		for _, r := range complete[1:] {
			v := r.Metrics[name]
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}

		// Stable ascending sort of row indices; ties keep row order.
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return complete[order[a]].Metrics[name] < complete[order[b]].Metrics[name]
		})

		for rank, idx := range order {
			raw := complete[idx].Metrics[name]
			nv := models.NormalizedValue{Raw: raw, Normalized: 0.5, Percentile: 50}
			if maxV > minV && n > 1 {
				nv.Normalized = (raw - minV) / (maxV - minV)
				nv.Percentile = float64(rank) / float64(n-1) * 100
			}
			out[idx].Metrics[name] = nv
		}
	}
	return out
}

func hasAll(row models.LineupTendencies, metricNames []string) bool {
	for _, name := range metricNames {
		if _, ok := row.Metrics[name]; !ok {
			return false
		}
	}
	return true
}

// FormatValue renders a raw metric value for display, honoring the metric's
// percentage flag.
func FormatValue(m Metric, v float64) string {
	if m.AsPct {
		return fmt.Sprintf("%.1f%%", v*100)
	}
	return fmt.Sprintf("%.1f", v)
}
