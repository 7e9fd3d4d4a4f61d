package render

import (
	"math"
	"sort"

	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
)

// EfficiencyScatter is the display description of the 3-D efficiency view:
// one point per selected combo at (offensive, defensive, net), colored by a
// diverging scale centered at net rating zero. Medians come from the whole
// population so reference planes stay put as the selection changes.
type EfficiencyScatter struct {
	Points          []EfficiencyPoint `json:"points"`
	MedianOffensive float64           `json:"median_offensive"`
	MedianDefensive float64           `json:"median_defensive"`
}

// EfficiencyPoint is one lineup combo in rating space.
type EfficiencyPoint struct {
	Key             string  `json:"key"`
	Label           string  `json:"label"`
	OffensiveRating float64 `json:"offensive_rating"`
	DefensiveRating float64 `json:"defensive_rating"`
	NetRating       float64 `json:"net_rating"`
	Color           string  `json:"color"`
}

// Efficiency renders the selected combos against the full population. The
// color scale saturates at the population's largest absolute net rating, so
// point colors are comparable across selections.
func Efficiency(selected, population []models.LineupEfficiency) EfficiencyScatter {
	scale := 0.0
	for _, l := range population {
		if a := math.Abs(l.NetRating); a > scale {
			scale = a
		}
	}

	out := EfficiencyScatter{
		Points:          make([]EfficiencyPoint, 0, len(selected)),
		MedianOffensive: median(population, func(l models.LineupEfficiency) float64 { return l.OffensiveRating }),
		MedianDefensive: median(population, func(l models.LineupEfficiency) float64 { return l.DefensiveRating }),
	}
	for _, l := range selected {
		out.Points = append(out.Points, EfficiencyPoint{
			Key:             l.Key(),
			Label:           l.Label(),
			OffensiveRating: l.OffensiveRating,
			DefensiveRating: l.DefensiveRating,
			NetRating:       l.NetRating,
			Color:           DivergingColor(l.NetRating, scale),
		})
	}
	return out
}

func median(rows []models.LineupEfficiency, value func(models.LineupEfficiency) float64) float64 {
	if len(rows) == 0 {
		return 0
	}
	vals := make([]float64, len(rows))
	for i, r := range rows {
		vals[i] = value(r)
	}
	sort.Float64s(vals)
	mid := len(vals) / 2
	if len(vals)%2 == 0 {
		return (vals[mid-1] + vals[mid]) / 2
	}
	return vals[mid]
}
