// Package stats derives display statistics from the loaded tables: per-zone
// shooting lines for the shot chart and min-max normalized tendency metrics
// for the radar comparison.
package stats

import (
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/court"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
)

// ZoneBreakdown is the per-zone aggregation of one player's shot records.
// Zones holds one entry per configured zone in stable zone order, including
// zones the player never attempted from (Attempts == 0, Valid == false).
type ZoneBreakdown struct {
	Zones        []models.ZoneStat `json:"zones"`
	Total        int               `json:"total"`
	Unclassified int               `json:"unclassified"`
}

// ByName returns the stat for a zone name, if present.
func (b ZoneBreakdown) ByName(name string) (models.ZoneStat, bool) {
	for _, z := range b.Zones {
		if z.Zone == name {
			return z, true
		}
	}
	return models.ZoneStat{}, false
}

// AggregateZones buckets shots into the configured zones by their
// pre-assigned classifier triple and computes made/attempt counts, shooting
// percentage and frequency per zone.
//
// Frequency is zone attempts over the player's classified attempts, so
// frequencies sum to 1 whenever any shot classified. A shot whose triple
// matches no configured zone counts toward the Unclassified bucket instead
// of being dropped. The result depends only on the input: same shots and
// zones always produce the same breakdown.
func AggregateZones(shots []models.ShotRecord, zones []court.Zone) ZoneBreakdown {
	type counts struct{ made, attempts int }
	byKey := make(map[court.ZoneKey]*counts, len(zones))
	for _, z := range zones {
		byKey[z.Key] = &counts{}
	}

	classified := 0
	unclassified := 0
	for _, s := range shots {
		key := court.ZoneKey{Basic: s.ZoneBasic, Area: s.ZoneArea, Range: s.ZoneRange}
		c, ok := byKey[key]
		if !ok {
			unclassified++
			continue
		}
		classified++
		c.attempts++
		if s.Made {
			c.made++
		}
	}

	out := ZoneBreakdown{
		Zones:        make([]models.ZoneStat, 0, len(zones)),
		Total:        len(shots),
		Unclassified: unclassified,
	}
	for _, z := range zones {
		c := byKey[z.Key]
		stat := models.ZoneStat{
			Zone:     z.Name,
			Made:     c.made,
			Attempts: c.attempts,
		}
		if c.attempts > 0 {
			stat.Valid = true
			stat.Pct = float64(c.made) / float64(c.attempts)
			stat.Frequency = float64(c.attempts) / float64(classified)
		}
		out.Zones = append(out.Zones, stat)
	}
	return out
}
