package models

import "strings"

// Player is one row of the star-player table. Immutable after load.
type Player struct {
	Name      string `json:"name"`
	Height    string `json:"height"`
	Weight    int    `json:"weight"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	DraftYear string `json:"draft_year,omitempty"` // optional column
}

// ShotRecord is one shot attempt, with the zone classifier triple assigned
// upstream during raw-data preparation.
type ShotRecord struct {
	StarPlayer string  `json:"star_player"`
	LineupKey  string  `json:"lineup_key"`
	LocX       float64 `json:"loc_x"`
	LocY       float64 `json:"loc_y"`
	Made       bool    `json:"made"`
	ZoneBasic  string  `json:"zone_basic"`
	ZoneArea   string  `json:"zone_area"`
	ZoneRange  string  `json:"zone_range"`
	Period     int     `json:"period,omitempty"` // optional column
}

// LineupEfficiency holds the rating triple for one archetype combo.
type LineupEfficiency struct {
	StarPlayer      string    `json:"star_player"`
	Archetypes      [4]string `json:"archetypes"`
	OffensiveRating float64   `json:"offensive_rating"`
	DefensiveRating float64   `json:"defensive_rating"`
	NetRating       float64   `json:"net_rating"`
}

// Key returns the combo key: star and archetypes pipe-joined in order.
// The key is unique within a star player's lineup table.
func (l LineupEfficiency) Key() string {
	return ComboKey(l.StarPlayer, l.Archetypes)
}

// Label returns the teammate archetypes as a comma-joined display string.
func (l LineupEfficiency) Label() string {
	return strings.Join(l.Archetypes[:], ", ")
}

// LineupTendencies holds the 8 tendency metrics for one archetype combo.
// Metrics maps metric name to value; a combo with any metric missing is
// excluded from radar comparison.
type LineupTendencies struct {
	StarPlayer string             `json:"star_player"`
	Archetypes [4]string          `json:"archetypes"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Key returns the combo key for the tendency row.
func (l LineupTendencies) Key() string {
	return ComboKey(l.StarPlayer, l.Archetypes)
}

// ComboKey builds the canonical lineup combo identifier.
func ComboKey(star string, archetypes [4]string) string {
	parts := append([]string{star}, archetypes[:]...)
	return strings.Join(parts, " | ")
}

// ZoneStat is the derived per-zone shooting line for one player.
// Pct and Frequency are meaningful only when Attempts > 0; Valid reports
// that, and the display layer renders "NA" otherwise.
type ZoneStat struct {
	Zone      string  `json:"zone"`
	Made      int     `json:"made"`
	Attempts  int     `json:"attempts"`
	Pct       float64 `json:"pct"`
	Frequency float64 `json:"frequency"`
	Valid     bool    `json:"valid"`
}

// NormalizedValue is a metric value rescaled against the whole population.
type NormalizedValue struct {
	Raw        float64 `json:"raw"`
	Normalized float64 `json:"normalized"` // in [0,1]
	Percentile float64 `json:"percentile"` // in [0,100]
}

// LineupFilter narrows lineup queries. Zero values mean "no constraint".
type LineupFilter struct {
	StarPlayer string
	Keys       []string
	OrderBy    string // "net_rating" or "" for table order
	OrderDir   string // "ASC" or "DESC"
	Limit      int
}

// ChartMode selects how the shot chart is rendered.
type ChartMode string

const (
	ChartModePoint ChartMode = "point"
	ChartModeZone  ChartMode = "zone"
)

// Valid reports whether the mode is one of the known chart modes.
func (m ChartMode) Valid() bool {
	return m == ChartModePoint || m == ChartModeZone
}
