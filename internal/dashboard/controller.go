package dashboard

import (
	"context"
	"sync"

	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/logger"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
)

// Selection size bounds. MinLineups is a hard invariant; MaxLineups is
// advisory only: larger selections render, flagged for visual clarity.
const (
	MinLineups = 2
	MaxLineups = 5
)

// Phase is the controller's state-machine phase.
type Phase string

const (
	// PhaseIdle: the selection is valid and every view is fresh.
	PhaseIdle Phase = "idle"
	// PhaseRecomputing: a selection just changed and affected views are
	// being rebuilt. Transient; never visible in a returned snapshot.
	PhaseRecomputing Phase = "recomputing"
	// PhaseInvalid: the selection violates the lineup-count invariant.
	PhaseInvalid Phase = "invalid"
)

// SelectionState is the current user selection. It is owned exclusively by
// its Controller and mutated only through events.
type SelectionState struct {
	Player  string           `json:"player"`
	Lineups []string         `json:"lineups"`
	Mode    models.ChartMode `json:"mode"`
}

// Snapshot is the full dashboard output for one selection state: the state
// itself plus one derivation per view.
type Snapshot struct {
	Phase    Phase          `json:"phase"`
	Advisory bool           `json:"advisory"` // more than MaxLineups selected
	State    SelectionState `json:"state"`

	Profile    Derivation `json:"profile"`
	ShotChart  Derivation `json:"shot_chart"`
	Efficiency Derivation `json:"efficiency"`
	Radar      Derivation `json:"radar"`
}

// Event is a discrete, immutable selection command.
type Event interface{ isEvent() }

// SelectPlayer switches the active star player.
type SelectPlayer struct{ Name string }

// SelectLineups replaces the selected lineup combo set. Order matters: it
// drives palette assignment.
type SelectLineups struct{ Keys []string }

// SelectChartMode toggles the shot chart between point and zone rendering.
type SelectChartMode struct{ Mode models.ChartMode }

func (SelectPlayer) isEvent()    {}
func (SelectLineups) isEvent()   {}
func (SelectChartMode) isEvent() {}

// Deriver produces view derivations against the data store. Implemented by
// the services layer; every method contains its own failures and reports
// them through the Derivation envelope.
type Deriver interface {
	// PlayerExists reports whether a player name is in the store.
	PlayerExists(ctx context.Context, name string) (bool, error)
	// DefaultLineups returns up to n combo keys for a player, in table
	// order, used to seed the selection after a player switch.
	DefaultLineups(ctx context.Context, star string, n int) ([]string, error)

	ProfileView(ctx context.Context, star string) Derivation
	ShotChartView(ctx context.Context, star string, keys []string, mode models.ChartMode) Derivation
	EfficiencyView(ctx context.Context, star string, keys []string) Derivation
	RadarView(ctx context.Context, star string, keys []string) Derivation
}

// Controller owns one session's SelectionState and recomputes the dependent
// views when an event changes it. The mutex serializes events so a snapshot
// is never built from a half-applied selection, which makes the controller
// safe behind a concurrent HTTP server.
type Controller struct {
	mu    sync.Mutex
	views Deriver
	phase Phase
	state SelectionState
	snap  Snapshot
}

// NewController builds a controller with the default selection: the given
// player, up to MinLineups of their first combos, point mode. All views are
// computed immediately.
func NewController(ctx context.Context, views Deriver, defaultPlayer string) (*Controller, error) {
	lineups, err := views.DefaultLineups(ctx, defaultPlayer, MinLineups)
	if err != nil {
		return nil, err
	}
	c := &Controller{
		views: views,
		state: SelectionState{
			Player:  defaultPlayer,
			Lineups: lineups,
			Mode:    models.ChartModePoint,
		},
	}
	c.recompute(ctx, true, true)
	return c, nil
}

// Snapshot returns the current snapshot without applying any event. The
// lineup slice is copied so callers cannot alias controller state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := c.snap
	snap.State.Lineups = append([]string(nil), c.snap.State.Lineups...)
	return snap
}

// Apply runs one event through the reducer and returns the resulting
// snapshot. Invalid events (unknown player, malformed mode) leave the prior
// state fully intact.
func (c *Controller) Apply(ctx context.Context, event Event) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	log := logger.FromContext(ctx).WithPrefix("dashboard")

	switch e := event.(type) {
	case SelectPlayer:
		ok, err := c.views.PlayerExists(ctx, e.Name)
		if err != nil {
			log.Error("player lookup failed, keeping selection: %v", err)
			return c.snap
		}
		if !ok {
			log.Warn("ignoring selection of unknown player %q", e.Name)
			return c.snap
		}
		if e.Name == c.state.Player {
			return c.snap
		}
		c.state.Player = e.Name
		// A new player invalidates the lineup selection too; reseed from
		// the player's own table.
		lineups, err := c.views.DefaultLineups(ctx, e.Name, MinLineups)
		if err != nil {
			log.Error("failed to seed default lineups: %v", err)
			lineups = nil
		}
		c.state.Lineups = lineups
		c.recompute(ctx, true, true)

	case SelectLineups:
		c.state.Lineups = append([]string(nil), e.Keys...)
		// The profile depends only on the player; leave it fresh.
		c.recompute(ctx, false, true)

	case SelectChartMode:
		if !e.Mode.Valid() {
			log.Warn("ignoring unknown chart mode %q", e.Mode)
			return c.snap
		}
		if e.Mode == c.state.Mode {
			return c.snap
		}
		c.state.Mode = e.Mode
		// Mode only affects the shot chart.
		c.recompute(ctx, false, false)

	default:
		log.Warn("ignoring unknown event type %T", event)
	}
	return c.snap
}

// recompute rebuilds the stale views. The shot chart is always rebuilt: it
// depends on player, lineups and mode alike.
func (c *Controller) recompute(ctx context.Context, player, lineups bool) {
	c.phase = PhaseRecomputing

	valid := len(c.state.Lineups) >= MinLineups
	if player {
		c.snap.Profile = c.views.ProfileView(ctx, c.state.Player)
	}
	if valid {
		c.snap.ShotChart = c.views.ShotChartView(ctx, c.state.Player, c.state.Lineups, c.state.Mode)
		if lineups {
			c.snap.Efficiency = c.views.EfficiencyView(ctx, c.state.Player, c.state.Lineups)
			c.snap.Radar = c.views.RadarView(ctx, c.state.Player, c.state.Lineups)
		}
	} else {
		placeholder := Empty("select at least 2 lineups to compare")
		c.snap.ShotChart = placeholder
		c.snap.Efficiency = placeholder
		c.snap.Radar = placeholder
	}

	c.phase = PhaseIdle
	if !valid {
		c.phase = PhaseInvalid
	}
	c.snap.Phase = c.phase
	c.snap.Advisory = len(c.state.Lineups) > MaxLineups
	c.snap.State = SelectionState{
		Player:  c.state.Player,
		Lineups: append([]string(nil), c.state.Lineups...),
		Mode:    c.state.Mode,
	}
}
