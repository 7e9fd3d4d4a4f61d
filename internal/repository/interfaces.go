// Package repository defines read-only access to the loaded tables. The
// store is immutable after startup, so there is no mutation API anywhere.
package repository

import (
	"context"

	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/models"
)

// PlayerRepository reads the star-player table.
type PlayerRepository interface {
	// Get returns the player with the given display name, or nil when the
	// name is absent.
	Get(ctx context.Context, name string) (*models.Player, error)
	// List returns every player in table order.
	List(ctx context.Context) ([]models.Player, error)
}

// ShotRepository reads the shot table.
type ShotRepository interface {
	// ListForPlayer returns the shots for a star player, optionally
	// restricted to a set of lineup combo keys. Order is insertion order.
	ListForPlayer(ctx context.Context, star string, lineupKeys []string) ([]models.ShotRecord, error)
	// CountForPlayer returns the total shot count for a star player.
	CountForPlayer(ctx context.Context, star string) (int, error)
}

// LineupRepository reads the lineup efficiency and tendency tables.
type LineupRepository interface {
	// Efficiency returns efficiency rows matching the filter, in load
	// order unless the filter orders otherwise.
	Efficiency(ctx context.Context, filter models.LineupFilter) ([]models.LineupEfficiency, error)
	// Tendencies returns every tendency row for a star player in load
	// order. Metrics maps hold only the columns that were present.
	Tendencies(ctx context.Context, star string) ([]models.LineupTendencies, error)
	// ComboKeys returns the combo keys for a star player in load order.
	ComboKeys(ctx context.Context, star string) ([]string, error)
}
