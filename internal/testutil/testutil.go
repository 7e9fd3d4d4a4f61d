// Package testutil provides a small seeded data store for tests. The fixture
// tables cover two star players with known combos, shots, and tendencies so
// assertions can use exact values.
package testutil

import (
	"embed"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/store"
)

//go:embed fixtures/*.csv
var fixturesFS embed.FS

// Fixture combo keys, matching the seeded efficiency table in load order.
const (
	TatumCombo1 = "Jayson Tatum | Stretch Big | Rim Protector | 3&D Wing | Floor General"
	TatumCombo2 = "Jayson Tatum | Rim Protector | Slasher | 3&D Wing | Combo Guard"
	TatumCombo3 = "Jayson Tatum | Post Scorer | Stretch Big | Slasher | Floor General"
	LukaCombo1  = "Luka Doncic | Roll Man | 3&D Wing | Stretch Big | Combo Guard"
	LukaCombo2  = "Luka Doncic | Rim Protector | Post Scorer | 3&D Wing | Floor General"
)

// WriteFixtures copies the embedded fixture CSVs into a temp directory and
// returns its path. Callers that need a corrupt table can overwrite one file
// before opening the store.
func WriteFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	entries, err := fixturesFS.ReadDir("fixtures")
	require.NoError(t, err)
	for _, e := range entries {
		data, err := fixturesFS.ReadFile("fixtures/" + e.Name())
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, e.Name()), data, 0o644))
	}
	return dir
}

// NewTestStore loads the fixture CSVs into an in-memory store.
func NewTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(WriteFixtures(t), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { MustClose(t, s) })
	return s
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	t.Helper()
	require.NoError(t, closer.Close())
}
