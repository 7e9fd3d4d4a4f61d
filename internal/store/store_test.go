package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/errors"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/store"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/testutil"
)

func TestOpen_LoadsFixtureTables(t *testing.T) {
	s := testutil.NewTestStore(t)

	counts := map[string]int{
		"players":           2,
		"lineup_efficiency": 5,
		"lineup_tendencies": 5,
		"shots":             13,
	}
	for table, want := range counts {
		var got int
		require.NoError(t, s.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&got))
		assert.Equal(t, want, got, "row count for %s", table)
	}
}

func TestOpen_MissingFileFailsWithDataLoadError(t *testing.T) {
	dir := testutil.WriteFixtures(t)
	require.NoError(t, os.Remove(filepath.Join(dir, store.FileShots)))

	_, err := store.Open(dir, ":memory:")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeDataLoad, appErr.Code)
	assert.Contains(t, appErr.Message, store.FileShots)
}

func TestOpen_MissingColumnFailsWithDataLoadError(t *testing.T) {
	dir := testutil.WriteFixtures(t)
	csv := "star_player,player1_archetype,player2_archetype,player3_archetype,player4_archetype,offensive_rating,defensive_rating\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, store.FileEfficiency), []byte(csv), 0o644))

	_, err := store.Open(dir, ":memory:")
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeDataLoad, appErr.Code)
	assert.Contains(t, appErr.Err.Error(), "net_rating")
}

func TestOpen_DuplicateComboKeyFails(t *testing.T) {
	dir := testutil.WriteFixtures(t)
	csv := "star_player,player1_archetype,player2_archetype,player3_archetype,player4_archetype,offensive_rating,defensive_rating,net_rating\n" +
		"Jayson Tatum,Stretch Big,Rim Protector,3&D Wing,Floor General,118.2,108.1,10.1\n" +
		"Jayson Tatum,Stretch Big,Rim Protector,3&D Wing,Floor General,100.0,100.0,0.0\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, store.FileEfficiency), []byte(csv), 0o644))

	_, err := store.Open(dir, ":memory:")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Stretch Big")
}

func TestOpen_MalformedNumberFails(t *testing.T) {
	dir := testutil.WriteFixtures(t)
	csv := "star_player,player1_archetype,player2_archetype,player3_archetype,player4_archetype,offensive_rating,defensive_rating,net_rating\n" +
		"Jayson Tatum,Stretch Big,Rim Protector,3&D Wing,Floor General,not-a-number,108.1,10.1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, store.FileEfficiency), []byte(csv), 0o644))

	_, err := store.Open(dir, ":memory:")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offensive_rating")
}

func TestOpen_BlankTendencyCellLoadsAsNull(t *testing.T) {
	s := testutil.NewTestStore(t)

	// Tatum's third combo has a blank fta_per48 in the fixture.
	var nulls int
	require.NoError(t, s.QueryRow(
		"SELECT COUNT(*) FROM lineup_tendencies WHERE fta_per48 IS NULL",
	).Scan(&nulls))
	assert.Equal(t, 1, nulls)
}

func TestOpen_ComboKeysJoinStarAndArchetypes(t *testing.T) {
	s := testutil.NewTestStore(t)

	var key string
	require.NoError(t, s.QueryRow(
		"SELECT key FROM lineup_efficiency ORDER BY seq LIMIT 1",
	).Scan(&key))
	assert.Equal(t, testutil.TatumCombo1, key)
}
