package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/repository/sqlite"
	"github.com/yuvalantman/NBA-lineup-archetypes-dashboard/internal/testutil"
)

func TestShotRepository_ListForPlayer(t *testing.T) {
	s := testutil.NewTestStore(t)
	repo := sqlite.NewShotRepository(s.DB)

	shots, err := repo.ListForPlayer(context.Background(), "Jayson Tatum", nil)
	require.NoError(t, err)
	require.Len(t, shots, 11)

	first := shots[0]
	assert.Equal(t, "Jayson Tatum", first.StarPlayer)
	assert.Equal(t, testutil.TatumCombo1, first.LineupKey)
	assert.Equal(t, 0.0, first.LocX)
	assert.Equal(t, 10.0, first.LocY)
	assert.True(t, first.Made)
	assert.Equal(t, "Restricted Area", first.ZoneBasic)
	assert.Equal(t, 1, first.Period)
}

func TestShotRepository_ListForPlayerFiltersByLineup(t *testing.T) {
	s := testutil.NewTestStore(t)
	repo := sqlite.NewShotRepository(s.DB)

	shots, err := repo.ListForPlayer(context.Background(), "Jayson Tatum", []string{testutil.TatumCombo2})
	require.NoError(t, err)
	require.Len(t, shots, 1)
	assert.Equal(t, testutil.TatumCombo2, shots[0].LineupKey)
}

func TestShotRepository_ListForPlayerUnknownKeyIsEmpty(t *testing.T) {
	s := testutil.NewTestStore(t)
	repo := sqlite.NewShotRepository(s.DB)

	shots, err := repo.ListForPlayer(context.Background(), "Jayson Tatum", []string{"no | such | combo"})
	require.NoError(t, err)
	assert.Empty(t, shots)
}

func TestShotRepository_CountForPlayer(t *testing.T) {
	s := testutil.NewTestStore(t)
	repo := sqlite.NewShotRepository(s.DB)

	count, err := repo.CountForPlayer(context.Background(), "Luka Doncic")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
