package repository_test

import (
	"context"
	"testing"

	"festival/repository"
	"festival/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupTotalsIncludeGroupsWithoutResults(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	require.NoError(t, repository.NewResultRepository(db).ReplaceEventResults(ctx, f.Events["100m Dash"].Id, []*repository.Result{
		result(f.Registration("100m Dash", "Alice"), 1, 10, 1),
		result(f.Registration("100m Dash", "Bob"), 1, 10, 2),
		result(f.Registration("100m Dash", "Carol"), 3, 5, 1),
	}))

	totals, err := repository.NewStandingsRepository(db).GetGroupTotals(ctx)
	require.NoError(t, err)

	byName := make(map[string]int)
	for _, total := range totals {
		byName[total.GroupName] = total.TotalPoints
	}
	assert.Equal(t, map[string]int{
		"Blue House":  15,
		"Red House":   10,
		"Green House": 0,
	}, byName)
}

func TestContestantTotalsOnlyCountPoints(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	results := repository.NewResultRepository(db)
	require.NoError(t, results.ReplaceEventResults(ctx, f.Events["100m Dash"].Id, []*repository.Result{
		result(f.Registration("100m Dash", "Alice"), 1, 10, 1),
		result(f.Registration("100m Dash", "Erin"), repository.PositionNonPoster, 0, 1),
	}))
	require.NoError(t, results.ReplaceEventResults(ctx, f.Events["Relay"].Id, []*repository.Result{
		result(f.Registration("Relay", "Alice"), 2, 3, 1),
	}))

	totals, err := repository.NewStandingsRepository(db).GetContestantTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 1, "zero point and result-less contestants are absent")
	assert.Equal(t, "Alice", totals[0].FullName)
	assert.Equal(t, "Blue House", totals[0].GroupName)
	assert.Equal(t, 13, totals[0].TotalPoints)
	assert.Equal(t, 2, totals[0].EventsParticipated)
}
