package repository_test

import (
	"context"
	"testing"

	"festival/repository"
	"festival/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func result(registration *repository.Registration, position int, points int, order int) *repository.Result {
	return &repository.Result{
		RegistrationId:  registration.Id,
		Position:        position,
		Points:          points,
		ResultNumber:    "R5",
		IncludeInPoster: position != repository.PositionNonPoster,
		DisplayOrder:    order,
	}
}

func registrationIds(results []*repository.Result) []int {
	ids := make([]int, len(results))
	for i, r := range results {
		ids[i] = r.RegistrationId
	}
	return ids
}

func TestReplaceEventResultsKeepsExactlyTheNewSet(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	results := repository.NewResultRepository(db)
	dash := f.Events["100m Dash"]
	relay := f.Events["Relay"]

	require.NoError(t, results.ReplaceEventResults(ctx, relay.Id, []*repository.Result{
		result(f.Registration("Relay", "Dave"), 1, 7, 1),
	}))
	require.NoError(t, results.ReplaceEventResults(ctx, dash.Id, []*repository.Result{
		result(f.Registration("100m Dash", "Erin"), 1, 10, 1),
		result(f.Registration("100m Dash", "Carol"), 2, 8, 1),
	}))
	require.NoError(t, results.ReplaceEventResults(ctx, dash.Id, []*repository.Result{
		result(f.Registration("100m Dash", "Alice"), 1, 10, 1),
		result(f.Registration("100m Dash", "Bob"), 1, 10, 2),
		result(f.Registration("100m Dash", "Carol"), 3, 5, 1),
	}))

	stored, err := results.GetEventResults(ctx, dash.Id)
	require.NoError(t, err)
	assert.Equal(t, []int{
		f.Registration("100m Dash", "Alice").Id,
		f.Registration("100m Dash", "Bob").Id,
		f.Registration("100m Dash", "Carol").Id,
	}, registrationIds(stored))
	assert.Equal(t, "Alice", stored[0].Registration.Contestant.FullName)
	assert.Equal(t, "Blue House", stored[0].Registration.Contestant.GroupName())

	other, err := results.GetEventResults(ctx, relay.Id)
	require.NoError(t, err)
	assert.Len(t, other, 1, "results of other events are untouched")
}

func TestReplaceEventResultsWithNothingClearsTheEvent(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	results := repository.NewResultRepository(db)
	dash := f.Events["100m Dash"]

	require.NoError(t, results.ReplaceEventResults(ctx, dash.Id, []*repository.Result{
		result(f.Registration("100m Dash", "Alice"), 1, 10, 1),
	}))
	require.NoError(t, results.ReplaceEventResults(ctx, dash.Id, nil))

	stored, err := results.GetEventResults(ctx, dash.Id)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestGetPosterResultsSkipsNonPosterRows(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	results := repository.NewResultRepository(db)
	dash := f.Events["100m Dash"]

	require.NoError(t, results.ReplaceEventResults(ctx, dash.Id, []*repository.Result{
		result(f.Registration("100m Dash", "Erin"), repository.PositionNonPoster, 2, 1),
		result(f.Registration("100m Dash", "Carol"), 3, 5, 1),
		result(f.Registration("100m Dash", "Bob"), 1, 10, 2),
		result(f.Registration("100m Dash", "Alice"), 1, 10, 1),
	}))

	poster, err := results.GetPosterResults(ctx, dash.Id)
	require.NoError(t, err)
	assert.Equal(t, []int{
		f.Registration("100m Dash", "Alice").Id,
		f.Registration("100m Dash", "Bob").Id,
		f.Registration("100m Dash", "Carol").Id,
	}, registrationIds(poster))
	for _, r := range poster {
		assert.True(t, r.IsPosterEligible())
	}

	winners, err := results.GetWinners(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, winners, 3)
	assert.Equal(t, "100m Dash", winners[0].Registration.Event.Name)
	assert.Equal(t, "Junior", winners[0].Registration.Contestant.Category.Name)
}

func TestResultChecksRejectInvalidRows(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	results := repository.NewResultRepository(db)
	dash := f.Events["100m Dash"]

	require.NoError(t, results.ReplaceEventResults(ctx, dash.Id, []*repository.Result{
		result(f.Registration("100m Dash", "Alice"), 1, 10, 1),
	}))
	err := results.ReplaceEventResults(ctx, dash.Id, []*repository.Result{
		result(f.Registration("100m Dash", "Bob"), 1, -1, 1),
	})
	assert.Error(t, err)

	stored, err := results.GetEventResults(ctx, dash.Id)
	require.NoError(t, err)
	assert.Equal(t, []int{f.Registration("100m Dash", "Alice").Id}, registrationIds(stored), "a failed replace rolls back")
}
