package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"sync"
	"testing"

	"festival/app_error"
	"festival/client"
	"festival/repository"
	"festival/scoring"
	"festival/service"
	"festival/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingAnnouncer struct {
	mu            sync.Mutex
	err           error
	announcements []*client.ResultAnnouncement
}

func (a *recordingAnnouncer) Name() string {
	return "recording"
}

func (a *recordingAnnouncer) Announce(ctx context.Context, announcement *client.ResultAnnouncement) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.announcements = append(a.announcements, announcement)
	return a.err
}

type countingListener struct {
	calls int
}

func (l *countingListener) StandingsChanged(ctx context.Context) {
	l.calls++
}

func points(p int) *int {
	return &p
}

func dashSheet(f *testutil.Festival) *scoring.Submission {
	return &scoring.Submission{
		EventId:      f.Events["100m Dash"].Id,
		ResultNumber: "R5",
		Placements: map[int]*scoring.Placement{
			repository.PositionFirst: {
				RegistrationIds: []int{f.Registration("100m Dash", "Alice").Id, f.Registration("100m Dash", "Bob").Id},
				Points:          points(10),
			},
			repository.PositionThird: {
				RegistrationIds: []int{f.Registration("100m Dash", "Carol").Id},
				Points:          points(5),
			},
		},
	}
}

func TestSubmitResultsRecordsTiedWinners(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	announcer := &recordingAnnouncer{err: errors.New("broker down")}
	listener := &countingListener{}
	results := service.NewResultService(db, zap.NewNop(), announcer)
	results.AddStandingsListener(listener)

	stored, err := results.SubmitResults(ctx, dashSheet(f))
	require.NoError(t, err, "a failing announcer does not fail the submission")
	require.Len(t, stored, 3)
	expected := []struct {
		name     string
		position int
		points   int
		order    int
	}{
		{"Alice", 1, 10, 1},
		{"Bob", 1, 10, 2},
		{"Carol", 3, 5, 1},
	}
	for i, e := range expected {
		assert.Equal(t, e.name, stored[i].Registration.Contestant.FullName)
		assert.Equal(t, e.position, stored[i].Position)
		assert.Equal(t, e.points, stored[i].Points)
		assert.Equal(t, e.order, stored[i].DisplayOrder)
		assert.Equal(t, "R5", stored[i].ResultNumber)
		assert.True(t, stored[i].IncludeInPoster)
	}
	assert.Equal(t, 1, listener.calls)

	require.Len(t, announcer.announcements, 1)
	announcement := announcer.announcements[0]
	assert.Equal(t, "100m Dash", announcement.EventName)
	assert.Equal(t, "R5", announcement.ResultNumber)
	assert.Equal(t, []string{"Junior"}, announcement.Categories)
	require.Len(t, announcement.Winners, 3)
	assert.Equal(t, "Bob", announcement.Winners[1].Name)
	assert.Equal(t, "Red House", announcement.Winners[1].Group)

	standings, err := service.NewStandingsService(db).GetGroupStandings(ctx)
	require.NoError(t, err)
	require.Len(t, standings, 3)
	assert.Equal(t, "Blue House", standings[0].GroupName)
	assert.Equal(t, 15, standings[0].TotalPoints)
	assert.Equal(t, "Red House", standings[1].GroupName)
	assert.Equal(t, 10, standings[1].TotalPoints)
	assert.Equal(t, "Green House", standings[2].GroupName)
	assert.Equal(t, 0, standings[2].TotalPoints)
}

func TestSubmitResultsReplacesPreviousSheet(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	results := service.NewResultService(db, zap.NewNop())

	_, err := results.SubmitResults(ctx, dashSheet(f))
	require.NoError(t, err)
	stored, err := results.SubmitResults(ctx, &scoring.Submission{
		EventId:      f.Events["100m Dash"].Id,
		ResultNumber: "R6",
		Placements: map[int]*scoring.Placement{
			repository.PositionFirst: {
				RegistrationIds: []int{f.Registration("100m Dash", "Erin").Id},
				Points:          points(10),
			},
			repository.PositionNonPoster: {
				RegistrationIds: []int{f.Registration("100m Dash", "Alice").Id},
				Points:          points(1),
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "Erin", stored[0].Registration.Contestant.FullName)
	assert.Equal(t, "Alice", stored[1].Registration.Contestant.FullName)
	assert.False(t, stored[1].IncludeInPoster)

	champions, err := service.NewStandingsService(db).GetChampions(ctx)
	require.NoError(t, err)
	require.Len(t, champions, 2)
	assert.Equal(t, "Erin", champions[0].FullName)
	assert.Equal(t, 1, champions[0].Rank)
	assert.Equal(t, "Alice", champions[1].FullName)
	assert.Equal(t, 1, champions[1].TotalPoints)
}

func TestSubmitResultsRejectsInvalidSheetAndKeepsStoredResults(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	listener := &countingListener{}
	results := service.NewResultService(db, zap.NewNop())
	results.AddStandingsListener(listener)
	_, err := results.SubmitResults(ctx, dashSheet(f))
	require.NoError(t, err)

	alice := f.Registration("100m Dash", "Alice").Id
	_, err = results.SubmitResults(ctx, &scoring.Submission{
		EventId:      f.Events["100m Dash"].Id,
		ResultNumber: "R7",
		Placements: map[int]*scoring.Placement{
			repository.PositionFirst:  {RegistrationIds: []int{alice}, Points: points(10)},
			repository.PositionSecond: {RegistrationIds: []int{alice}, Points: points(8)},
		},
	})
	var validationErr *app_error.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"a contestant can only be placed once per event: Alice"}, validationErr.Messages)
	assert.Equal(t, http.StatusBadRequest, app_error.Status(err))
	assert.Equal(t, 1, listener.calls)

	stored, err := results.GetEventResults(ctx, f.Events["100m Dash"].Id)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, "R5", stored[0].ResultNumber)
}

func TestSubmitResultsRejectsForeignRegistrations(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	results := service.NewResultService(db, zap.NewNop())

	dave := f.Registration("Relay", "Dave").Id
	_, err := results.SubmitResults(ctx, &scoring.Submission{
		EventId:      f.Events["100m Dash"].Id,
		ResultNumber: "R1",
		Placements: map[int]*scoring.Placement{
			repository.PositionFirst: {RegistrationIds: []int{dave}, Points: points(10)},
		},
	})
	assert.Equal(t, http.StatusBadRequest, app_error.Status(err))

	_, err = results.SubmitResults(ctx, &scoring.Submission{EventId: 999, ResultNumber: "R1"})
	assert.Equal(t, http.StatusNotFound, app_error.Status(err))
}

func TestGetResultSheetFoldsStoredResults(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	results := service.NewResultService(db, zap.NewNop())
	_, err := results.SubmitResults(ctx, dashSheet(f))
	require.NoError(t, err)

	event, sheet, err := results.GetResultSheet(ctx, f.Events["100m Dash"].Id)
	require.NoError(t, err)
	assert.Equal(t, "100m Dash", event.Name)
	assert.Equal(t, dashSheet(f), sheet)
}

func TestExportWinners(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	results := service.NewResultService(db, zap.NewNop())
	_, err := results.SubmitResults(ctx, dashSheet(f))
	require.NoError(t, err)
	_, err = results.SubmitResults(ctx, &scoring.Submission{
		EventId:      f.Events["Relay"].Id,
		ResultNumber: "R9",
		Placements: map[int]*scoring.Placement{
			repository.PositionNonPoster: {RegistrationIds: []int{f.Registration("Relay", "Dave").Id}, Points: points(2)},
		},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	dash := f.Events["100m Dash"].Id
	require.NoError(t, results.ExportWinners(ctx, &dash, &buf))
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Event", "Result Number", "Position", "Name", "Group", "Category", "Points"},
		{"100m Dash", "R5", "1st place", "Alice", "Blue House", "Junior", "10"},
		{"100m Dash", "R5", "1st place", "Bob", "Red House", "Junior", "10"},
		{"100m Dash", "R5", "3rd place", "Carol", "Blue House", "Junior", "5"},
	}, rows)

	buf.Reset()
	require.NoError(t, results.ExportWinners(ctx, nil, &buf))
	rows, err = csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 4, "non-poster participants are not winners")

	missing := 999
	assert.Equal(t, http.StatusNotFound, app_error.Status(results.ExportWinners(ctx, &missing, &buf)))
}
