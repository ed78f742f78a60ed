package service_test

import (
	"net/http"
	"testing"

	"festival/app_error"
	"festival/repository"
	"festival/service"
	"festival/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registeredEvents(t *testing.T, db *gorm.DB, contestantId int) []int {
	t.Helper()
	ids := make([]int, 0)
	require.NoError(t, db.Model(&repository.Registration{}).
		Where("contestant_id = ?", contestantId).
		Order("event_id").
		Pluck("event_id", &ids).Error)
	return ids
}

func TestRegisterNormalizesAndEnrolls(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	contestants := service.NewContestantService(db, zap.NewNop())

	created, err := contestants.Register(&repository.Contestant{
		FullName:    "  Grace  ",
		Email:       " Grace@Example.com ",
		State:       "Goa",
		Gender:      "female",
		GroupId:     &f.Groups["Green House"].Id,
		CategoryId:  &f.Categories["Senior"].Id,
		Course:      "MA",
		PhoneNumber: "123",
	}, []int{f.Events["Relay"].Id, f.Events["Relay"].Id})
	require.NoError(t, err)
	assert.Equal(t, "Grace", created.FullName)
	assert.Equal(t, "grace@example.com", created.Email)
	assert.Equal(t, repository.GenderFemale, created.Gender)
	assert.Equal(t, []int{f.Events["Relay"].Id}, registeredEvents(t, db, created.Id))
}

func TestRegisterRejectsEventsClosedToTheCategory(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	contestants := service.NewContestantService(db, zap.NewNop())

	_, err := contestants.Register(&repository.Contestant{
		FullName:    "Heidi",
		Email:       "not-an-email",
		State:       "Goa",
		Gender:      "Other",
		CategoryId:  &f.Categories["Senior"].Id,
		Course:      "MA",
		PhoneNumber: "123",
	}, []int{f.Events["100m Dash"].Id, 999})
	var validationErr *app_error.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		`email "not-an-email" is not valid`,
		"gender must be Male or Female",
		"event 999 does not exist",
		`event "100m Dash" is not open to the contestant's category`,
	}, validationErr.Messages)

	var count int64
	require.NoError(t, db.Model(&repository.Contestant{}).Count(&count).Error)
	assert.Equal(t, int64(5), count)
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	db := testutil.NewDB(t)
	testutil.SeedFestival(t, db)
	_, err := service.NewContestantService(db, zap.NewNop()).Register(&repository.Contestant{
		FullName:    "Alice",
		Email:       "ALICE@example.com",
		State:       "Kerala",
		Gender:      repository.GenderFemale,
		Course:      "BSc",
		PhoneNumber: "0",
	}, nil)
	assert.Equal(t, http.StatusConflict, app_error.Status(err))
}

func TestImportRowsAppliesValidRowsAndReportsTheRest(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	contestants := service.NewContestantService(db, zap.NewNop())

	report, err := contestants.ImportRows([]*service.ContestantRow{
		{
			FullName: "Ivan", Email: "ivan@example.com", State: "Goa", Gender: "Male",
			Group: "Green House", Category: "Junior", Course: "BA", PhoneNumber: "1",
			Events: []string{"100m Dash", " Relay "},
		},
		{
			FullName: "Alice Liddell", Email: "alice@example.com", State: "Kerala", Gender: "Female",
			Group: "Blue House", Category: "Junior", Course: "BSc", PhoneNumber: "2",
			Events: []string{"Relay"},
		},
		{
			FullName: "Judy", Email: "judy@example.com", State: "Goa", Gender: "Female",
			Group: "Purple House", Category: "Junior", Course: "BA", PhoneNumber: "3",
		},
		{
			FullName: "Ken", Email: "ken@example.com", State: "Goa", Gender: "Male",
			Category: "Senior", Course: "BA", PhoneNumber: "4",
			Events: []string{"100m Dash"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Applied)
	assert.Equal(t, []service.RowFailure{
		{Row: 3, Error: `group "Purple House" does not exist`},
		{Row: 4, Error: `event "100m Dash" is not open to the contestant's category`},
	}, report.Failures)

	alice, err := contestants.GetContestantById(f.Contestants["Alice"].Id)
	require.NoError(t, err)
	assert.Equal(t, "Alice Liddell", alice.FullName)
	assert.Equal(t, []int{f.Events["Relay"].Id}, registeredEvents(t, db, alice.Id))

	var ivan repository.Contestant
	require.NoError(t, db.First(&ivan, "email = ?", "ivan@example.com").Error)
	assert.Equal(t, []int{f.Events["100m Dash"].Id, f.Events["Relay"].Id}, registeredEvents(t, db, ivan.Id))
	assert.Equal(t, f.Groups["Green House"].Id, *ivan.GroupId)
}
