package service_test

import (
	"context"
	"net/http"
	"testing"

	"festival/app_error"
	"festival/service"
	"festival/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnroll(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewDB(t)
	f := testutil.SeedFestival(t, db)
	registrations := service.NewRegistrationService(db)

	registration, err := registrations.Enroll(ctx, f.Contestants["Bob"].Id, f.Events["Relay"].Id)
	require.NoError(t, err)
	assert.NotZero(t, registration.Id)

	byId, err := registrations.RegistrationsById(ctx, f.Events["Relay"].Id)
	require.NoError(t, err)
	assert.Len(t, byId, 3)
	assert.Equal(t, "Bob", byId[registration.Id].Contestant.FullName)

	_, err = registrations.Enroll(ctx, f.Contestants["Alice"].Id, f.Events["100m Dash"].Id)
	assert.Equal(t, http.StatusConflict, app_error.Status(err))

	_, err = registrations.Enroll(ctx, f.Contestants["Dave"].Id, f.Events["100m Dash"].Id)
	assert.Equal(t, http.StatusBadRequest, app_error.Status(err))

	_, err = registrations.Enroll(ctx, 999, f.Events["100m Dash"].Id)
	assert.Equal(t, http.StatusNotFound, app_error.Status(err))

	_, err = registrations.Enroll(ctx, f.Contestants["Dave"].Id, 999)
	assert.Equal(t, http.StatusNotFound, app_error.Status(err))
}
