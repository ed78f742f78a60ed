package service_test

import (
	"net/http"
	"testing"

	"festival/app_error"
	"festival/auth"
	"festival/repository"
	"festival/service"
	"festival/testutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	db := testutil.NewDB(t)
	operators := service.NewOperatorService(db)

	operator, err := operators.SaveOperator("desk", "first-password", []repository.Permission{repository.PermissionAdmin})
	require.NoError(t, err)
	assert.NotEqual(t, "first-password", operator.PasswordHash)

	token, err := operators.Login("desk", "first-password")
	require.NoError(t, err)
	parsed, err := auth.ParseToken(token)
	require.NoError(t, err)
	claims := &auth.Claims{}
	claims.FromJWTClaims(parsed.Claims.(jwt.MapClaims))
	assert.Equal(t, operator.Id, claims.OperatorId)
	assert.True(t, claims.HasPermission(string(repository.PermissionAdmin)))

	_, err = operators.Login("desk", "wrong")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	assert.Equal(t, http.StatusUnauthorized, app_error.Status(err))
	_, err = operators.Login("nobody", "first-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestSaveOperatorResetsExistingAccount(t *testing.T) {
	db := testutil.NewDB(t)
	operators := service.NewOperatorService(db)

	first, err := operators.SaveOperator("desk", "first-password", []repository.Permission{repository.PermissionAdmin})
	require.NoError(t, err)
	second, err := operators.SaveOperator("desk", "second-password", nil)
	require.NoError(t, err)
	assert.Equal(t, first.Id, second.Id)
	assert.Empty(t, second.PermissionList())

	_, err = operators.Login("desk", "first-password")
	assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	_, err = operators.Login("desk", "second-password")
	assert.NoError(t, err)

	_, err = operators.SaveOperator(" ", "x", nil)
	assert.Equal(t, http.StatusBadRequest, app_error.Status(err))
}
