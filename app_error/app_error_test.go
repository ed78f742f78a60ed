package app_error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatus(t *testing.T) {
	validation := &ValidationError{}
	validation.Add("points for position %d are required", 1)

	assert.Equal(t, http.StatusBadRequest, Status(validation))
	assert.Equal(t, http.StatusBadRequest, Status(fmt.Errorf("wrapped: %w", validation)))
	assert.Equal(t, http.StatusNotFound, Status(NotFound("event", 4)))
	assert.Equal(t, http.StatusNotFound, Status(fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound)))
	assert.Equal(t, http.StatusConflict, Status(gorm.ErrDuplicatedKey))
	assert.Equal(t, http.StatusForbidden, Status(WithStatus(errors.New("nope"), http.StatusForbidden)))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("connection refused")))
}

func TestValidationErrorOrNil(t *testing.T) {
	var empty *ValidationError
	assert.NoError(t, empty.OrNil())
	assert.NoError(t, (&ValidationError{}).OrNil())

	err := &ValidationError{}
	err.Add("result number is required")
	err.Add("no winners selected")
	assert.EqualError(t, err.OrNil(), "result number is required; no winners selected")
	assert.Equal(t, "event 7 not found", NotFound("event", 7).Error())
}
