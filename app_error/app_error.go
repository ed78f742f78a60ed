package app_error

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type statusError struct {
	error
	status int
}

func (e statusError) Unwrap() error {
	return e.error
}

func (e statusError) HTTPStatus() int {
	return e.status
}

// ValidationError carries every violated rule of a rejected input.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Add(format string, args ...any) {
	e.Messages = append(e.Messages, fmt.Sprintf(format, args...))
}

// OrNil returns nil when no message was collected, so callers can return it directly.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Messages) == 0 {
		return nil
	}
	return e
}

type NotFoundError struct {
	Resource string
	Id       any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Resource, e.Id)
}

func NotFound(resource string, id any) error {
	return &NotFoundError{Resource: resource, Id: id}
}

func WithStatus(err error, status int) error {
	return statusError{error: err, status: status}
}

// Status resolves the HTTP status code an error should be reported with.
func Status(err error) int {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError
	var withStatus interface{ HTTPStatus() int }
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr), errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return http.StatusConflict
	case errors.As(err, &withStatus):
		return withStatus.HTTPStatus()
	}
	return http.StatusInternalServerError
}

func WithHTTPStatus(c *gin.Context, err error, status int) {
	c.JSON(status, gin.H{"error": err.Error()})
}

// Respond writes err to the client. Server errors are reported generically, the detail is
// attached to the gin context so the request logger can pick it up.
func Respond(c *gin.Context, err error) {
	status := Status(err)
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(status, gin.H{"error": "validation failed", "details": validationErr.Messages})
	case status >= http.StatusInternalServerError:
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": "internal server error"})
	default:
		WithHTTPStatus(c, err, status)
	}
}
