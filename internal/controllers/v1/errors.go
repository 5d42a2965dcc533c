package v1

import (
	"errors"
	"net/http"

	"github.com/constructa/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errMonthNotSetInQuery  = errors.New("the month query parameter must be set")
	errMonthInvalidInQuery = errors.New("the month query parameter must be specified as YYYY-MM")
)
