package v1

import (
	"errors"
	"net/http"

	"github.com/ledgerbook/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate HTTP status for an error
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
	errTrendMonths = errors.New("months must be a number between 1 and 24")
	errQueryString = errors.New("the query string contains unparseable data. Please check the values")
)
