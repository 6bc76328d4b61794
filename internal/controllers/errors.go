package controllers

import (
	"errors"
	"net/http"

	"github.com/spendwise/backend/internal/models"
)

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if models.ErrNotFound(err) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Validation errors. The strings are part of the API contract.
var (
	errAllFieldsRequired     = errors.New("All fields are required")
	errEmailPasswordRequired = errors.New("Email and password required")
	errMissingFields         = errors.New("Missing required fields")
	errNameTypeRequired      = errors.New("Name and type required")
	errTypeInvalid           = errors.New("Type must be either income or expense")
)

// errInvalidLogin is intentionally the same for unknown emails and for
// wrong passwords so that account existence cannot be probed.
var errInvalidLogin = errors.New("Invalid email or password")
