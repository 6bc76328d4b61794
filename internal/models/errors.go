package models

import (
	"errors"
)

// Error strings are part of the API contract, they are returned
// to clients verbatim.
var (
	ErrGeneral = errors.New("an error occurred on the server during your request")

	ErrUserNotFound        = errors.New("User not found")
	ErrCategoryNotFound    = errors.New("Category not found")
	ErrTransactionNotFound = errors.New("Transaction not found")

	ErrEmailTaken     = errors.New("Email already registered")
	ErrCategoryExists = errors.New("Category already exists")
)

// ErrNotFound reports whether the error is one of the per-resource
// "not found" errors.
func ErrNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrTransactionNotFound)
}
