// Package apperr defines the error kinds shared by the store, the ownership
// resolver and the services. Handlers translate them to HTTP status codes;
// anything not matching one of these sentinels is an unexpected store failure.
package apperr

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("already exists")
)
