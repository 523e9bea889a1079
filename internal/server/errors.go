package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrUpstream indicates a dependency failure: database, embedding, or
// model calls that the pipeline could not degrade around.
type ErrUpstream struct {
	Operation string
	Cause     error
}

func (e *ErrUpstream) Error() string {
	return fmt.Sprintf("upstream failure during %s: %v", e.Operation, e.Cause)
}

func (e *ErrUpstream) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrUpstream:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
