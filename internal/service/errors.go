package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// Error is a failure the HTTP boundary knows how to report. The status
// code travels with it so the error middleware needs no service imports.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) StatusCode() int {
	return e.Status
}

var (
	ErrUnauthenticated = &Error{Status: http.StatusUnauthorized, Message: "unauthenticated"}

	// ErrNotFoundOrForbidden is deliberately one value: callers cannot tell
	// a missing record from someone else's.
	ErrNotFoundOrForbidden = &Error{Status: http.StatusNotFound, Message: "unauthorized or not found"}

	ErrValidation = &Error{Status: http.StatusBadRequest, Message: "validation failed"}
)

// postgres SQLSTATEs that mean the request itself was bad.
var validationCodes = map[string]bool{
	"23502": true, // not_null_violation
	"23503": true, // foreign_key_violation
	"23514": true, // check_violation
	"22001": true, // string_data_right_truncation
	"22P02": true, // invalid_text_representation
}

// translateError wraps a persistence failure with the action it interrupted.
// Constraint violations become ErrValidation.
func translateError(action string, err error) error {
	if err == nil {
		return nil
	}
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && validationCodes[pgErr.Code] {
		return fmt.Errorf("%w: %s", ErrValidation, pgErr.Message)
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
