package service

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		is      error
		message string
	}{
		{
			name: "nil",
			err:  nil,
		},
		{
			name:    "foreign key",
			err:     &pgconn.PgError{Code: "23503", Message: "violates foreign key"},
			is:      ErrValidation,
			message: "validation failed: violates foreign key",
		},
		{
			name:    "passes service errors through",
			err:     ErrNotFoundOrForbidden,
			is:      ErrNotFoundOrForbidden,
			message: "unauthorized or not found",
		},
		{
			name:    "unknown",
			err:     errors.New("connection reset"),
			message: "failed to list notes: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := translateError("list notes", tt.err)
			if tt.err == nil {
				assert.NoError(t, got)
				return
			}
			if tt.is != nil {
				assert.ErrorIs(t, got, tt.is)
			}
			assert.EqualError(t, got, tt.message)
		})
	}
}

func TestError_StatusCode(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, ErrUnauthenticated.StatusCode())
	assert.Equal(t, http.StatusNotFound, ErrNotFoundOrForbidden.StatusCode())
	assert.Equal(t, http.StatusBadRequest, ErrValidation.StatusCode())
}
