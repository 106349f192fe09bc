package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/ecocycle/internal/database"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{name: "NoRows", err: pgx.ErrNoRows, target: database.ErrNotFound},
		{name: "UniqueViolation", err: &pgconn.PgError{Code: "23505"}, target: database.ErrAlreadyExists},
		{name: "ForeignKeyViolation", err: &pgconn.PgError{Code: "23503"}, target: database.ErrNotFound},
		{name: "Canceled", err: context.Canceled, target: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := database.MapError("loading thing", tt.err)
			assert.ErrorIs(t, got, tt.target)
			assert.Contains(t, got.Error(), "loading thing")
		})
	}
}

func TestMapError_Passthrough(t *testing.T) {
	assert.NoError(t, database.MapError("op", nil))

	plain := errors.New("connection reset")
	got := database.MapError("listing", plain)
	assert.ErrorIs(t, got, plain)
	assert.NotErrorIs(t, got, database.ErrNotFound)
}
