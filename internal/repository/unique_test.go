package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolationColumn(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedColumn string
		expectedOK     bool
	}{
		{
			name:           "email constraint",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			expectedColumn: "email",
			expectedOK:     true,
		},
		{
			name:           "mobile constraint",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: "users_mobile_no_key"},
			expectedColumn: "mobile_no",
			expectedOK:     true,
		},
		{
			name:           "owner constraint",
			err:            &pgconn.PgError{Code: "23505", ConstraintName: "company_profile_owner_id_key"},
			expectedColumn: "owner_id",
			expectedOK:     true,
		},
		{
			name:           "wrapped pg error still detected",
			err:            fmt.Errorf("create user: %w", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}),
			expectedColumn: "email",
			expectedOK:     true,
		},
		{
			name:       "other pg error code",
			err:        &pgconn.PgError{Code: "23503", ConstraintName: "company_profile_owner_id_fkey"},
			expectedOK: false,
		},
		{
			name:       "non pg error",
			err:        errors.New("connection reset"),
			expectedOK: false,
		},
		{
			name:       "nil error",
			err:        nil,
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			column, ok := UniqueViolationColumn(tt.err)
			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedColumn, column)
			}
		})
	}
}
