package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// pg unique_violation
const uniqueViolationCode = "23505"

// UniqueViolationColumn reports which column a postgres unique-constraint
// violation refers to ("email", "mobile_no" or "owner_id"). The database
// constraints are the real uniqueness arbiter; application-level existence
// pre-checks are advisory, so racing inserts surface here and must be
// translated into the same conflict errors as the pre-check path.
func UniqueViolationColumn(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return "", false
	}
	name := pgErr.ConstraintName
	switch {
	case strings.Contains(name, "email"):
		return "email", true
	case strings.Contains(name, "mobile"):
		return "mobile_no", true
	case strings.Contains(name, "owner"):
		return "owner_id", true
	default:
		return name, true
	}
}
