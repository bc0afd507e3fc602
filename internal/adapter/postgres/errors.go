package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/users-resources/internal/domain"
)

// pgCodes maps SQLSTATE codes onto domain sentinels.
var pgCodes = map[string]error{
	"23505": domain.ErrAlreadyExists, // unique_violation
	"23503": domain.ErrNotFound,      // foreign_key_violation
	"23514": domain.ErrValidation,    // check_violation
	"40001": domain.ErrConflict,      // serialization_failure
	"40P01": domain.ErrConflict,      // deadlock_detected
	"55P03": domain.ErrConflict,      // lock_not_available
}

// MapError converts a pgx error into a domain error labelled with the entity
// and its id (uuid or domain name). Context errors and unmapped errors are
// wrapped as they are, so callers can still match the original.
func MapError(err error, entity string, id any) error {
	if err == nil {
		return nil
	}

	target := err
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
	case errors.Is(err, pgx.ErrNoRows), pgxscan.NotFound(err):
		target = domain.ErrNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if mapped, ok := pgCodes[pgErr.Code]; ok {
				target = mapped
			}
		}
	}
	return fmt.Errorf("%s %v: %w", entity, id, target)
}
