package service

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrValidation = errors.New("validation failed")

	ErrMemoryTargetMissing = fmt.Errorf("%w: either event_id or trip_id is required", ErrValidation)
	ErrMemoryBothTargets   = fmt.Errorf("%w: event_id and trip_id cannot both be set", ErrValidation)

	ErrUnauthenticated = errors.New("authentication required")

	ErrTripNotFound      = errors.New("trip not found")
	ErrScheduleNotFound  = errors.New("schedule not found")
	ErrScheduleForbidden = errors.New("schedule belongs to another user")
	ErrEventNotFound     = errors.New("event not found")
	ErrEventForbidden    = errors.New("event belongs to another user")
	ErrMemoryNotFound    = errors.New("memory not found")
	ErrUserNotFound      = errors.New("user not found")

	ErrConstraintViolation = errors.New("constraint violation")
)

const pgUniqueViolation = "23505"

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrValidation}, args...)...)
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// isConstraintViolation matches any integrity constraint failure (SQLSTATE
// class 23).
func isConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && len(pgErr.Code) == 5 && pgErr.Code[:2] == "23"
}

// storeError classifies a repository error that is not a not-found.
func storeError(err error) error {
	if isConstraintViolation(err) {
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}
	return err
}
