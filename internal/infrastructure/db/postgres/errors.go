package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

func IsPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// IsStatementError reports whether the server rejected a statement or its result
// could not be read. Connection and context failures are not statement errors.
func IsStatementError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return true
	}

	var scanErr pgx.ScanArgError
	return errors.As(err, &scanErr) || errors.Is(err, pgx.ErrTooManyRows)
}
