package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// QueryError keeps the statement next to the driver error for logging.
// Error() only reports the driver message so it is safe to hand to clients.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return e.Err.Error()
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// SQLState returns the Postgres error code carried by err, or "".
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
