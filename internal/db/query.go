package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is satisfied by *Pool, *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// FetchAll runs sql and returns every row. The result is never nil.
func FetchAll(ctx context.Context, q Querier, sql string, args ...any) ([]Row, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, &QueryError{Query: sql, Err: err}
	}
	defer rows.Close()

	out := make([]Row, 0)
	for rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, &QueryError{Query: sql, Err: err}
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Query: sql, Err: err}
	}
	return out, nil
}

// FetchOne runs sql and returns the first row, or nil when there is none.
func FetchOne(ctx context.Context, q Querier, sql string, args ...any) (*Row, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, &QueryError{Query: sql, Err: err}
	}
	defer rows.Close()

	var out *Row
	if rows.Next() {
		r, err := scanRow(rows)
		if err != nil {
			return nil, &QueryError{Query: sql, Err: err}
		}
		out = &r
	}
	// errors from INSERT ... RETURNING only show up once the result is drained
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Query: sql, Err: err}
	}
	return out, nil
}

// Execute runs sql and discards any result.
func Execute(ctx context.Context, q Querier, sql string, args ...any) error {
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return &QueryError{Query: sql, Err: err}
	}
	return nil
}

func scanRow(rows pgx.Rows) (Row, error) {
	vals, err := rows.Values()
	if err != nil {
		return Row{}, err
	}
	fds := rows.FieldDescriptions()
	cols := make([]string, len(fds))
	for i, fd := range fds {
		cols[i] = fd.Name
		vals[i] = normalize(fd.DataTypeOID, vals[i])
	}
	return NewRow(cols, vals), nil
}
