package db

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type fakeRows struct {
	pgx.Rows
	fields  []pgconn.FieldDescription
	data    [][]any
	pos     int
	err     error
	closed  int
	drained bool
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		r.drained = true
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) {
	src := r.data[r.pos-1]
	out := make([]any, len(src))
	copy(out, src)
	return out, nil
}

func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return r.fields }

func (r *fakeRows) Close() { r.closed++ }

// Err mimics pgx: statement errors surface only after the result is consumed.
func (r *fakeRows) Err() error {
	if r.closed > 0 || r.drained {
		return r.err
	}
	return nil
}

type fakeQuerier struct {
	rows     *fakeRows
	queryErr error
	execErr  error
	lastSQL  string
	lastArgs []any
}

func (q *fakeQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.lastSQL, q.lastArgs = sql, args
	if q.queryErr != nil {
		return nil, q.queryErr
	}
	return q.rows, nil
}

func (q *fakeQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.lastSQL, q.lastArgs = sql, args
	if q.execErr != nil {
		return pgconn.CommandTag{}, q.execErr
	}
	return pgconn.NewCommandTag("REFRESH MATERIALIZED VIEW"), nil
}

func fields(names ...string) []pgconn.FieldDescription {
	out := make([]pgconn.FieldDescription, len(names))
	for i, n := range names {
		out[i] = pgconn.FieldDescription{Name: n}
	}
	return out
}
