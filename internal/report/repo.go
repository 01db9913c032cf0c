// Package report reads the precomputed views (shipped orders, weekly tracking)
// and the operational queries around them.
package report

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MikeMC777/stencil-orders/internal/db"
)

const WeeklyLimit = 52

type Repository interface {
	Ping(ctx context.Context) (bool, error)
	SeedSummary(ctx context.Context) (db.Row, error)
	ShippedOrders(ctx context.Context, limit, offset int) ([]db.Row, error)
	Weekly(ctx context.Context) ([]db.Row, error)
	RefreshWeekly(ctx context.Context) error
}

// ShippedQuery is the paging window for GET /orders/shipped.
type ShippedQuery struct {
	Limit  int `form:"limit,default=100" binding:"min=1,max=500"`
	Offset int `form:"offset,default=0"  binding:"min=0"`
}

type PGRepo struct {
	db      *db.Pool
	timeout time.Duration
}

func NewPGRepo(pool *db.Pool, timeout time.Duration) *PGRepo {
	return &PGRepo{db: pool, timeout: timeout}
}

func (r *PGRepo) Ping(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var row *db.Row
	err := r.db.WithConn(ctx, func(c *pgxpool.Conn) error {
		var err error
		row, err = db.FetchOne(ctx, c, `SELECT 1 AS ok`)
		return err
	})
	if err != nil {
		return false, err
	}
	if row == nil {
		return false, nil
	}
	v, _ := row.Get("ok")
	return v == int32(1), nil
}

// SeedSummary counts rows per table, keeping the select order in the result.
func (r *PGRepo) SeedSummary(ctx context.Context) (db.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := db.FetchAll(ctx, r.db, `
		SELECT 'products' AS key, COUNT(*)::int AS val FROM products UNION ALL
		SELECT 'boxes', COUNT(*)::int FROM boxes UNION ALL
		SELECT 'product_box', COUNT(*)::int FROM product_box UNION ALL
		SELECT 'inventory_items', COUNT(*)::int FROM inventory_items UNION ALL
		SELECT 'icr_rules', COUNT(*)::int FROM inventory_consumption_rules UNION ALL
		SELECT 'orders', COUNT(*)::int FROM orders UNION ALL
		SELECT 'order_items', COUNT(*)::int FROM order_items UNION ALL
		SELECT 'shipments', COUNT(*)::int FROM shipments
	`)
	if err != nil {
		return db.Row{}, err
	}
	return Summarize(rows), nil
}

// Summarize folds key/val rows into one row keyed by table.
func Summarize(rows []db.Row) db.Row {
	keys := make([]string, 0, len(rows))
	vals := make([]any, 0, len(rows))
	for _, row := range rows {
		k, _ := row.Get("key")
		v, _ := row.Get("val")
		name, ok := k.(string)
		if !ok {
			continue
		}
		keys = append(keys, name)
		vals = append(vals, v)
	}
	return db.NewRow(keys, vals)
}

// ShippedOrders reads order_history_v, which only lists orders whose every
// shipment has shipped.
func (r *PGRepo) ShippedOrders(ctx context.Context, limit, offset int) ([]db.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return db.FetchAll(ctx, r.db, `
		SELECT * FROM order_history_v
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
}

func (r *PGRepo) Weekly(ctx context.Context) ([]db.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return db.FetchAll(ctx, r.db, `
		SELECT * FROM weekly_order_tracking_mv
		ORDER BY week_start DESC
		LIMIT $1
	`, WeeklyLimit)
}

func (r *PGRepo) RefreshWeekly(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return r.db.WithTx(ctx, func(tx pgx.Tx) error {
		return db.Execute(ctx, tx, `REFRESH MATERIALIZED VIEW weekly_order_tracking_mv`)
	})
}
