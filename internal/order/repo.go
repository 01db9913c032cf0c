package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/stencil-orders/internal/db"
)

var (
	ErrNotFound = errors.New("order not found")
)

type Repository interface {
	Create(ctx context.Context, in CreateOrderRequest) (*Order, error)
	GetByID(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context, limit, offset int) ([]db.Row, error)
	AddItem(ctx context.Context, in CreateItemRequest) (db.Row, error)
}

type PGRepo struct {
	db      *db.Pool
	timeout time.Duration
}

func NewPGRepo(pool *db.Pool, timeout time.Duration) *PGRepo {
	return &PGRepo{db: pool, timeout: timeout}
}

// enum and date columns are read back as text so they scan into plain strings.
const orderColumns = `id, status::text AS status, date::text AS date, shipped_at, created_at, updated_at`

func (r *PGRepo) Create(ctx context.Context, in CreateOrderRequest) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var out *Order
	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			INSERT INTO orders (status, date)
			VALUES ($1, $2)
			RETURNING `+orderColumns,
			string(in.StatusOrDefault()), in.Date)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[Order])
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PGRepo) GetByID(ctx context.Context, id int64) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	rows, err := r.db.Query(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	o, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[Order])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

// List returns whole order rows, newest first, so columns added to orders
// show up without code changes.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]db.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return db.FetchAll(ctx, r.db, `
		SELECT * FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
}

func (r *PGRepo) AddItem(ctx context.Context, in CreateItemRequest) (db.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var row *db.Row
	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		row, err = db.FetchOne(ctx, tx, `
			INSERT INTO order_items (order_id, product_id, qty, unit_price_cents, shipping_note, proof_sent)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		`, in.OrderID, in.ProductID, in.Qty, in.UnitPriceCents, in.ShippingNote, in.ProofSent)
		if err == nil && row == nil {
			err = errors.New("insert returned no row")
		}
		return err
	})
	if err != nil {
		return db.Row{}, err
	}
	return *row, nil
}
