package shipment

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/MikeMC777/stencil-orders/internal/db"
)

var (
	ErrNotFound = errors.New("shipment not found")
)

type Repository interface {
	Create(ctx context.Context, in CreateRequest) (db.Row, error)
	MarkShipped(ctx context.Context, id int64, in ShipRequest) (db.Row, error)
}

type PGRepo struct {
	db      *db.Pool
	timeout time.Duration
}

func NewPGRepo(pool *db.Pool, timeout time.Duration) *PGRepo {
	return &PGRepo{db: pool, timeout: timeout}
}

func (r *PGRepo) Create(ctx context.Context, in CreateRequest) (db.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var row *db.Row
	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		row, err = db.FetchOne(ctx, tx, `
			INSERT INTO shipments (order_id, box_id, carrier, tracking_no, shipped_at)
			VALUES ($1, $2, $3, $4, $5::timestamptz)
			RETURNING *
		`, in.OrderID, in.BoxID, in.Carrier, in.TrackingNo, in.ShippedAt)
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

// MarkShipped stamps shipped_at (NOW() when omitted) and tracking_no (kept
// when omitted). An unknown id rolls the transaction back and returns ErrNotFound.
func (r *PGRepo) MarkShipped(ctx context.Context, id int64, in ShipRequest) (db.Row, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var row *db.Row
	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		var err error
		row, err = db.FetchOne(ctx, tx, `
			UPDATE shipments
			SET shipped_at  = COALESCE($1::timestamptz, NOW()),
			    tracking_no = COALESCE($2, tracking_no)
			WHERE id = $3
			RETURNING *
		`, in.ShippedAt, in.TrackingNo, id)
		if err == nil && row == nil {
			err = ErrNotFound
		}
		return err
	})
	if err != nil {
		return db.Row{}, err
	}
	return *row, nil
}
