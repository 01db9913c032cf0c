package order

import "time"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPaid      Status = "paid"
	StatusFulfilled Status = "fulfilled"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPaid, StatusFulfilled, StatusCancelled:
		return true
	}
	return false
}

// Order is the row shape returned by create/get/list.
type Order struct {
	ID        int64      `json:"id"         db:"id"`
	Status    Status     `json:"status"     db:"status"`
	Date      *string    `json:"date"       db:"date"` // YYYY-MM-DD
	ShippedAt *time.Time `json:"shipped_at" db:"shipped_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`
}
