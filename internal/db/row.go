package db

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// Row is one result row with its columns in select order.
type Row struct {
	cols []string
	vals []any
}

func NewRow(cols []string, vals []any) Row {
	return Row{cols: cols, vals: vals}
}

func (r Row) Columns() []string { return r.cols }

func (r Row) Len() int { return len(r.cols) }

// Get returns the value of the first column named col.
func (r Row) Get(col string) (any, bool) {
	for i, c := range r.cols {
		if c == col {
			return r.vals[i], true
		}
	}
	return nil, false
}

// MarshalJSON writes the row as a flat object, preserving column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.cols {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(r.vals[i])
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", c, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// normalize turns driver values into their JSON-facing form.
func normalize(oid uint32, v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case time.Time:
		if oid == pgtype.DateOID {
			return x.Format(time.DateOnly)
		}
		return x
	case pgtype.InfinityModifier:
		return x.String()
	case pgtype.Numeric:
		return numericValue(x)
	case [16]byte:
		if oid == pgtype.UUIDOID {
			return uuid.UUID(x).String()
		}
	}
	return v
}

func numericValue(n pgtype.Numeric) any {
	switch {
	case !n.Valid:
		return nil
	case n.NaN:
		return "NaN"
	case n.InfinityModifier != pgtype.Finite:
		return n.InfinityModifier.String()
	case n.Int == nil:
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
