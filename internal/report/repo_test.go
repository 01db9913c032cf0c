package report

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MikeMC777/stencil-orders/internal/db"
)

func TestSummarize_KeepsTableOrder(t *testing.T) {
	cols := []string{"key", "val"}
	rows := []db.Row{
		db.NewRow(cols, []any{"products", int32(12)}),
		db.NewRow(cols, []any{"boxes", int32(3)}),
		db.NewRow(cols, []any{nil, int32(9)}),
		db.NewRow(cols, []any{"icr_rules", int32(0)}),
	}

	b, err := json.Marshal(Summarize(rows))
	require.NoError(t, err)
	require.Equal(t, `{"products":12,"boxes":3,"icr_rules":0}`, string(b))
}

func TestSummarize_Empty(t *testing.T) {
	b, err := json.Marshal(Summarize(nil))
	require.NoError(t, err)
	require.Equal(t, `{}`, string(b))
}
