package db

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestQueryTracer_RecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	qt := NewQueryTracer(tp)

	ctx := qt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "INSERT INTO orders(status) VALUES ($1)", Args: []any{"draft"}})
	qt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{CommandTag: pgconn.NewCommandTag("INSERT 0 1")})

	ctx = qt.TraceQueryStart(context.Background(), nil, pgx.TraceQueryStartData{SQL: "SELECT * FROM nope"})
	qt.TraceQueryEnd(ctx, nil, pgx.TraceQueryEndData{Err: errors.New("relation \"nope\" does not exist")})

	spans := rec.Ended()
	require.Len(t, spans, 2)
	require.Equal(t, "db.insert", spans[0].Name())
	require.Equal(t, codes.Unset, spans[0].Status().Code)
	require.Equal(t, "db.select", spans[1].Name())
	require.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestSpanName(t *testing.T) {
	require.Equal(t, "db.query", spanName("   "))
	require.Equal(t, "db.refresh", spanName("\n REFRESH MATERIALIZED VIEW weekly_order_tracking_mv"))
}
