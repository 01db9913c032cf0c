package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool is the process-wide set of reusable connections. It is built once in
// main and handed to every repository.
type Pool struct {
	pool *pgxpool.Pool
}

type Option func(*pgxpool.Config)

func WithTracer(t pgx.QueryTracer) Option {
	return func(c *pgxpool.Config) { c.ConnConfig.Tracer = t }
}

// Open creates the pool and forces one connection to be established, so a
// bad DATABASE_URL fails at startup instead of on the first request.
func Open(ctx context.Context, url string, minConns, maxConns int32, opts ...Option) (*Pool, error) {
	if url == "" {
		return nil, errors.New("DATABASE_URL is empty")
	}
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}
	cfg.MinConns = minConns
	cfg.MaxConns = maxConns
	for _, opt := range opts {
		opt(cfg)
	}

	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	conn, err := p.Acquire(ctx)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("connect: %w", err)
	}
	conn.Release()
	return &Pool{pool: p}, nil
}

func (p *Pool) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return p.pool.Query(ctx, sql, args...)
}

func (p *Pool) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return p.pool.Exec(ctx, sql, args...)
}

func (p *Pool) Begin(ctx context.Context) (pgx.Tx, error) {
	return p.pool.Begin(ctx)
}

// WithConn acquires a connection for the duration of fn. Acquire waits while
// all MaxConns connections are busy.
func (p *Pool) WithConn(ctx context.Context, fn func(*pgxpool.Conn) error) error {
	conn, err := p.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Release()
	return fn(conn)
}

// WithTx runs fn in a transaction on a pooled connection.
func (p *Pool) WithTx(ctx context.Context, fn func(pgx.Tx) error) error {
	return InTx(ctx, p, fn)
}

func (p *Pool) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Pool) Stat() *pgxpool.Stat {
	return p.pool.Stat()
}

func (p *Pool) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}
