package xpgx

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool executes squirrel builders against a pgx pool. Keeping the builder
// as the argument means call sites never touch SQL strings or argument
// slices directly.
type Pool interface {
	Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error)
	Queryx(ctx context.Context, query squirrel.Sqlizer) (pgx.Rows, error)
	Close()
}

type pool struct {
	inner *pgxpool.Pool
}

func NewPool(ctx context.Context, dsn string) (Pool, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("pool.Ping: %w", err)
	}
	return &pool{inner: p}, nil
}

func (p *pool) Execx(ctx context.Context, query squirrel.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("build query: %w", err)
	}
	return p.inner.Exec(ctx, sql, args...)
}

func (p *pool) Queryx(ctx context.Context, query squirrel.Sqlizer) (pgx.Rows, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return p.inner.Query(ctx, sql, args...)
}

func (p *pool) Close() {
	p.inner.Close()
}
