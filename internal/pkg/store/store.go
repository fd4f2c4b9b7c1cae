package store

import (
	"context"

	"github.com/ovalentin/tracker/internal/domain"
	"github.com/ovalentin/tracker/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

// Store is the warehouse access layer for the single tracked table.
type Store interface {
	Columns(ctx context.Context) ([]domain.Column, error)
	SelectRows(ctx context.Context, limit int) ([]domain.Record, error)
	InsertItem(ctx context.Context, fields map[string]interface{}) error
	UpdateItem(ctx context.Context, id string, fields map[string]interface{}) error
	DeleteItem(ctx context.Context, id string) error
}

type store struct {
	pool   Pool
	schema string
	table  string
}

// NewStore binds the store to one table, given as "schema.table" or a
// bare table name (schema defaults to public).
func NewStore(pool Pool, qualified string) Store {
	schema, table := splitQualified(qualified)
	return &store{pool: pool, schema: schema, table: table}
}
