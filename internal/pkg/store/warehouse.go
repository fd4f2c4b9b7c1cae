package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/ovalentin/tracker/internal/domain"
	"github.com/ovalentin/tracker/internal/pkg/constants"
	"github.com/ovalentin/tracker/internal/pkg/logger"
)

// Columns reads the tracked table's column metadata from the catalog.
// Labels are the upper-cased column names, matching what the table's
// consumers already render as headers.
func (s *store) Columns(ctx context.Context) ([]domain.Column, error) {
	query := builder().Select("column_name").
		From("information_schema.columns").
		Where(sq.Eq{"table_schema": s.schema, "table_name": s.table}).
		OrderBy("ordinal_position")

	rows, err := s.pool.Queryx(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select columns: %w", wrapErr(err))
	}
	defer rows.Close()

	var cols []domain.Column
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		cols = append(cols, domain.Column{Key: name, Label: strings.ToUpper(name)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate columns: %w", err)
	}

	return cols, nil
}

// SelectRows fetches the snapshot, capped at limit rows. Column keys come
// from the result's field descriptions, so the store never assumes the
// table's shape.
func (s *store) SelectRows(ctx context.Context, limit int) ([]domain.Record, error) {
	query := builder().Select("*").From(s.qualify()).Limit(uint64(limit))

	rows, err := s.pool.Queryx(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select rows: %w", wrapErr(err))
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	out := make([]domain.Record, 0, limit)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row values: %w", err)
		}
		record := make(domain.Record, len(fields))
		for i, fd := range fields {
			record[fd.Name] = values[i]
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return out, nil
}

func (s *store) InsertItem(ctx context.Context, fields map[string]interface{}) error {
	query := builder().Insert(s.qualify()).SetMap(fields)

	if _, err := s.pool.Execx(ctx, query); err != nil {
		logger.Errorf(ctx, "insert item: %s", err.Error())
		return fmt.Errorf("insert item: %w", wrapErr(err))
	}
	return nil
}

func (s *store) UpdateItem(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return constants.ErrEmptyUpdate
	}

	query := builder().Update(s.qualify()).SetMap(fields).Where(sq.Eq{"id": id})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		logger.Errorf(ctx, "update item %s: %s", id, err.Error())
		return fmt.Errorf("update item: %w", wrapErr(err))
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}
	return nil
}

func (s *store) DeleteItem(ctx context.Context, id string) error {
	query := builder().Delete(s.qualify()).Where(sq.Eq{"id": id})

	tag, err := s.pool.Execx(ctx, query)
	if err != nil {
		logger.Errorf(ctx, "delete item %s: %s", id, err.Error())
		return fmt.Errorf("delete item: %w", wrapErr(err))
	}
	if tag.RowsAffected() == 0 {
		return constants.ErrDBNotFound
	}
	return nil
}
