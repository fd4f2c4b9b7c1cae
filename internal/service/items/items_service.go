package items

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ovalentin/tracker/internal/domain"
	"github.com/ovalentin/tracker/internal/pkg/logger"
	"github.com/ovalentin/tracker/internal/pkg/store"
)

// Service fetches table snapshots and passes row mutations through to the
// warehouse. Reads are retried; a superseded snapshot is simply replaced
// by the next one (last response wins).
type Service struct {
	store    store.Store
	rowLimit int
}

func NewItemsService(store store.Store, rowLimit int) *Service {
	return &Service{store: store, rowLimit: rowLimit}
}

// Snapshot loads column metadata and rows concurrently. The row cap keeps
// the payload bounded; there is no paging below it.
func (s *Service) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	var snap domain.Snapshot

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return s.retry(egCtx, "columns", func() error {
			cols, err := s.store.Columns(egCtx)
			if err != nil {
				return err
			}
			snap.Columns = cols
			return nil
		})
	})
	eg.Go(func() error {
		return s.retry(egCtx, "rows", func() error {
			rows, err := s.store.SelectRows(egCtx, s.rowLimit)
			if err != nil {
				return err
			}
			snap.Rows = rows
			return nil
		})
	})

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}

	return &snap, nil
}

func (s *Service) retry(ctx context.Context, what string, op func() error) error {
	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 3), ctx)
	return backoff.RetryNotify(op, policy, func(err error, next time.Duration) {
		logger.Warnf(ctx, "fetch %s failed, retrying in %s: %s", what, next, err.Error())
	})
}

// Create inserts a row under a fresh id and returns it.
func (s *Service) Create(ctx context.Context, fields map[string]interface{}) (string, error) {
	id := uuid.NewString()
	fields["id"] = id
	if err := s.store.InsertItem(ctx, fields); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Service) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return s.store.UpdateItem(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteItem(ctx, id)
}
