package reports

import (
	"context"
	"time"

	"github.com/ovalentin/tracker/internal/engine"
	"github.com/ovalentin/tracker/internal/service/items"
)

// Service recomputes report read models from a fresh snapshot on every
// request. Nothing is cached or updated incrementally; the engine
// functions are pure, so each call is a full normalize, filter and
// aggregate pass.
type Service struct {
	items *items.Service
}

func NewReportsService(items *items.Service) *Service {
	return &Service{items: items}
}

// filtered loads the snapshot and returns the normalized records passing
// the filter set.
func (s *Service) filtered(ctx context.Context, f engine.FilterSet) ([]engine.NormalizedRecord, error) {
	snap, err := s.items.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	normalized := engine.Normalize(snap.Rows, engine.NewLabelResolver(snap.Columns))
	return engine.ApplyFilters(normalized, f), nil
}

func (s *Service) Pivot(ctx context.Context, f engine.FilterSet, rowDim, colDim string, metric engine.Metric) (*engine.PivotTable, error) {
	records, err := s.filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	return engine.BuildPivot(records, rowDim, colDim, metric)
}

func (s *Service) Daywise(ctx context.Context, f engine.FilterSet) ([]*engine.HierarchyNode, error) {
	records, err := s.filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	return engine.BuildRollup(records), nil
}

func (s *Service) Drilldown(ctx context.Context, f engine.FilterSet, rowDim, colDim, rowValue, colValue string) ([]engine.NormalizedRecord, error) {
	records, err := s.filtered(ctx, f)
	if err != nil {
		return nil, err
	}
	return engine.SelectCellDetail(records, rowDim, colDim, rowValue, colValue)
}

func (s *Service) Dashboard(ctx context.Context) (engine.DashboardSummary, error) {
	records, err := s.filtered(ctx, engine.FilterSet{})
	if err != nil {
		return engine.DashboardSummary{}, err
	}

	today := time.Now().Format("2006-01-02")
	return engine.BuildDashboard(records, today), nil
}
