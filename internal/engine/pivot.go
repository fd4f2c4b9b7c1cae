package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ovalentin/tracker/internal/pkg/constants"
)

// Metric selects what a pivot cell aggregates.
type Metric string

const (
	MetricCount   Metric = "Count"
	MetricMinutes Metric = "Minutes"
	MetricHours   Metric = "Hours"
	MetricDays    Metric = "Days"
)

const (
	minutesPerHour = 60
	// The source tracks effort against a 6-hour workday.
	minutesPerDay = 360
)

// ParseMetric resolves a metric name case-insensitively; "" defaults to
// Minutes, the report's initial selection.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return MetricMinutes, nil
	case "count":
		return MetricCount, nil
	case "minutes":
		return MetricMinutes, nil
	case "hours":
		return MetricHours, nil
	case "days":
		return MetricDays, nil
	default:
		return "", fmt.Errorf("%q: %w", s, constants.ErrUnknownMetric)
	}
}

// TotalLabel and GrandTotalLabel name the synthetic column and row every
// pivot carries.
const (
	TotalLabel      = "TOTAL"
	GrandTotalLabel = "GRAND TOTAL"
)

// PivotTable cross-tabulates records by two semantic dimensions. Row and
// column values appear in first-seen order over the record list, the
// order distinct values were discovered, not sorted. Absent dimension
// values aggregate under the "(blank)" bucket so every record is counted
// and the grand total always equals the filtered set's size for Count.
type PivotTable struct {
	RowDim string `json:"rowDim"`
	ColDim string `json:"colDim"`
	Metric Metric `json:"metric"`

	RowValues []string `json:"rowValues"`
	ColValues []string `json:"colValues"`

	Grid       map[string]map[string]float64 `json:"grid"`
	RowTotals  map[string]float64            `json:"rowTotals"`
	ColTotals  map[string]float64            `json:"colTotals"`
	GrandTotal float64                       `json:"grandTotal"`
}

// BuildPivot cross-tabulates records. The table is recomputed whole on
// every call, never updated incrementally. rowDim == colDim degenerates
// to a diagonal grid; that is permitted.
func BuildPivot(records []NormalizedRecord, rowDim, colDim string, metric Metric) (*PivotTable, error) {
	if !KnownDimension(rowDim) {
		return nil, fmt.Errorf("row %q: %w", rowDim, constants.ErrUnknownDimension)
	}
	if !KnownDimension(colDim) {
		return nil, fmt.Errorf("col %q: %w", colDim, constants.ErrUnknownDimension)
	}

	t := &PivotTable{
		RowDim:    rowDim,
		ColDim:    colDim,
		Metric:    metric,
		Grid:      make(map[string]map[string]float64),
		RowTotals: make(map[string]float64),
		ColTotals: make(map[string]float64),
	}

	type cell struct{ count, minutes float64 }
	cells := make(map[string]map[string]*cell)

	for _, r := range records {
		rv := bucketValue(r, rowDim)
		cv := bucketValue(r, colDim)

		row, ok := cells[rv]
		if !ok {
			row = make(map[string]*cell)
			cells[rv] = row
			t.RowValues = append(t.RowValues, rv)
		}
		if !containsString(t.ColValues, cv) {
			t.ColValues = append(t.ColValues, cv)
		}
		c, ok := row[cv]
		if !ok {
			c = &cell{}
			row[cv] = c
		}
		c.count++
		c.minutes += r.Minutes
	}

	for _, rv := range t.RowValues {
		t.Grid[rv] = make(map[string]float64, len(t.ColValues))
		for _, cv := range t.ColValues {
			var v float64
			if c, ok := cells[rv][cv]; ok {
				v = metricValue(metric, c.count, c.minutes)
			}
			t.Grid[rv][cv] = v
			t.RowTotals[rv] += v
			t.ColTotals[cv] += v
			t.GrandTotal += v
		}
	}

	return t, nil
}

func metricValue(metric Metric, count, minutes float64) float64 {
	switch metric {
	case MetricCount:
		return count
	case MetricHours:
		return minutes / minutesPerHour
	case MetricDays:
		return minutes / minutesPerDay
	default:
		return minutes
	}
}

// FormatCell renders an aggregate for display. Count renders plain
// integers, zeroes included; the effort metrics render "-" for zero so
// empty cells read as "no data", and two decimals otherwise. One
// convention, applied to every cell including totals.
func FormatCell(metric Metric, v float64) string {
	if metric == MetricCount {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	if v == 0 {
		return "-"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
