package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovalentin/tracker/internal/domain"
)

// The worked example: three records, two of them the same business/status
// pair modulo casing and whitespace.
func exampleRecords(t *testing.T) []NormalizedRecord {
	t.Helper()
	rows := []domain.Record{
		{"business": "Acme", "status": "Open", "min": float64(30)},
		{"business": "acme ", "status": "open", "min": float64(45)},
		{"business": "Beta", "status": "Closed", "min": float64(10)},
	}
	return Normalize(rows, NewLabelResolver(warehouseColumns()))
}

func TestBuildPivot_MinutesExample(t *testing.T) {
	table, err := BuildPivot(exampleRecords(t), DimBusiness, DimStatus, MetricMinutes)
	require.NoError(t, err)

	assert.Equal(t, []string{"Acme", "Beta"}, table.RowValues)
	assert.Equal(t, []string{"Open", "Closed"}, table.ColValues)
	assert.Equal(t, 75.0, table.Grid["Acme"]["Open"])
	assert.Equal(t, 10.0, table.Grid["Beta"]["Closed"])
	assert.Equal(t, 0.0, table.Grid["Acme"]["Closed"])
	assert.Equal(t, 75.0, table.RowTotals["Acme"])
	assert.Equal(t, 10.0, table.RowTotals["Beta"])
	assert.Equal(t, 85.0, table.GrandTotal)
}

func TestBuildPivot_GrandTotalInvariants(t *testing.T) {
	records := exampleRecords(t)

	count, err := BuildPivot(records, DimBusiness, DimStatus, MetricCount)
	require.NoError(t, err)
	assert.Equal(t, float64(len(records)), count.GrandTotal)

	var minutesSum float64
	for _, r := range records {
		minutesSum += r.Minutes
	}
	minutes, err := BuildPivot(records, DimBusiness, DimStatus, MetricMinutes)
	require.NoError(t, err)
	assert.Equal(t, minutesSum, minutes.GrandTotal)
}

func TestBuildPivot_TotalsSumAcrossAxes(t *testing.T) {
	table, err := BuildPivot(sampleRecords(t), DimOwner, DimStatus, MetricCount)
	require.NoError(t, err)

	for _, rv := range table.RowValues {
		var sum float64
		for _, cv := range table.ColValues {
			sum += table.Grid[rv][cv]
		}
		assert.Equal(t, sum, table.RowTotals[rv], "row %q", rv)
	}
	for _, cv := range table.ColValues {
		var sum float64
		for _, rv := range table.RowValues {
			sum += table.Grid[rv][cv]
		}
		assert.Equal(t, sum, table.ColTotals[cv], "col %q", cv)
	}
}

func TestBuildPivot_HoursAndDaysDivision(t *testing.T) {
	records := exampleRecords(t)

	hours, err := BuildPivot(records, DimBusiness, DimStatus, MetricHours)
	require.NoError(t, err)
	assert.InDelta(t, 1.25, hours.Grid["Acme"]["Open"], 1e-9)

	days, err := BuildPivot(records, DimBusiness, DimStatus, MetricDays)
	require.NoError(t, err)
	assert.InDelta(t, 75.0/360, days.Grid["Acme"]["Open"], 1e-9)
}

func TestBuildPivot_BlankBucketKeepsTotalsConsistent(t *testing.T) {
	rows := []domain.Record{
		{"business": "Acme", "min": float64(30)}, // no status
		{"business": "Acme", "status": "Open", "min": float64(45)},
	}
	records := Normalize(rows, NewLabelResolver(warehouseColumns()))

	table, err := BuildPivot(records, DimBusiness, DimStatus, MetricCount)
	require.NoError(t, err)

	assert.Equal(t, []string{BlankLabel, "Open"}, table.ColValues)
	assert.Equal(t, 1.0, table.Grid["Acme"][BlankLabel])
	assert.Equal(t, float64(len(records)), table.GrandTotal)
}

func TestBuildPivot_SameDimensionDiagonal(t *testing.T) {
	table, err := BuildPivot(exampleRecords(t), DimBusiness, DimBusiness, MetricCount)
	require.NoError(t, err)

	assert.Equal(t, 2.0, table.Grid["Acme"]["Acme"])
	assert.Equal(t, 1.0, table.Grid["Beta"]["Beta"])
	assert.Equal(t, 0.0, table.Grid["Acme"]["Beta"])
	assert.Equal(t, 0.0, table.Grid["Beta"]["Acme"])
}

func TestBuildPivot_FirstSeenOrder(t *testing.T) {
	rows := []domain.Record{
		{"business": "Zeta", "status": "Open"},
		{"business": "Acme", "status": "Closed"},
		{"business": "Zeta", "status": "Stuck"},
		{"business": "Midway", "status": "Open"},
	}
	records := Normalize(rows, NewLabelResolver(warehouseColumns()))

	table, err := BuildPivot(records, DimBusiness, DimStatus, MetricCount)
	require.NoError(t, err)
	assert.Equal(t, []string{"Zeta", "Acme", "Midway"}, table.RowValues)
	assert.Equal(t, []string{"Open", "Closed", "Stuck"}, table.ColValues)
}

func TestBuildPivot_UnknownDimension(t *testing.T) {
	_, err := BuildPivot(exampleRecords(t), "sprint", DimStatus, MetricCount)
	assert.Error(t, err)

	_, err = BuildPivot(exampleRecords(t), DimBusiness, "sprint", MetricCount)
	assert.Error(t, err)
}

func TestParseMetric(t *testing.T) {
	for raw, want := range map[string]Metric{
		"":        MetricMinutes,
		"count":   MetricCount,
		"Count":   MetricCount,
		"MINUTES": MetricMinutes,
		"hours":   MetricHours,
		"days":    MetricDays,
	} {
		got, err := ParseMetric(raw)
		require.NoError(t, err, "input %q", raw)
		assert.Equal(t, want, got, "input %q", raw)
	}

	_, err := ParseMetric("fortnights")
	assert.Error(t, err)
}

func TestFormatCell_Conventions(t *testing.T) {
	// Count renders zero as "0"; effort metrics render zero as a
	// placeholder and everything else with two decimals.
	assert.Equal(t, "0", FormatCell(MetricCount, 0))
	assert.Equal(t, "3", FormatCell(MetricCount, 3))
	assert.Equal(t, "-", FormatCell(MetricMinutes, 0))
	assert.Equal(t, "75.00", FormatCell(MetricMinutes, 75))
	assert.Equal(t, "1.25", FormatCell(MetricHours, 1.25))
	assert.Equal(t, "-", FormatCell(MetricDays, 0))
}
