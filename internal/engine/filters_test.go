package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovalentin/tracker/internal/domain"
)

func sampleRecords(t *testing.T) []NormalizedRecord {
	t.Helper()
	rows := []domain.Record{
		{"id": "1", "business": "Acme", "status": "Open", "owner": "florence", "create_date": "2026-01-13", "min": float64(30)},
		{"id": "2", "business": "acme ", "status": "open", "owner": "Dan", "create_date": "01/14/2026", "min": float64(45)},
		{"id": "3", "business": "Beta", "status": "Closed", "owner": "Dan", "create_date": "2026-01-20", "min": float64(10)},
		{"id": "4", "business": "Beta", "status": "Closed", "owner": "kams", "min": float64(5)}, // no date
	}
	return Normalize(rows, NewLabelResolver(warehouseColumns()))
}

func TestApplyFilters_UnsetPassesEverything(t *testing.T) {
	records := sampleRecords(t)
	got := ApplyFilters(records, FilterSet{})
	assert.Equal(t, records, got)
}

func TestApplyFilters_StatusEquality(t *testing.T) {
	records := sampleRecords(t)

	var f FilterSet
	f.SetStatus("Closed")

	got := ApplyFilters(records, f)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "Beta", r.Business)
	}
}

func TestApplyFilters_SetterCanonicalizesInput(t *testing.T) {
	records := sampleRecords(t)

	var f FilterSet
	f.SetBusiness(" ACME")

	got := ApplyFilters(records, f)
	assert.Len(t, got, 2)
}

func TestApplyFilters_DateRangeInclusive(t *testing.T) {
	records := sampleRecords(t)

	var f FilterSet
	require.True(t, f.SetDateFrom("2026-01-13"))
	require.True(t, f.SetDateTo("2026-01-14"))

	got := ApplyFilters(records, f)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-01-13", got[0].CreateDate)
	assert.Equal(t, "2026-01-14", got[1].CreateDate)
}

func TestApplyFilters_DatelessExcludedOnlyWithBound(t *testing.T) {
	records := sampleRecords(t)

	var bounded FilterSet
	require.True(t, bounded.SetDateFrom("2026-01-01"))
	for _, r := range ApplyFilters(records, bounded) {
		assert.NotEmpty(t, r.CreateDate)
	}

	unbounded := ApplyFilters(records, FilterSet{})
	assert.Len(t, unbounded, len(records))
}

func TestApplyFilters_PreservesOrderAndInput(t *testing.T) {
	records := sampleRecords(t)
	before := append([]NormalizedRecord{}, records...)

	var f FilterSet
	f.SetOwner("dan")
	got := ApplyFilters(records, f)

	require.Len(t, got, 2)
	assert.Equal(t, "Acme", got[0].Business)
	assert.Equal(t, "Beta", got[1].Business)
	assert.Equal(t, before, records)
}

func TestApplyFilters_Monotonicity(t *testing.T) {
	records := sampleRecords(t)

	var f FilterSet
	base := len(ApplyFilters(records, f))

	f.SetStatus("Closed")
	withStatus := len(ApplyFilters(records, f))
	assert.LessOrEqual(t, withStatus, base)

	f.SetOwner("Dan")
	withOwner := len(ApplyFilters(records, f))
	assert.LessOrEqual(t, withOwner, withStatus)

	require.True(t, f.SetDateFrom("2026-01-01"))
	withDate := len(ApplyFilters(records, f))
	assert.LessOrEqual(t, withDate, withOwner)
}

func TestFilterSet_BadDateBoundRejected(t *testing.T) {
	var f FilterSet
	assert.False(t, f.SetDateFrom("soonish"))
	assert.Empty(t, f.DateFrom)
	assert.True(t, f.SetDateTo(""))
}
