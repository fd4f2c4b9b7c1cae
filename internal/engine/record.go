package engine

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ovalentin/tracker/internal/domain"
)

// Semantic dimension names accepted by the pivot, rollup and drill-down
// entry points.
const (
	DimBusiness     = "business"
	DimBusinessType = "businessType"
	DimProcess      = "process"
	DimSubType      = "subType"
	DimDeliverable  = "deliverable"
	DimStatus       = "status"
	DimOwner        = "owner"
	DimPriority     = "priority"
	DimDate         = "date"
)

var knownDimensions = map[string]bool{
	DimBusiness:     true,
	DimBusinessType: true,
	DimProcess:      true,
	DimSubType:      true,
	DimDeliverable:  true,
	DimStatus:       true,
	DimOwner:        true,
	DimPriority:     true,
	DimDate:         true,
}

// KnownDimension reports whether name is a valid semantic dimension.
func KnownDimension(name string) bool { return knownDimensions[name] }

// NormalizedRecord is the fixed-field view of a raw Record used by every
// report. Categorical fields hold canonical values ("" = absent), date
// fields hold canonical "YYYY-MM-DD" strings ("" = unresolvable), minutes
// is coerced to 0 when missing or non-numeric. Raw keeps the original row
// for detail rendering; it is never mutated.
type NormalizedRecord struct {
	Business     string  `json:"business,omitempty"`
	BusinessType string  `json:"businessType,omitempty"`
	Process      string  `json:"process,omitempty"`
	SubType      string  `json:"subType,omitempty"`
	Deliverable  string  `json:"deliverable,omitempty"`
	Status       string  `json:"status,omitempty"`
	Owner        string  `json:"owner,omitempty"`
	Priority     string  `json:"priority,omitempty"`
	CreateDate   string  `json:"createDate,omitempty"`
	Deadline     string  `json:"deadline,omitempty"`
	Minutes      float64 `json:"minutes"`

	Raw domain.Record `json:"raw,omitempty"`
}

// fieldKeys is the resolved key per semantic field for one snapshot.
type fieldKeys struct {
	business     string
	businessType string
	process      string
	subType      string
	deliverable  string
	status       string
	owner        string
	priority     string
	date         string
	deadline     string
	minutes      string
}

func resolveFieldKeys(r ColumnResolver) fieldKeys {
	return fieldKeys{
		business:     resolveFirst(r, "business"),
		businessType: resolveFirst(r, "business type"),
		process:      resolveFirst(r, "process"),
		subType:      resolveFirst(r, "process subtype", "sub type"),
		deliverable:  resolveFirst(r, "deliverable"),
		status:       resolveFirst(r, "status"),
		owner:        resolveFirst(r, "owner", "user"),
		priority:     resolveFirst(r, "priority"),
		date:         resolveFirst(r, "create date", "date"),
		deadline:     resolveFirst(r, "deadline", "due date"),
		minutes:      resolveFirst(r, "min", "minutes"),
	}
}

// Normalize projects raw snapshot rows into NormalizedRecords using the
// given resolver. A column the resolver cannot place simply leaves that
// field absent on every record; aggregations bucket those under "(blank)"
// instead of failing.
func Normalize(rows []domain.Record, resolver ColumnResolver) []NormalizedRecord {
	keys := resolveFieldKeys(resolver)

	out := make([]NormalizedRecord, 0, len(rows))
	for _, row := range rows {
		nr := NormalizedRecord{
			Business:     canonField(row, keys.business),
			BusinessType: canonField(row, keys.businessType),
			Process:      canonField(row, keys.process),
			SubType:      canonField(row, keys.subType),
			Deliverable:  canonField(row, keys.deliverable),
			Status:       canonField(row, keys.status),
			Owner:        canonField(row, keys.owner),
			Priority:     canonField(row, keys.priority),
			Minutes:      minutesField(row, keys.minutes),
			Raw:          row,
		}
		if raw := dateValue(row, keys.date); raw != nil {
			nr.CreateDate, _ = NormalizeDate(raw)
		}
		if keys.deadline != "" {
			nr.Deadline, _ = NormalizeDate(row[keys.deadline])
		}
		out = append(out, nr)
	}
	return out
}

// DimensionValue returns a record's canonical value for a semantic
// dimension; ok=false for an unknown dimension name.
func DimensionValue(r NormalizedRecord, dim string) (string, bool) {
	switch dim {
	case DimBusiness:
		return r.Business, true
	case DimBusinessType:
		return r.BusinessType, true
	case DimProcess:
		return r.Process, true
	case DimSubType:
		return r.SubType, true
	case DimDeliverable:
		return r.Deliverable, true
	case DimStatus:
		return r.Status, true
	case DimOwner:
		return r.Owner, true
	case DimPriority:
		return r.Priority, true
	case DimDate:
		return r.CreateDate, true
	default:
		return "", false
	}
}

// bucketValue is DimensionValue with absent values mapped to the blank
// bucket. The pivot, the drill-down and the filter detail all go through
// this one function so displayed counts and selected subsets always agree.
func bucketValue(r NormalizedRecord, dim string) string {
	v, _ := DimensionValue(r, dim)
	if v == "" {
		return BlankLabel
	}
	return v
}

func canonField(row domain.Record, key string) string {
	if key == "" {
		return ""
	}
	return canonOrEmpty(stringValue(row[key]))
}

func minutesField(row domain.Record, key string) float64 {
	if key == "" {
		return 0
	}
	switch v := row[key].(type) {
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		f, _ := asFloat(v)
		return f
	}
}

// stringValue renders a raw cell as text. Nested objects carrying a
// "value" field unwrap to it, which is how the source represents
// sheet-imported cells.
func stringValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case map[string]interface{}:
		if inner, ok := t["value"].(string); ok {
			return inner
		}
		return ""
	default:
		return ""
	}
}

var altDateKeyRe = regexp.MustCompile(`(?i)date|created`)

// dateValue finds the raw date for a record: the resolved date column
// first, then any top-level key that looks date-ish, then a bounded
// recursive search through nested objects. Returns nil when nothing
// usable exists; such records drop out of date-keyed views only.
func dateValue(row domain.Record, dateKey string) interface{} {
	if dateKey != "" {
		if v, ok := row[dateKey]; ok && v != nil {
			return v
		}
	}

	for _, k := range sortedKeys(row) {
		if v := row[k]; v != nil && altDateKeyRe.MatchString(k) {
			return v
		}
	}

	return findNestedDate(map[string]interface{}(row), 0)
}

// sortedKeys keeps the alt-key scan deterministic across runs.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

const maxDateSearchDepth = 4

func findNestedDate(obj map[string]interface{}, depth int) interface{} {
	if depth > maxDateSearchDepth {
		return nil
	}
	for _, k := range sortedKeys(obj) {
		switch t := obj[k].(type) {
		case nil:
			continue
		case map[string]interface{}:
			if _, ok := timestampSeconds(t); ok {
				return t
			}
			if found := findNestedDate(t, depth+1); found != nil {
				return found
			}
		case string:
			if _, ok := normalizeDateString(t); ok {
				return t
			}
		default:
			if f, ok := asFloat(t); ok && f > 1e9 {
				return f
			}
		}
	}
	return nil
}
