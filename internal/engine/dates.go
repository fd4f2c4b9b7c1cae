package engine

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Canonical dates are local calendar days rendered as "YYYY-MM-DD". Keying
// on the calendar day rather than the instant keeps two raw values that
// denote the same day in the same group no matter which format produced
// them, and avoids the UTC-shift off-by-one on bare date strings.

const canonicalDateLayout = "2006-01-02"

var (
	isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	mdyDateRe = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})[/\-](\d{4})`)
)

// fallbackLayouts is tried last, mirroring the source data's observed
// long-form entries.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	time.RFC1123,
}

// NormalizeDate parses a heterogeneous raw date value into its canonical
// "YYYY-MM-DD" form. Accepted shapes: ISO date strings, M/D/YYYY and
// M-D-YYYY, unix timestamps in seconds or milliseconds, timestamp-like
// objects carrying a "seconds" field, and time.Time as handed over by the
// pgx scanner. Returns ok=false for anything unparseable; the caller drops
// such records from date-keyed views only, never fails.
func NormalizeDate(raw interface{}) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case time.Time:
		if v.IsZero() {
			return "", false
		}
		return v.Format(canonicalDateLayout), true
	case string:
		return normalizeDateString(v)
	case map[string]interface{}:
		if sec, ok := timestampSeconds(v); ok {
			return time.Unix(sec, 0).Format(canonicalDateLayout), true
		}
		return "", false
	default:
		if f, ok := asFloat(raw); ok {
			return normalizeEpoch(f)
		}
		return "", false
	}
}

func normalizeDateString(raw string) (string, bool) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, "\u00a0", ""))
	if s == "" {
		return "", false
	}

	if isoDateRe.MatchString(s) {
		return s, true
	}

	if m := mdyDateRe.FindStringSubmatch(s); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local).Format(canonicalDateLayout), true
	}

	// Bare numeric strings are epoch timestamps, not dates.
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return normalizeEpoch(f)
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(canonicalDateLayout), true
		}
	}

	return "", false
}

// normalizeEpoch interprets a numeric value as a unix timestamp:
// milliseconds above 1e12, seconds above 1e9, implausible otherwise.
func normalizeEpoch(f float64) (string, bool) {
	switch {
	case f > 1e12:
		return time.UnixMilli(int64(f)).Format(canonicalDateLayout), true
	case f > 1e9:
		return time.Unix(int64(f), 0).Format(canonicalDateLayout), true
	default:
		return "", false
	}
}

// timestampSeconds extracts the seconds field of a Firestore-style
// timestamp object.
func timestampSeconds(m map[string]interface{}) (int64, bool) {
	for _, key := range []string{"seconds", "_seconds"} {
		if f, ok := asFloat(m[key]); ok && f > 0 {
			return int64(f), true
		}
	}
	return 0, false
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
