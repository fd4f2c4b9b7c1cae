package engine

import (
	"strings"

	"github.com/ovalentin/tracker/internal/domain"
)

// ColumnResolver maps a human label ("business type") to the underlying
// record field key, or reports a miss. Resolution is deliberately split
// from aggregation so the guessing rules stay testable on their own.
type ColumnResolver interface {
	ResolveKey(name string) (string, bool)
}

// LabelResolver resolves against the snapshot's column metadata with
// deterministic precedence: exact folded match on label or key first, then
// substring containment, then miss. Folding strips case, whitespace and
// separator characters so "business type" finds BUSINESS_TYPE.
type LabelResolver struct {
	cols []domain.Column
}

func NewLabelResolver(cols []domain.Column) *LabelResolver {
	return &LabelResolver{cols: cols}
}

func (r *LabelResolver) ResolveKey(name string) (string, bool) {
	want := foldLabel(name)
	if want == "" {
		return "", false
	}

	for _, c := range r.cols {
		if foldLabel(c.Label) == want || foldLabel(c.Key) == want {
			return c.Key, true
		}
	}

	for _, c := range r.cols {
		if strings.Contains(foldLabel(c.Label), want) || strings.Contains(foldLabel(c.Key), want) {
			return c.Key, true
		}
	}

	return "", false
}

// resolveFirst tries each alias in order and returns the first hit.
func resolveFirst(r ColumnResolver, names ...string) string {
	for _, name := range names {
		if key, ok := r.ResolveKey(name); ok {
			return key
		}
	}
	return ""
}

func foldLabel(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '\t', '_', '-':
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
