package engine

import (
	"strings"
	"unicode"
)

// Bucket labels for values that cannot be grouped by their own content.
const (
	BlankLabel   = "(blank)"
	UnknownLabel = "(Unknown)"
)

// CanonicalValue folds a free-text categorical value into its grouping
// form: trim, lower-case, then title-case each token, so "in progress",
// "In Progress" and " IN PROGRESS " collapse into one group. Returns
// ok=false for empty or whitespace-only input.
//
// The source table is free-text entry with no enforced vocabulary, so this
// runs on every categorical field before any grouping or comparison.
func CanonicalValue(raw string) (string, bool) {
	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) == 0 {
		return "", false
	}
	for i, f := range fields {
		r := []rune(f)
		r[0] = unicode.ToUpper(r[0])
		fields[i] = string(r)
	}
	return strings.Join(fields, " "), true
}

// canonOrEmpty is CanonicalValue with "" standing in for absent.
func canonOrEmpty(raw string) string {
	v, ok := CanonicalValue(raw)
	if !ok {
		return ""
	}
	return v
}
