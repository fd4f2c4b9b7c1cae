package engine

import (
	"fmt"

	"github.com/ovalentin/tracker/internal/pkg/constants"
)

// SelectCellDetail returns exactly the records a pivot cell summarizes.
// It buckets through the same normalization as BuildPivot, so for the
// Count metric len(result) always equals the displayed cell value.
func SelectCellDetail(records []NormalizedRecord, rowDim, colDim, rowValue, colValue string) ([]NormalizedRecord, error) {
	if !KnownDimension(rowDim) {
		return nil, fmt.Errorf("row %q: %w", rowDim, constants.ErrUnknownDimension)
	}
	if !KnownDimension(colDim) {
		return nil, fmt.Errorf("col %q: %w", colDim, constants.ErrUnknownDimension)
	}

	out := make([]NormalizedRecord, 0)
	for _, r := range records {
		if bucketValue(r, rowDim) == rowValue && bucketValue(r, colDim) == colValue {
			out = append(out, r)
		}
	}
	return out, nil
}

// SelectPathDetail returns the records beneath one rollup node, identified
// by its path along RollupLevels. Paths longer than the level order (or
// empty) select nothing and everything respectively.
func SelectPathDetail(records []NormalizedRecord, path []string) []NormalizedRecord {
	if len(path) > len(RollupLevels) {
		return nil
	}

	out := make([]NormalizedRecord, 0)
	for _, r := range records {
		if matchesPath(r, path) {
			out = append(out, r)
		}
	}
	return out
}

func matchesPath(r NormalizedRecord, path []string) bool {
	for i, want := range path {
		key, ok := rollupKey(r, RollupLevels[i])
		if !ok || key != want {
			return false
		}
	}
	return true
}
