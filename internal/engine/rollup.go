package engine

import (
	"sort"
	"strings"
)

// RollupLevels is the fixed drill-down order of the day-wise report.
var RollupLevels = []string{
	DimDate,
	DimBusinessType,
	DimBusiness,
	DimProcess,
	DimSubType,
	DimDeliverable,
}

// HierarchyNode is one group at one level of the day-wise rollup. Count
// and Minutes cover the node's whole subtree and always equal the sums
// over its children.
type HierarchyNode struct {
	Key          string           `json:"key"`
	DisplayValue string           `json:"displayValue"`
	Level        int              `json:"level"`
	Path         []string         `json:"path"`
	Count        int              `json:"count"`
	Minutes      float64          `json:"minutes"`
	Children     []*HierarchyNode `json:"children,omitempty"`
}

// BuildRollup groups records level by level along RollupLevels. Records
// whose date cannot be resolved are dropped from the tree entirely;
// absent values at every lower level group under "(Unknown)". Date
// siblings sort most recent first, all other levels alphabetically.
func BuildRollup(records []NormalizedRecord) []*HierarchyNode {
	return buildLevel(records, 0, nil)
}

func buildLevel(records []NormalizedRecord, level int, path []string) []*HierarchyNode {
	if level >= len(RollupLevels) {
		return nil
	}
	dim := RollupLevels[level]

	groups := make(map[string][]NormalizedRecord)
	var order []string
	for _, r := range records {
		key, ok := rollupKey(r, dim)
		if !ok {
			continue
		}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], r)
	}

	nodes := make([]*HierarchyNode, 0, len(order))
	for _, key := range order {
		subset := groups[key]
		nodePath := append(append([]string{}, path...), key)

		node := &HierarchyNode{
			Key:          key,
			DisplayValue: key,
			Level:        level,
			Path:         nodePath,
		}
		for _, r := range subset {
			node.Count++
			node.Minutes += r.Minutes
		}
		node.Children = buildLevel(subset, level+1, nodePath)
		nodes = append(nodes, node)
	}

	if dim == DimDate {
		sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Key > nodes[j].Key })
	} else {
		sort.SliceStable(nodes, func(i, j int) bool {
			return strings.ToLower(nodes[i].DisplayValue) < strings.ToLower(nodes[j].DisplayValue)
		})
	}

	return nodes
}

// rollupKey returns the grouping key at a level. Only the date level can
// drop a record; every other level falls back to the unknown bucket.
func rollupKey(r NormalizedRecord, dim string) (string, bool) {
	v, _ := DimensionValue(r, dim)
	if v == "" {
		if dim == DimDate {
			return "", false
		}
		return UnknownLabel, true
	}
	return v, true
}

// ExpandState tracks which rollup paths are open. It is transient UI
// state keyed by node path, independent of the recomputed tree.
type ExpandState map[string]bool

func pathKey(path []string) string { return strings.Join(path, "\x1f") }

func (s ExpandState) IsExpanded(path []string) bool { return s[pathKey(path)] }

func (s ExpandState) Expand(path []string) { s[pathKey(path)] = true }

func (s ExpandState) Collapse(path []string) { delete(s, pathKey(path)) }

// Toggle flips a path and reports the new state.
func (s ExpandState) Toggle(path []string) bool {
	k := pathKey(path)
	if s[k] {
		delete(s, k)
		return false
	}
	s[k] = true
	return true
}
