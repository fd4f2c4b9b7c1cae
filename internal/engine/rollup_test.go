package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovalentin/tracker/internal/domain"
)

func rollupRecords(t *testing.T) []NormalizedRecord {
	t.Helper()
	rows := []domain.Record{
		{"business": "Acme", "business_type": "Client", "process": "Reporting", "create_date": "2026-01-13", "min": float64(30)},
		{"business": "Acme", "business_type": "Client", "process": "Billing", "create_date": "01/13/2026", "min": float64(45)},
		{"business": "Beta", "business_type": "Internal", "create_date": "2026-01-20", "min": float64(10)},
		{"business": "Gamma", "min": float64(99)}, // no date: dropped from the tree
	}
	return Normalize(rows, NewLabelResolver(warehouseColumns()))
}

func TestBuildRollup_MergesDateFormatsIntoOneBucket(t *testing.T) {
	tree := BuildRollup(rollupRecords(t))

	require.Len(t, tree, 2)
	// Most recent first.
	assert.Equal(t, "2026-01-20", tree[0].Key)
	assert.Equal(t, "2026-01-13", tree[1].Key)

	jan13 := tree[1]
	assert.Equal(t, 2, jan13.Count)
	assert.Equal(t, 75.0, jan13.Minutes)
}

func TestBuildRollup_DropsDatelessRecordsEntirely(t *testing.T) {
	tree := BuildRollup(rollupRecords(t))

	var total int
	for _, node := range tree {
		total += node.Count
	}
	assert.Equal(t, 3, total) // the Gamma record is nowhere in the tree
}

func TestBuildRollup_ParentEqualsSumOfChildren(t *testing.T) {
	var check func(nodes []*HierarchyNode)
	check = func(nodes []*HierarchyNode) {
		for _, n := range nodes {
			if len(n.Children) == 0 {
				continue
			}
			var count int
			var minutes float64
			for _, child := range n.Children {
				count += child.Count
				minutes += child.Minutes
			}
			assert.Equal(t, n.Count, count, "node %v", n.Path)
			assert.Equal(t, n.Minutes, minutes, "node %v", n.Path)
			check(n.Children)
		}
	}
	check(BuildRollup(rollupRecords(t)))
}

func TestBuildRollup_LevelsAndPaths(t *testing.T) {
	tree := BuildRollup(rollupRecords(t))
	require.NotEmpty(t, tree)

	day := tree[1]
	assert.Equal(t, 0, day.Level)
	assert.Equal(t, []string{"2026-01-13"}, day.Path)

	require.NotEmpty(t, day.Children)
	bt := day.Children[0]
	assert.Equal(t, 1, bt.Level)
	assert.Equal(t, "Client", bt.Key)
	assert.Equal(t, []string{"2026-01-13", "Client"}, bt.Path)

	// Leaf level carries no children.
	node := day
	for len(node.Children) > 0 {
		node = node.Children[0]
	}
	assert.Equal(t, len(RollupLevels)-1, node.Level)
}

func TestBuildRollup_UnknownBucketBelowDateLevel(t *testing.T) {
	tree := BuildRollup(rollupRecords(t))

	// Beta has no process: its subtree must pass through "(Unknown)"
	// buckets instead of dropping the record.
	jan20 := tree[0]
	require.Equal(t, 1, jan20.Count)
	bt := jan20.Children[0]
	assert.Equal(t, "Internal", bt.Key)
	business := bt.Children[0]
	assert.Equal(t, "Beta", business.Key)
	process := business.Children[0]
	assert.Equal(t, UnknownLabel, process.Key)
}

func TestBuildRollup_SiblingOrdering(t *testing.T) {
	rows := []domain.Record{
		{"business_type": "zeta", "create_date": "2026-01-13"},
		{"business_type": "alpha", "create_date": "2026-01-13"},
		{"business_type": "Midway", "create_date": "2026-01-13"},
	}
	tree := BuildRollup(Normalize(rows, NewLabelResolver(warehouseColumns())))

	require.Len(t, tree, 1)
	var names []string
	for _, n := range tree[0].Children {
		names = append(names, n.Key)
	}
	assert.Equal(t, []string{"Alpha", "Midway", "Zeta"}, names)
}

func TestExpandState_Toggle(t *testing.T) {
	state := make(ExpandState)
	path := []string{"2026-01-13", "Client"}

	assert.False(t, state.IsExpanded(path))
	assert.True(t, state.Toggle(path))
	assert.True(t, state.IsExpanded(path))
	assert.False(t, state.Toggle(path))
	assert.False(t, state.IsExpanded(path))

	state.Expand(path)
	assert.True(t, state.IsExpanded(path))
	state.Collapse(path)
	assert.False(t, state.IsExpanded(path))

	// Sibling paths are independent.
	state.Expand([]string{"2026-01-13"})
	assert.False(t, state.IsExpanded(path))
}
