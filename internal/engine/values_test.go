package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalValue_FoldsCaseAndWhitespace(t *testing.T) {
	for _, raw := range []string{"in progress", "In Progress", " IN PROGRESS ", "in\tprogress"} {
		got, ok := CanonicalValue(raw)
		require.True(t, ok, "input %q", raw)
		assert.Equal(t, "In Progress", got, "input %q", raw)
	}
}

func TestCanonicalValue_Idempotent(t *testing.T) {
	inputs := []string{"acme ", "Not Started", "HIGH", "v high", "a  b   c"}
	for _, raw := range inputs {
		once, ok := CanonicalValue(raw)
		require.True(t, ok)
		twice, ok := CanonicalValue(once)
		require.True(t, ok)
		assert.Equal(t, once, twice, "input %q", raw)
	}
}

func TestCanonicalValue_BlankInputs(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, ok := CanonicalValue(raw)
		assert.False(t, ok, "input %q", raw)
	}
}

func TestCanonicalValue_SingleRuneTokens(t *testing.T) {
	got, ok := CanonicalValue("a b")
	require.True(t, ok)
	assert.Equal(t, "A B", got)
}
