// Package leveltreetest contains helpers for testing
// [leveltree.Combiner] implementations and code that consumes trees.
package leveltreetest

import (
	"testing"

	"github.com/gordian-engine/leveltree"
	"github.com/stretchr/testify/require"
)

// RequireShape fails the test if tree does not have the level widths
// expected for a tree over nLeaves leaves.
func RequireShape(t *testing.T, tree *leveltree.Tree, nLeaves int) {
	t.Helper()

	levels := tree.Levels()
	require.Len(t, levels[0], nLeaves)

	for k := 1; k < len(levels); k++ {
		require.Lenf(t, levels[k], (len(levels[k-1])+1)/2, "width of level %d", k)
	}

	require.Len(t, levels[len(levels)-1], 1)
	require.Equal(t, levels[len(levels)-1][0], tree.Root())
	require.Equal(t, ExpectedHeight(nLeaves), tree.Height())
}

// ExpectedHeight returns the number of levels in a tree over n leaves:
// floor(log2(n-1)) + 2 for n > 1, or 1 when n is 1.
func ExpectedHeight(n int) int {
	if n == 1 {
		return 1
	}

	h := 0
	for m := n - 1; m > 0; m >>= 1 {
		h++
	}
	return h + 1
}
