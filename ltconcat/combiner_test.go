package ltconcat_test

import (
	"testing"

	"github.com/gordian-engine/leveltree"
	"github.com/gordian-engine/leveltree/leveltreetest"
	"github.com/gordian-engine/leveltree/ltconcat"
	"github.com/stretchr/testify/require"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	leveltreetest.TestCombinerCompliance(t, func() (leveltree.Combiner, bool) {
		return ltconcat.Combiner{}, false
	})
}

func TestCombiner(t *testing.T) {
	t.Parallel()

	c := ltconcat.Combiner{}

	require.Empty(t, c.Pad(nil))
	require.Equal(t, "hello", string(c.Leaf(nil, []byte("hello"))))
	require.Equal(t, "ab", string(c.Node(nil, []byte("a"), []byte("b"))))
	require.Equal(t, "a", string(c.Node(nil, []byte("a"), c.Pad(nil))))
}

func TestCombiner_leafCopies(t *testing.T) {
	t.Parallel()

	item := []byte("abc")
	leaf := ltconcat.Combiner{}.Leaf(nil, item)
	item[0] = 'z'

	require.Equal(t, "abc", string(leaf))
}

func TestCombiner_padAppendsNothing(t *testing.T) {
	t.Parallel()

	dst := []byte("prefix")
	got := ltconcat.Combiner{}.Pad(dst)

	// The suffix after dst is empty but not nil,
	// while Pad(nil) is nil; both must count as the same empty pad.
	require.Equal(t, "prefix", string(got))
	require.Nil(t, ltconcat.Combiner{}.Pad(nil))
	require.Empty(t, got[len(dst):])
}
