package ltblake3_test

import (
	"testing"

	"github.com/gordian-engine/leveltree"
	"github.com/gordian-engine/leveltree/leveltreetest"
	"github.com/gordian-engine/leveltree/ltblake3"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/blake3"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	leveltreetest.TestCombinerCompliance(t, func() (leveltree.Combiner, bool) {
		return ltblake3.Combiner{}, true
	})
}

func TestCombiner(t *testing.T) {
	t.Parallel()

	c := ltblake3.Combiner{}

	empty := blake3.Sum256(nil)
	require.Equal(t, empty[:], c.Pad(nil))

	leaf := c.Leaf(nil, []byte("hello"))
	require.Len(t, leaf, ltblake3.HashSize)
	exp := ltblake3.Digest([]byte("hello"))
	require.Equal(t, exp[:], leaf)

	node := c.Node(nil, []byte("left"), []byte("right"))
	exp = blake3.Sum256([]byte("leftright"))
	require.Equal(t, exp[:], node)
}
