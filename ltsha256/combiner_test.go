package ltsha256_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/gordian-engine/leveltree"
	"github.com/gordian-engine/leveltree/leveltreetest"
	"github.com/gordian-engine/leveltree/ltsha256"
	"github.com/stretchr/testify/require"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	leveltreetest.TestCombinerCompliance(t, func() (leveltree.Combiner, bool) {
		return ltsha256.Combiner{}, true
	})
}

func TestDigest(t *testing.T) {
	t.Parallel()

	d := ltsha256.DigestString("a")
	require.Equal(t, "ca978112ca1bbdcafac231b39a23dc4da786eff8147c4e72b9807785afee48bb", hex.EncodeToString(d[:]))
	require.Equal(t, d, ltsha256.Digest([]byte("a")))

	// Non-ASCII text is hashed as its UTF-8 bytes.
	require.Equal(t, sha256.Sum256([]byte{0xc3, 0xa9}), ltsha256.DigestString("é"))
}

func TestCombiner(t *testing.T) {
	t.Parallel()

	c := ltsha256.Combiner{}

	empty := sha256.Sum256(nil)
	require.Equal(t, empty[:], c.Pad(nil))

	leaf := c.Leaf(nil, []byte("hello"))
	require.Len(t, leaf, ltsha256.HashSize)
	exp := sha256.Sum256([]byte("hello"))
	require.Equal(t, exp[:], leaf)

	node := c.Node(nil, []byte("left"), []byte("right"))
	exp = sha256.Sum256([]byte("leftright"))
	require.Equal(t, exp[:], node)
}
