package leveltreetest

import (
	"bytes"
	"testing"

	"github.com/gordian-engine/leveltree"
	"github.com/stretchr/testify/require"
)

// CombinerFactory returns a fresh Combiner
// and whether that Combiner is expected to hash its inputs.
// Non-hashing Combiners are exempt from the collision checks.
type CombinerFactory func() (c leveltree.Combiner, hashing bool)

// TestCombinerCompliance runs the behaviors every [leveltree.Combiner] must satisfy.
func TestCombinerCompliance(t *testing.T, f CombinerFactory) {
	t.Run("leaf is deterministic", func(t *testing.T) {
		t.Parallel()

		c, _ := f()

		require.Equal(t, c.Leaf(nil, []byte("deterministic_data")), c.Leaf(nil, []byte("deterministic_data")))
	})

	t.Run("node is deterministic", func(t *testing.T) {
		t.Parallel()

		c, _ := f()

		l := c.Leaf(nil, []byte("left"))
		r := c.Leaf(nil, []byte("right"))
		require.Equal(t, c.Node(nil, l, r), c.Node(nil, l, r))
	})

	t.Run("pad is deterministic", func(t *testing.T) {
		t.Parallel()

		c, _ := f()

		require.Equal(t, c.Pad(nil), c.Pad(nil))
	})

	t.Run("appends to dst", func(t *testing.T) {
		t.Parallel()

		c, _ := f()

		prefix := []byte("prefix")

		// Compare with bytes.Equal throughout,
		// since an empty output may be nil from one call and non-nil from another.
		requireAppended := func(want, got []byte) {
			t.Helper()
			require.Len(t, got, len(prefix)+len(want))
			require.True(t, bytes.Equal(prefix, got[:len(prefix)]), "prefix was overwritten: %x", got)
			require.True(t, bytes.Equal(want, got[len(prefix):]), "want %x after prefix, got %x", want, got[len(prefix):])
		}

		requireAppended(
			c.Leaf(nil, []byte("hello")),
			c.Leaf(append([]byte(nil), prefix...), []byte("hello")),
		)
		requireAppended(
			c.Node(nil, []byte("l"), []byte("r")),
			c.Node(append([]byte(nil), prefix...), []byte("l"), []byte("r")),
		)
		requireAppended(
			c.Pad(nil),
			c.Pad(append([]byte(nil), prefix...)),
		)
	})

	t.Run("empty outputs append nothing", func(t *testing.T) {
		t.Parallel()

		c, _ := f()

		// A Combiner whose leaf of an empty item is empty
		// must still hand back dst unchanged.
		dst := []byte("prefix")
		if len(c.Leaf(nil, nil)) == 0 {
			require.True(t, bytes.Equal([]byte("prefix"), c.Leaf(dst, nil)))
		}
		if len(c.Pad(nil)) == 0 {
			require.True(t, bytes.Equal([]byte("prefix"), c.Pad(dst)))
		}
	})

	t.Run("does not modify inputs", func(t *testing.T) {
		t.Parallel()

		c, _ := f()

		l := []byte("left input")
		r := []byte("right input")
		_ = c.Leaf(nil, l)
		_ = c.Node(nil, l, r)

		require.Equal(t, []byte("left input"), l)
		require.Equal(t, []byte("right input"), r)
	})

	t.Run("odd combination uses pad", func(t *testing.T) {
		t.Parallel()

		c, _ := f()

		l := c.Leaf(nil, []byte("only child"))
		require.Equal(t, c.Node(nil, l, c.Pad(nil)), []byte(leveltree.CombineOdd(c, l)))
	})

	t.Run("leaf respects content", func(t *testing.T) {
		t.Parallel()

		c, hashing := f()
		if !hashing {
			t.Skip("collision resistance only applies to hashing combiners")
		}

		require.NotEqual(t, c.Leaf(nil, []byte("a")), c.Leaf(nil, []byte("b")))
	})

	t.Run("node respects order", func(t *testing.T) {
		t.Parallel()

		c, hashing := f()
		if !hashing {
			t.Skip("collision resistance only applies to hashing combiners")
		}

		a := c.Leaf(nil, []byte("a"))
		b := c.Leaf(nil, []byte("b"))
		require.NotEqual(t, c.Node(nil, a, b), c.Node(nil, b, a))
	})

	t.Run("pad differs from duplicated sibling", func(t *testing.T) {
		t.Parallel()

		c, hashing := f()
		if !hashing {
			t.Skip("collision resistance only applies to hashing combiners")
		}

		a := c.Leaf(nil, []byte("a"))
		require.NotEqual(t, c.Node(nil, a, a), []byte(leveltree.CombineOdd(c, a)))
	})
}
