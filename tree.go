package leveltree

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/leveltree/ltconcat"
	"github.com/gordian-engine/leveltree/ltsha256"
)

// Tree is an immutable binary Merkle tree with all of its levels retained.
//
// Levels()[0] holds the leaves, one per input item in input order,
// and the final level holds only the root.
type Tree struct {
	levels []Level

	// Bit k is set when level k had an odd width,
	// so the final node of level k+1 was combined with the pad value.
	padded *bitset.BitSet
}

// BuildConfig is the configuration for [Build].
type BuildConfig struct {
	// Combiner produces the leaves and parent nodes.
	// If nil, a SHA-256 Combiner is used.
	Combiner Combiner

	// Log receives one debug record per constructed level.
	// If nil, nothing is logged.
	Log *slog.Logger
}

// Build returns a tree over items.
// Each item is converted to a leaf through the configured Combiner,
// and levels are paired off until a single root node remains.
//
// If items is empty, Build returns an [EmptyInputError].
// No other error is possible.
//
// Build does not retain items.
func Build(items [][]byte, cfg BuildConfig) (*Tree, error) {
	if len(items) == 0 {
		return nil, EmptyInputError{}
	}

	c := cfg.Combiner
	if c == nil {
		c = ltsha256.Combiner{}
	}
	log := cfg.Log
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	leaves := make(Level, len(items))
	for i, item := range items {
		leaves[i] = c.Leaf(nil, item)
	}

	// The tree height is known up front: ceil(log2(n)) + 1.
	levels := make([]Level, 1, heightFor(len(items)))
	levels[0] = leaves
	padded := bitset.MustNew(uint(cap(levels)))

	cur := leaves
	for len(cur) > 1 {
		k := len(levels) - 1
		odd := len(cur)&1 == 1
		if odd {
			padded.Set(uint(k))
		}

		cur = NextLevel(c, cur)
		levels = append(levels, cur)

		log.Debug(
			"Built level",
			"level", k+1,
			"width", len(cur),
			"padded", odd,
		)
	}

	return &Tree{
		levels: levels,
		padded: padded,
	}, nil
}

// BuildStrings is like [Build] but accepts text items.
// Go strings are byte sequences;
// callers are expected to supply UTF-8 text.
func BuildStrings(items []string, cfg BuildConfig) (*Tree, error) {
	bs := make([][]byte, len(items))
	for i, s := range items {
		bs[i] = []byte(s)
	}
	return Build(bs, cfg)
}

// New builds a tree over items,
// hashing with SHA-256 if hashing is true,
// or else using the diagnostic concatenation Combiner.
func New(items [][]byte, hashing bool) (*Tree, error) {
	cfg := BuildConfig{Combiner: ltsha256.Combiner{}}
	if !hashing {
		cfg.Combiner = ltconcat.Combiner{}
	}
	return Build(items, cfg)
}

// FromLevels returns a Tree over a level list held elsewhere,
// such as one decoded from a snapshot.
//
// Only the shape of the levels is validated:
// every level must have exactly half the width of the level below it, rounded up,
// and the final level must have exactly one node.
// Node contents and sizes are not checked at all,
// so a nil or truncated node is accepted and reported by Root or RootHex as-is.
// Use [*Tree.Verify] to check node values against a Combiner.
//
// The returned Tree references levels directly,
// so the caller must not modify levels afterwards.
func FromLevels(levels []Level) (*Tree, error) {
	if len(levels) == 0 || len(levels[0]) == 0 {
		return nil, EmptyInputError{}
	}

	padded := bitset.MustNew(uint(len(levels)))
	for k := 1; k < len(levels); k++ {
		below := len(levels[k-1])
		if below == 1 {
			// The root was already reached.
			return nil, ShapeError{Level: k, Want: 0, Got: len(levels[k])}
		}
		if want := (below + 1) / 2; len(levels[k]) != want {
			return nil, ShapeError{Level: k, Want: want, Got: len(levels[k])}
		}
		if below&1 == 1 {
			padded.Set(uint(k - 1))
		}
	}
	if last := len(levels) - 1; len(levels[last]) != 1 {
		// The list stops before reaching a single root node.
		return nil, ShapeError{Level: last, Want: 1, Got: len(levels[last])}
	}

	return &Tree{
		levels: levels,
		padded: padded,
	}, nil
}

// heightFor returns the number of levels in a tree over n leaves.
func heightFor(n int) int {
	h := 1
	for n > 1 {
		n = (n + 1) / 2
		h++
	}
	return h
}

// Root returns the single node of the final level.
// The caller must not modify the returned slice.
func (t *Tree) Root() Node {
	return t.levels[len(t.levels)-1][0]
}

// RootHex returns the lowercase hex encoding of the root.
func (t *Tree) RootHex() string {
	return hex.EncodeToString(t.Root())
}

// Levels returns every level of the tree, leaves first.
//
// The outer slice is a copy,
// but the levels and nodes are shared with t and must not be modified.
func (t *Tree) Levels() []Level {
	out := make([]Level, len(t.levels))
	copy(out, t.levels)
	return out
}

// Level returns the level at index k, where 0 is the leaves.
// Level panics if k is out of range.
func (t *Tree) Level(k int) Level {
	if k < 0 || k >= len(t.levels) {
		panic(fmt.Errorf(
			"BUG: attempted to get level %d; must be in range [0, %d)",
			k, len(t.levels),
		))
	}
	return t.levels[k]
}

// Height returns the number of levels, including the leaves and the root.
func (t *Tree) Height() int {
	return len(t.levels)
}

// LeafCount returns the number of items the tree was built over.
func (t *Tree) LeafCount() int {
	return len(t.levels[0])
}

// Leaf returns the leaf node for the item at index i.
func (t *Tree) Leaf(i int) Node {
	if i < 0 || i >= len(t.levels[0]) {
		panic(fmt.Errorf(
			"BUG: attempted to get leaf at index %d; must be in range [0, %d)",
			i, len(t.levels[0]),
		))
	}
	return t.levels[0][i]
}

// Padded returns a set of the level indices that had an odd width.
// For each set index k, the final node of level k+1
// was produced by combining with the pad value.
//
// The returned bitset is a copy and may be modified freely.
func (t *Tree) Padded() *bitset.BitSet {
	return t.padded.Clone()
}

// Equal reports whether t and other have identical levels.
func (t *Tree) Equal(other *Tree) bool {
	if len(t.levels) != len(other.levels) {
		return false
	}
	for k, lvl := range t.levels {
		o := other.levels[k]
		if len(lvl) != len(o) {
			return false
		}
		for i, n := range lvl {
			if !bytes.Equal(n, o[i]) {
				return false
			}
		}
	}
	return true
}

// Verify recomputes every non-leaf node with c
// and returns a [NodeMismatchError] for the first node that differs.
// Leaves are not checked, since the items are not retained.
func (t *Tree) Verify(c Combiner) error {
	for k := 1; k < len(t.levels); k++ {
		want := NextLevel(c, t.levels[k-1])
		for i, n := range t.levels[k] {
			if !bytes.Equal(n, want[i]) {
				return NodeMismatchError{Level: k, Index: i}
			}
		}
	}
	return nil
}
