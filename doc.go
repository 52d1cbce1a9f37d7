// Package leveltree builds binary Merkle trees over an ordered list of items
// and retains every level of the tree, from the leaves up to the root.
//
// Leaves are produced by passing each item through a [Combiner],
// then each level is paired off left to right to produce the next level,
// until a level of exactly one node remains.
// When a level has an odd number of nodes,
// the final node is combined with the Combiner's pad value
// instead of being duplicated or promoted.
//
// The [ltsha256] Combiner hashes with SHA-256 and pads with SHA-256 of the empty input.
// The [ltconcat] Combiner only concatenates,
// which makes the tree shape readable but offers no tamper evidence.
//
// [ltsha256]: https://pkg.go.dev/github.com/gordian-engine/leveltree/ltsha256
// [ltconcat]: https://pkg.go.dev/github.com/gordian-engine/leveltree/ltconcat
package leveltree
