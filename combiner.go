package leveltree

// Combiner is the strategy for turning items into leaves
// and pairs of nodes into their parent.
//
// Every method appends its output to dst and returns the extended slice,
// in the style of [hash.Hash.Sum].
// Implementations must not retain references to dst or to their inputs,
// and they must be safe to call concurrently.
type Combiner interface {
	// Leaf appends the level-0 node for item.
	Leaf(dst, item []byte) []byte

	// Node appends the parent of left and right.
	Node(dst, left, right []byte) []byte

	// Pad appends the value that stands in for a missing right sibling.
	Pad(dst []byte) []byte
}

// Combine returns the parent of left and right under c.
func Combine(c Combiner, left, right Node) Node {
	return c.Node(nil, left, right)
}

// CombineOdd returns the parent of a left node that has no sibling,
// using c's pad value as the right operand.
//
// The pad value is produced fresh on every call.
func CombineOdd(c Combiner, left Node) Node {
	return c.Node(nil, left, c.Pad(nil))
}
