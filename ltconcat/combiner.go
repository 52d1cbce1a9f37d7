// Package ltconcat provides a diagnostic Combiner that never hashes.
//
// Leaves are the items themselves and parents are the concatenation
// of their children, so over single-letter items
// every node spells out the leaves beneath it.
// This is only useful for inspecting tree shape;
// it offers no tamper evidence.
package ltconcat

// Combiner is the concatenating Combiner.
// Its pad value is empty, so an unpaired node's parent equals the node.
type Combiner struct{}

func (Combiner) Leaf(dst, item []byte) []byte {
	return append(dst, item...)
}

func (Combiner) Node(dst, left, right []byte) []byte {
	dst = append(dst, left...)
	return append(dst, right...)
}

func (Combiner) Pad(dst []byte) []byte {
	return dst
}
