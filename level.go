package leveltree

import "fmt"

// Node is the value at one position of the tree.
// Under a hashing Combiner it is a fixed-size digest;
// under the diagnostic Combiner it is raw concatenated bytes.
//
// Nodes held by a [*Tree] must not be modified.
type Node []byte

// Level is one horizontal layer of a tree, in input order.
type Level []Node

// NextLevel pairs off the nodes of level from left to right,
// returning the level above it.
// A final unpaired node is combined through [CombineOdd].
//
// The returned level has length (len(level)+1)/2.
// NextLevel panics if level is empty.
func NextLevel(c Combiner, level Level) Level {
	if len(level) == 0 {
		panic(fmt.Errorf("BUG: cannot build the next level over an empty level"))
	}

	next := make(Level, 0, (len(level)+1)/2)
	for i := 0; i < len(level); i += 2 {
		if i+1 < len(level) {
			next = append(next, Combine(c, level[i], level[i+1]))
		} else {
			next = append(next, CombineOdd(c, level[i]))
		}
	}
	return next
}
