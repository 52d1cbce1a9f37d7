// Package ltblake3 provides a hashing Combiner backed by 256-bit BLAKE3.
//
// The tree shape and pad policy match ltsha256;
// only the hash primitive differs.
package ltblake3

import "github.com/zeebo/blake3"

const HashSize = 32

// Digest returns the 256-bit BLAKE3 digest of item.
func Digest(item []byte) [HashSize]byte {
	return blake3.Sum256(item)
}

// Combiner hashes leaves as BLAKE3(item)
// and parents as BLAKE3(left || right).
// A missing right sibling is replaced with BLAKE3 of the empty input.
type Combiner struct{}

func (Combiner) Leaf(dst, item []byte) []byte {
	h := blake3.New()
	_, _ = h.Write(item)
	return h.Sum(dst)
}

func (Combiner) Node(dst, left, right []byte) []byte {
	h := blake3.New()
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	return h.Sum(dst)
}

func (Combiner) Pad(dst []byte) []byte {
	return blake3.New().Sum(dst)
}
