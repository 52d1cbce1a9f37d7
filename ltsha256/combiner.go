// Package ltsha256 provides the SHA-256 digest function
// and a hashing [leveltree.Combiner] built on it.
//
// [leveltree.Combiner]: https://pkg.go.dev/github.com/gordian-engine/leveltree#Combiner
package ltsha256

import "crypto/sha256"

const HashSize = sha256.Size

// Digest returns the SHA-256 digest of item.
func Digest(item []byte) [HashSize]byte {
	return sha256.Sum256(item)
}

// DigestString returns the SHA-256 digest of the UTF-8 bytes of s.
func DigestString(s string) [HashSize]byte {
	return sha256.Sum256([]byte(s))
}

// Combiner hashes leaves as SHA256(item)
// and parents as SHA256(left || right).
// A missing right sibling is replaced with SHA256 of the empty input.
type Combiner struct{}

func (Combiner) Leaf(dst, item []byte) []byte {
	h := sha256.New()
	_, _ = h.Write(item)
	return h.Sum(dst)
}

func (Combiner) Node(dst, left, right []byte) []byte {
	h := sha256.New()
	_, _ = h.Write(left)
	_, _ = h.Write(right)
	return h.Sum(dst)
}

func (Combiner) Pad(dst []byte) []byte {
	return sha256.New().Sum(dst)
}
