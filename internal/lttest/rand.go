package lttest

import (
	"crypto/sha256"
	"math/rand/v2"
	"testing"
)

// RandomItemsForTest returns n items of itemSize bytes each.
// The contents are pseudorandom but seeded from the test name,
// so a given test sees the same items on every run.
func RandomItemsForTest(t *testing.T, n, itemSize int) [][]byte {
	// A SHA-256 sum is exactly the size of a ChaCha8 seed.
	chacha := rand.NewChaCha8(sha256.Sum256([]byte(t.Name())))

	// One backing allocation for every item.
	data := make([]byte, n*itemSize)
	if _, err := chacha.Read(data); err != nil {
		panic(err)
	}

	items := make([][]byte, n)
	for i := range items {
		items[i] = data[i*itemSize : (i+1)*itemSize : (i+1)*itemSize]
	}
	return items
}
