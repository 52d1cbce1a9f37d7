package ltwire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var itemEncMode = mustEncMode(cbor.CoreDetEncOptions())

func mustEncMode(opts cbor.EncOptions) cbor.EncMode {
	em, err := opts.EncMode()
	if err != nil {
		panic(fmt.Errorf("BUG: invalid CBOR encoding options: %w", err))
	}
	return em
}

// EncodeItem returns the leaf item bytes for v.
//
// A []byte is returned unchanged and a string is returned as its UTF-8 bytes.
// Any other value is encoded with CBOR Core Deterministic Encoding,
// which sorts map keys and uses the shortest integer forms,
// so equal values encode identically regardless of map iteration order.
func EncodeItem(v any) ([]byte, error) {
	switch x := v.(type) {
	case []byte:
		return x, nil
	case string:
		return []byte(x), nil
	}

	b, err := itemEncMode.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item of type %T: %w", v, err)
	}
	return b, nil
}

// EncodeItems calls [EncodeItem] for every value in vs.
func EncodeItems(vs []any) ([][]byte, error) {
	out := make([][]byte, len(vs))
	for i, v := range vs {
		b, err := EncodeItem(v)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out[i] = b
	}
	return out, nil
}
