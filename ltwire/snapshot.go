package ltwire

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/fxamacker/cbor/v2"
	"github.com/golang/snappy"
	"github.com/gordian-engine/leveltree"
)

// Header bytes for the snapshot framing.
const (
	rawEncoding    byte = 0
	snappyEncoding byte = 1
	brotliEncoding byte = 2
)

// Compression selects how [MarshalTree] compresses the snapshot body.
type Compression uint8

const (
	NoCompression Compression = iota
	SnappyCompression
	BrotliCompression
)

func (c Compression) String() string {
	switch c {
	case NoCompression:
		return "none"
	case SnappyCompression:
		return "snappy"
	case BrotliCompression:
		return "brotli"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// MarshalConfig is the configuration for [MarshalTree].
// The zero value writes an uncompressed snapshot.
type MarshalConfig struct {
	Compression Compression

	// BrotliQuality is passed to the brotli writer
	// when Compression is BrotliCompression.
	// Zero means [brotli.DefaultCompression].
	BrotliQuality int
}

// snapshot is the CBOR body.
// The root is not stored separately;
// it is the only node of the final level.
type snapshot struct {
	Levels []leveltree.Level `cbor:"1,keyasint"`
}

var snapshotDecMode = mustDecMode(cbor.DecOptions{
	// Leaf levels can be much wider than the library default.
	MaxArrayElements: 1<<31 - 1,
})

func mustDecMode(opts cbor.DecOptions) cbor.DecMode {
	dm, err := opts.DecMode()
	if err != nil {
		panic(fmt.Errorf("BUG: invalid CBOR decoding options: %w", err))
	}
	return dm
}

// MarshalTree encodes every level of t.
func MarshalTree(t *leveltree.Tree, cfg MarshalConfig) ([]byte, error) {
	body, err := itemEncMode.Marshal(snapshot{Levels: t.Levels()})
	if err != nil {
		return nil, fmt.Errorf("failed to encode tree snapshot: %w", err)
	}

	switch cfg.Compression {
	case NoCompression:
		out := make([]byte, 1+len(body))
		out[0] = rawEncoding
		copy(out[1:], body)
		return out, nil

	case SnappyCompression:
		out := make([]byte, 1+snappy.MaxEncodedLen(len(body)))
		out[0] = snappyEncoding
		enc := snappy.Encode(out[1:], body)
		return out[:1+len(enc)], nil

	case BrotliCompression:
		q := cfg.BrotliQuality
		if q == 0 {
			q = brotli.DefaultCompression
		}

		var buf bytes.Buffer
		buf.WriteByte(brotliEncoding)
		w := brotli.NewWriterLevel(&buf, q)
		if _, err := w.Write(body); err != nil {
			return nil, fmt.Errorf("failed to brotli-compress tree snapshot: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("failed to finish brotli stream: %w", err)
		}
		return buf.Bytes(), nil

	default:
		return nil, fmt.Errorf("unknown compression %s", cfg.Compression)
	}
}

// DefaultMaxSnapshotSize is the decoded size limit
// used when [UnmarshalConfig.MaxSnapshotSize] is zero.
const DefaultMaxSnapshotSize = 64 << 20

// ErrSnapshotTooLarge is wrapped by [UnmarshalTree]
// when the decoded snapshot body would exceed the configured maximum.
var ErrSnapshotTooLarge = errors.New("tree snapshot exceeds maximum decoded size")

// UnmarshalConfig is the configuration for [UnmarshalTree].
// The zero value applies [DefaultMaxSnapshotSize] and skips node verification.
type UnmarshalConfig struct {
	// MaxSnapshotSize bounds the size of the CBOR body after decompression.
	// The bound is checked before any decompression buffer is allocated
	// where the compression format declares its decoded length.
	MaxSnapshotSize int

	// If set, every non-leaf node is recomputed with Combiner
	// and a mismatch is reported as an error.
	// Without it only the level widths are checked,
	// so a snapshot with missing or wrongly sized nodes is accepted.
	Combiner leveltree.Combiner
}

// UnmarshalTree decodes a snapshot produced by [MarshalTree].
//
// The level shapes are always validated through [leveltree.FromLevels].
// Node values are only recomputed when cfg.Combiner is set.
func UnmarshalTree(b []byte, cfg UnmarshalConfig) (*leveltree.Tree, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("failed to read header for tree snapshot: %w", io.ErrUnexpectedEOF)
	}

	limit := cfg.MaxSnapshotSize
	if limit <= 0 {
		limit = DefaultMaxSnapshotSize
	}

	body := b[1:]
	switch b[0] {
	case rawEncoding:
		if len(body) > limit {
			return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrSnapshotTooLarge, len(body), limit)
		}
	case snappyEncoding:
		n, err := snappy.DecodedLen(body)
		if err != nil {
			return nil, fmt.Errorf("failed to read snappy length for tree snapshot: %w", err)
		}
		if n > limit {
			return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrSnapshotTooLarge, n, limit)
		}
		dec, err := snappy.Decode(nil, body)
		if err != nil {
			return nil, fmt.Errorf("failed to snappy-decompress tree snapshot: %w", err)
		}
		body = dec
	case brotliEncoding:
		// Read one byte past the limit to tell "exactly limit" from "too large".
		r := io.LimitReader(brotli.NewReader(bytes.NewReader(body)), int64(limit)+1)
		dec, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to brotli-decompress tree snapshot: %w", err)
		}
		if len(dec) > limit {
			return nil, fmt.Errorf("%w: more than %d bytes", ErrSnapshotTooLarge, limit)
		}
		body = dec
	default:
		return nil, fmt.Errorf("unknown tree snapshot header byte 0x%x", b[0])
	}

	var s snapshot
	if err := snapshotDecMode.Unmarshal(body, &s); err != nil {
		return nil, fmt.Errorf("failed to decode tree snapshot: %w", err)
	}

	t, err := leveltree.FromLevels(s.Levels)
	if err != nil {
		return nil, fmt.Errorf("invalid tree snapshot: %w", err)
	}

	if cfg.Combiner != nil {
		if err := t.Verify(cfg.Combiner); err != nil {
			return nil, fmt.Errorf("tree snapshot failed verification: %w", err)
		}
	}
	return t, nil
}
