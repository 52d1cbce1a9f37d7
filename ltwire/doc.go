// Package ltwire converts between Go values and the byte forms
// that surround a [leveltree.Tree].
//
// [EncodeItem] canonicalizes structured records into leaf item bytes
// using CBOR Core Deterministic Encoding,
// so two equal records always produce the same leaf.
//
// [MarshalTree] and [UnmarshalTree] hand a freshly built tree
// to a viewer or inspection process.
// The snapshot is a transport format, not a storage format:
// it carries no version or metadata and is not meant to be written to disk
// and reloaded later. Trees are always rebuilt from their items.
// The encoding is a one-byte compression header
// followed by a CBOR snapshot of the levels.
// [UnmarshalTree] bounds the decoded size,
// since the bytes come from another process.
//
// [leveltree.Tree]: https://pkg.go.dev/github.com/gordian-engine/leveltree#Tree
package ltwire
