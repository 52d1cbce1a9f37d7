package ltwire_test

import (
	"testing"

	"github.com/gordian-engine/leveltree"
	"github.com/gordian-engine/leveltree/ltwire"
	"github.com/stretchr/testify/require"
)

type transfer struct {
	From   string `cbor:"from"`
	To     string `cbor:"to"`
	Amount uint64 `cbor:"amount"`
}

func TestEncodeItem_passthrough(t *testing.T) {
	t.Parallel()

	b, err := ltwire.EncodeItem([]byte{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, b)

	b, err = ltwire.EncodeItem("héllo")
	require.NoError(t, err)
	require.Equal(t, []byte("héllo"), b)
}

func TestEncodeItem_mapOrderIndependent(t *testing.T) {
	t.Parallel()

	// Build the maps in different insertion orders;
	// deterministic encoding must sort the keys regardless.
	m1 := map[string]any{}
	m1["z"] = 1
	m1["a"] = "x"
	m1["m"] = []int{1, 2}

	m2 := map[string]any{}
	m2["m"] = []int{1, 2}
	m2["a"] = "x"
	m2["z"] = 1

	b1, err := ltwire.EncodeItem(m1)
	require.NoError(t, err)
	b2, err := ltwire.EncodeItem(m2)
	require.NoError(t, err)
	require.Equal(t, b1, b2)
}

func TestEncodeItem_struct(t *testing.T) {
	t.Parallel()

	b1, err := ltwire.EncodeItem(transfer{From: "alice", To: "bob", Amount: 10})
	require.NoError(t, err)
	b2, err := ltwire.EncodeItem(transfer{From: "alice", To: "bob", Amount: 11})
	require.NoError(t, err)

	require.NotEqual(t, b1, b2)

	again, err := ltwire.EncodeItem(transfer{From: "alice", To: "bob", Amount: 10})
	require.NoError(t, err)
	require.Equal(t, b1, again)
}

func TestEncodeItem_unsupported(t *testing.T) {
	t.Parallel()

	_, err := ltwire.EncodeItem(make(chan int))
	require.Error(t, err)
}

func TestEncodeItems(t *testing.T) {
	t.Parallel()

	items, err := ltwire.EncodeItems([]any{
		"a",
		transfer{From: "alice", To: "bob", Amount: 1},
		map[string]int{"k": 1},
	})
	require.NoError(t, err)
	require.Len(t, items, 3)

	tree, err := leveltree.Build(items, leveltree.BuildConfig{})
	require.NoError(t, err)
	require.Equal(t, 3, tree.Height())

	_, err = ltwire.EncodeItems([]any{"ok", func() {}})
	require.ErrorContains(t, err, "item 1")
}
