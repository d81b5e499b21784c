package collections_test

import (
	"maps"
	"slices"
	"testing"

	. "github.com/pseudomuto/domainkit/pkg/collections"
	"github.com/stretchr/testify/require"
)

func TestMapSetGet(t *testing.T) {
	m := NewMap[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = m.Get("missing")
	require.False(t, ok)
	require.Equal(t, 2, m.Len())
}

func TestMapReplaceKeepsFirstSpelling(t *testing.T) {
	m := NewMapWith[string, int](Fold())
	m.Set("City", 1)
	m.Set("CITY", 2)

	// One entry: the second write replaced the value under the fold-equal
	// key, and the stored spelling is from the first write.
	require.Equal(t, 1, m.Len())
	require.Equal(t, []string{"City"}, slices.Collect(m.Keys()))

	v, ok := m.Get("city")
	require.True(t, ok)
	require.Equal(t, 2, v)
}

func TestMapAllFollowsInsertionOrder(t *testing.T) {
	m := NewMap[string, int]()
	m.Set("c", 3)
	m.Set("a", 1)
	m.Set("b", 2)

	var ordered []string
	for k, v := range m.All() {
		ordered = append(ordered, k)
		require.NotZero(t, v)
	}
	require.Equal(t, []string{"c", "a", "b"}, ordered)
}

func TestMapNilReceiver(t *testing.T) {
	var m *Map[string, int]

	require.Equal(t, 0, m.Len())
	_, ok := m.Get("x")
	require.False(t, ok)
	require.Empty(t, slices.Collect(m.Keys()))
	require.Empty(t, maps.Collect(m.All()))
}

func TestMapEqual(t *testing.T) {
	intEq := func(a, b int) bool { return a == b }

	t.Run("insertion order is irrelevant", func(t *testing.T) {
		a := NewMap[string, int]()
		a.Set("x", 1)
		a.Set("y", 2)

		b := NewMap[string, int]()
		b.Set("y", 2)
		b.Set("x", 1)

		require.True(t, a.Equal(b, intEq))
		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("value mismatch", func(t *testing.T) {
		a := NewMap[string, int]()
		a.Set("x", 1)

		b := NewMap[string, int]()
		b.Set("x", 2)

		require.False(t, a.Equal(b, intEq))
	})

	t.Run("folded keys resolve both ways", func(t *testing.T) {
		a := NewMapWith[string, int](Fold())
		a.Set("City", 7)

		b := NewMapWith[string, int](Fold())
		b.Set("CITY", 7)

		require.True(t, a.Equal(b, intEq))
	})

	t.Run("one-way key agreement is caught", func(t *testing.T) {
		// The folded map resolves "X" to its "x" entry; the sensitive map
		// has no entry for "x".
		cs := NewMap[string, int]()
		cs.Set("X", 1)

		ci := NewMapWith[string, int](Fold())
		ci.Set("x", 1)

		require.False(t, cs.Equal(ci, intEq))
		require.False(t, ci.Equal(cs, intEq))
	})

	t.Run("null map", func(t *testing.T) {
		a := NewMap[string, int]()
		require.False(t, a.Equal(nil, intEq))
	})
}
