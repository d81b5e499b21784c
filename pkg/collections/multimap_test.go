package collections_test

import (
	"slices"
	"testing"

	. "github.com/pseudomuto/domainkit/pkg/collections"
	"github.com/stretchr/testify/require"
)

func TestMultimapAddGroup(t *testing.T) {
	m := NewMultimap[int, string]()
	m.Add(1, "a")
	m.Add(1, "b")
	m.Add(2, "c")

	require.Equal(t, []string{"a", "b"}, m.Group(1))
	require.Equal(t, []string{"c"}, m.Group(2))
	require.Empty(t, m.Group(99), "absent key answers an empty group")
	require.Equal(t, 2, m.Len())
	require.Equal(t, []int{1, 2}, slices.Collect(m.Keys()))
}

func TestMultimapFoldedKeys(t *testing.T) {
	m := NewMultimapWith[string, int](Fold())
	m.Add("Lisbon", 1)
	m.Add("LISBON", 2)

	require.Equal(t, 1, m.Len())
	require.Equal(t, []int{1, 2}, m.Group("lisbon"))
	require.Equal(t, []string{"Lisbon"}, slices.Collect(m.Keys()), "first spelling wins")
}

func TestMultimapNilReceiver(t *testing.T) {
	var m *Multimap[int, string]

	require.Equal(t, 0, m.Len())
	require.Empty(t, m.Group(1))
	require.Empty(t, slices.Collect(m.Keys()))
}

func TestMultimapEqual(t *testing.T) {
	strEq := func(a, b string) bool { return a == b }

	build := func(pairs ...[2]any) *Multimap[int, string] {
		m := NewMultimap[int, string]()
		for _, p := range pairs {
			m.Add(p[0].(int), p[1].(string))
		}
		return m
	}

	t.Run("key order is irrelevant", func(t *testing.T) {
		a := build([2]any{1, "A"}, [2]any{1, "B"}, [2]any{2, "C"})
		b := build([2]any{2, "C"}, [2]any{1, "A"}, [2]any{1, "B"})
		require.True(t, a.Equal(b, strEq))
		require.Equal(t, a.Hash(), b.Hash())
	})

	t.Run("value order within a key matters", func(t *testing.T) {
		a := build([2]any{1, "A"}, [2]any{1, "B"}, [2]any{2, "C"})
		b := build([2]any{1, "B"}, [2]any{1, "A"}, [2]any{2, "C"})
		require.False(t, a.Equal(b, strEq))
	})

	t.Run("extra key on either side", func(t *testing.T) {
		small := build([2]any{1, "A"})
		big := build([2]any{1, "A"}, [2]any{2, "C"})
		require.False(t, small.Equal(big, strEq))
		require.False(t, big.Equal(small, strEq))
	})

	t.Run("null multimap", func(t *testing.T) {
		a := build([2]any{1, "A"})
		require.False(t, a.Equal(nil, strEq))
	})
}
