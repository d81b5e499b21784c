package collections

import (
	"iter"
	"slices"

	"github.com/pseudomuto/domainkit/pkg/compare"
)

// Multimap groups values under keys resolved by a pluggable key comparer.
// Values under one key keep their append order, which matches the comparison
// rule for keyed multimaps: key order is irrelevant, value order within a key
// is not. Iteration follows key insertion order.
//
// The zero value is not usable; construct with NewMultimap or NewMultimapWith.
// Read methods tolerate a nil receiver and answer as an empty multimap.
type Multimap[K, V any] struct {
	cmp     Comparer[K]
	buckets map[uint64][]int
	keys    []K
	groups  [][]V
}

// NewMultimap builds a multimap with naturally comparable keys.
func NewMultimap[K comparable, V any]() *Multimap[K, V] {
	return NewMultimapWith[K, V](Natural[K]())
}

// NewMultimapWith builds a multimap that resolves keys through cmp.
func NewMultimapWith[K, V any](cmp Comparer[K]) *Multimap[K, V] {
	return &Multimap[K, V]{cmp: cmp, buckets: make(map[uint64][]int)}
}

// Add appends val to the group stored under key. The stored key spelling is
// kept from the first write.
func (m *Multimap[K, V]) Add(key K, val V) {
	h := m.cmp.Hash(key)
	for _, i := range m.buckets[h] {
		if m.cmp.Equal(m.keys[i], key) {
			m.groups[i] = append(m.groups[i], val)
			return
		}
	}
	m.buckets[h] = append(m.buckets[h], len(m.keys))
	m.keys = append(m.keys, key)
	m.groups = append(m.groups, []V{val})
}

// Group returns the values stored under key in append order. Absent keys
// answer an empty group. The returned slice is shared with the multimap;
// callers must not modify it.
func (m *Multimap[K, V]) Group(key K) []V {
	if m == nil {
		return nil
	}
	for _, i := range m.buckets[m.cmp.Hash(key)] {
		if m.cmp.Equal(m.keys[i], key) {
			return m.groups[i]
		}
	}
	return nil
}

// Len reports the number of distinct keys.
func (m *Multimap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys iterates the distinct keys in insertion order.
func (m *Multimap[K, V]) Keys() iter.Seq[K] {
	if m == nil {
		return func(yield func(K) bool) {}
	}
	return slices.Values(m.keys)
}

// Equal compares this multimap with any Grouping implementation: key order
// ignored, per-key value order respected, checked from both operands'
// perspectives. Each side resolves keys with its own comparer.
func (m *Multimap[K, V]) Equal(other compare.Grouping[K, V], equalFunc func(V, V) bool) bool {
	return compare.Multimaps[K, V](m, other, equalFunc)
}

// Hash buckets the multimap by emptiness only, consistent with Equal across
// arbitrary comparers.
func (m *Multimap[K, V]) Hash() uint64 {
	return compare.MultimapHash[K, V](m)
}
