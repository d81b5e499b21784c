package collections

import (
	"iter"
	"slices"

	"github.com/pseudomuto/domainkit/pkg/compare"
)

// Map is a keyed map with a pluggable key comparer. Keys hash into buckets;
// bucket collisions fall back to a comparer scan. Iteration follows key
// insertion order.
//
// The zero value is not usable; construct with NewMap or NewMapWith. Read
// methods tolerate a nil receiver and answer as an empty map.
type Map[K, V any] struct {
	cmp     Comparer[K]
	buckets map[uint64][]int
	keys    []K
	vals    []V
}

// NewMap builds a map with naturally comparable keys.
func NewMap[K comparable, V any]() *Map[K, V] {
	return NewMapWith[K, V](Natural[K]())
}

// NewMapWith builds a map that resolves keys through cmp.
func NewMapWith[K, V any](cmp Comparer[K]) *Map[K, V] {
	return &Map[K, V]{cmp: cmp, buckets: make(map[uint64][]int)}
}

// Set stores val under key, replacing the value of a key already present
// under the map's comparer. The stored key spelling is kept from the first
// write.
func (m *Map[K, V]) Set(key K, val V) {
	h := m.cmp.Hash(key)
	for _, i := range m.buckets[h] {
		if m.cmp.Equal(m.keys[i], key) {
			m.vals[i] = val
			return
		}
	}
	m.buckets[h] = append(m.buckets[h], len(m.keys))
	m.keys = append(m.keys, key)
	m.vals = append(m.vals, val)
}

// Get returns the value stored under key and whether the key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	for _, i := range m.buckets[m.cmp.Hash(key)] {
		if m.cmp.Equal(m.keys[i], key) {
			return m.vals[i], true
		}
	}
	var zero V
	return zero, false
}

// Len reports the number of entries.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys iterates the keys in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	if m == nil {
		return func(yield func(K) bool) {}
	}
	return slices.Values(m.keys)
}

// All iterates the entries in key insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil {
			return
		}
		for i, k := range m.keys {
			if !yield(k, m.vals[i]) {
				return
			}
		}
	}
}

// Equal compares this map with any Mapping implementation, two-way, using
// equalFunc for values. Each side resolves keys with its own comparer.
func (m *Map[K, V]) Equal(other compare.Mapping[K, V], equalFunc func(V, V) bool) bool {
	return compare.Mappings[K, V](m, other, equalFunc)
}

// Hash buckets the map by emptiness only, consistent with Equal across
// arbitrary comparers.
func (m *Map[K, V]) Hash() uint64 {
	return compare.MappingHash[K, V](m)
}
