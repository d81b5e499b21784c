package compare

import (
	"iter"
	"maps"
)

// Mapping is the minimal read surface a keyed map must expose to be compared.
// Get answers with the implementation's own key comparer, which may differ
// between the two operands of Mappings.
type Mapping[K, V any] interface {
	// Len reports the number of entries.
	Len() int

	// Get returns the value stored under key and whether the key is present.
	Get(key K) (V, bool)

	// All iterates the entries in any order.
	All() iter.Seq2[K, V]
}

// Maps compares two built-in maps: same keys, equal values. A nil map is
// distinct from an empty one. This is the fast path for the overwhelmingly
// common case of a single shared key comparer (==), where a size check plus
// a one-way scan is exact.
//
// Example:
//
//	compare.Maps(a.Limits, b.Limits)
func Maps[K, V comparable](a, b map[K]V) bool {
	return MapsFunc(a, b, func(x, y V) bool { return x == y })
}

// MapsFunc compares two built-in maps using a custom equality function for
// values. A nil map is distinct from an empty one.
//
// Example:
//
//	compare.MapsFunc(a.Items, b.Items, func(x, y Item) bool {
//	    return x.Equal(y)
//	})
func MapsFunc[K comparable, V any](a, b map[K]V, equalFunc func(V, V) bool) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		bv, ok := b[k]
		if !ok || !equalFunc(v, bv) {
			return false
		}
	}
	return true
}

// Mappings compares two keyed maps behind the Mapping interface. Because each
// operand resolves keys with its own comparer, equality is a two-way check:
// every entry of a must be found in b with an equal value, and every entry of
// b found in a. A nil Mapping is the null map, distinct from an empty one.
//
// When both operands wrap built-in maps via FromMap, the comparison drops to
// the exact single-comparer fast path.
//
// Example:
//
//	compare.Mappings[string, int](FromMap(a), FromMap(b), func(x, y int) bool {
//	    return x == y
//	})
func Mappings[K, V any](a, b Mapping[K, V], equalFunc func(V, V) bool) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if sameRef(a, b) {
		return true
	}

	if am, ok := a.(nativeMapping[K, V]); ok {
		if eq, ok := am.equalNative(b, equalFunc); ok {
			return eq
		}
	}

	for k, v := range a.All() {
		bv, ok := b.Get(k)
		if !ok || !equalFunc(v, bv) {
			return false
		}
	}
	for k, v := range b.All() {
		av, ok := a.Get(k)
		if !ok || !equalFunc(av, v) {
			return false
		}
	}
	return true
}

// FromMap adapts a built-in map to the Mapping interface. A nil map adapts to
// a nil Mapping so that the null/empty distinction survives adaptation.
func FromMap[K comparable, V any](m map[K]V) Mapping[K, V] {
	if m == nil {
		return nil
	}
	return mapAdapter[K, V](m)
}

type mapAdapter[K comparable, V any] map[K]V

func (m mapAdapter[K, V]) Len() int { return len(m) }

func (m mapAdapter[K, V]) Get(key K) (V, bool) {
	v, ok := m[key]
	return v, ok
}

func (m mapAdapter[K, V]) All() iter.Seq2[K, V] { return maps.All(map[K]V(m)) }

// nativeMapping is the dispatch hook for the built-in map fast path. Only
// mapAdapter implements it; the indirection exists because Mappings leaves K
// unconstrained while mapAdapter's map key must be comparable, so Mappings
// cannot name mapAdapter[K, V] directly.
type nativeMapping[K, V any] interface {
	equalNative(b Mapping[K, V], equalFunc func(V, V) bool) (eq, ok bool)
}

// equalNative compares m against b with native map lookups when b wraps a
// built-in map too; ok reports whether the fast path applied.
func (m mapAdapter[K, V]) equalNative(b Mapping[K, V], equalFunc func(V, V) bool) (bool, bool) {
	bm, ok := b.(mapAdapter[K, V])
	if !ok {
		return false, false
	}
	return MapsFunc(map[K]V(m), map[K]V(bm), equalFunc), true
}

// MapHash hashes a built-in map into one of three buckets: null, empty, or
// non-empty. See SetHash for why unordered shapes never hash their contents.
func MapHash[K comparable, V any](m map[K]V) uint64 {
	switch {
	case m == nil:
		return HashNull
	case len(m) == 0:
		return HashEmpty
	default:
		return HashNonEmpty
	}
}

// MappingHash is MapHash for Mapping implementations.
func MappingHash[K, V any](m Mapping[K, V]) uint64 {
	switch {
	case m == nil:
		return HashNull
	case m.Len() == 0:
		return HashEmpty
	default:
		return HashNonEmpty
	}
}
