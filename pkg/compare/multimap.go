package compare

import "iter"

// Grouping is the minimal read surface a keyed multimap must expose to be
// compared. Group answers with the implementation's own key comparer; an
// absent key must come back as an empty (or nil) group, never an error.
type Grouping[K, V any] interface {
	// Len reports the number of distinct keys.
	Len() int

	// Group returns the values stored under key, in their stored order.
	// Absent keys return an empty group.
	Group(key K) []V

	// Keys iterates the distinct keys in any order.
	Keys() iter.Seq[K]
}

// Multimaps compares two keyed multimaps. Key order is irrelevant, but the
// value sequence under each key is compared in order. The check runs in both
// directions: walking only one side's keys could never notice a key that
// exists only on the other side with a non-empty group, since absent keys
// read as empty groups. A nil Grouping is the null multimap, distinct from an
// empty one.
//
// Example:
//
//	// {1:[a b], 2:[c]} vs {2:[c], 1:[a b]} -> true
//	// {1:[a b]}        vs {1:[b a]}        -> false
//	compare.Multimaps[int, string](a, b, func(x, y string) bool { return x == y })
func Multimaps[K, V any](a, b Grouping[K, V], equalFunc func(V, V) bool) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if sameRef(a, b) {
		return true
	}
	return groupsMatch(a, b, equalFunc) && groupsMatch(b, a, equalFunc)
}

// groupsMatch reports whether every group of a appears under the same key in
// b with the same values in the same order. Group comparison deliberately
// conflates nil and empty: an absent key and an empty group read the same.
func groupsMatch[K, V any](a, b Grouping[K, V], equalFunc func(V, V) bool) bool {
	for k := range a.Keys() {
		if !Slices(a.Group(k), b.Group(k), equalFunc) {
			return false
		}
	}
	return true
}

// MultimapHash hashes a multimap into one of three buckets: null, empty, or
// non-empty. See SetHash for why unordered shapes never hash their contents.
func MultimapHash[K, V any](m Grouping[K, V]) uint64 {
	switch {
	case m == nil:
		return HashNull
	case m.Len() == 0:
		return HashEmpty
	default:
		return HashNonEmpty
	}
}
