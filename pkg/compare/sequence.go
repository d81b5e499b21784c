package compare

import "iter"

// Sequences compares two slices as ordered sequences: same length, equal
// elements at every position. A nil slice is distinct from an empty one.
//
// Example:
//
//	compare.Sequences([]int{1, 2, 3}, []int{1, 2, 3}) // true
//	compare.Sequences([]int{1, 2}, []int{2, 1})       // false
//	compare.Sequences(nil, []int{})                   // false
func Sequences[T comparable](a, b []T) bool {
	return SequencesFunc(a, b, func(x, y T) bool { return x == y })
}

// SequencesFunc compares two slices as ordered sequences using a custom
// element equality function. A nil slice is distinct from an empty one.
//
// Example:
//
//	compare.SequencesFunc(a.Lines, b.Lines, func(x, y Line) bool {
//	    return x.Equal(y)
//	})
func SequencesFunc[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return Slices(a, b, equalFunc)
}

// SequencesSeq compares two iterator-backed sequences element by element in
// order. It consumes both iterators at most once and stops at the first
// mismatch. Nil iterators follow the same null rules as nil slices.
//
// Example:
//
//	compare.SequencesSeq(mine.Values(), theirs.Values(), Text.Equal)
func SequencesSeq[T any](a, b iter.Seq[T], equalFunc func(T, T) bool) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}

	nextA, stopA := iter.Pull(a)
	defer stopA()
	nextB, stopB := iter.Pull(b)
	defer stopB()

	for {
		av, okA := nextA()
		bv, okB := nextB()
		if okA != okB {
			return false
		}
		if !okA {
			return true
		}
		if !equalFunc(av, bv) {
			return false
		}
	}
}

// SequenceHash hashes a slice as an ordered sequence in constant time: the
// length is folded into the hashes of the first and last elements, and the
// two halves are merged. Folding the length into both halves keeps a
// single-element sequence from collapsing into its own mirror image.
//
// Middle elements do not participate, so sequences differing only between
// the first and last positions share a hash. That is a precision trade-off,
// not a contract violation: equal sequences always hash alike.
//
// Example:
//
//	compare.SequenceHash(order.Lines, func(l Line) uint64 { return l.Hash() })
func SequenceHash[T any](s []T, hashFunc func(T) uint64) uint64 {
	if s == nil {
		return HashNull
	}
	n := uint64(len(s))
	if n == 0 {
		return HashEmpty
	}

	head := Mix(n, hashFunc(s[0]))
	tail := Mix(n, hashFunc(s[len(s)-1]))
	return Mix(head, tail)
}

// Slices compares two slices positionally using an equality function for
// elements. Unlike SequencesFunc it treats nil and empty alike, which is the
// right rule for multimap groups where an absent key reads as an empty group.
//
// Example:
//
//	compare.Slices(a.Tags, b.Tags, func(x, y Tag) bool { return x.Equal(y) })
func Slices[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalFunc(a[i], b[i]) {
			return false
		}
	}
	return true
}

// SlicesUnordered compares two slices as bags: equal when every element of
// one can be matched to a distinct equal element of the other, regardless of
// position. Quadratic; intended for small slices whose element type has no
// usable hash.
//
// Example:
//
//	compare.SlicesUnordered(a.Aliases, b.Aliases, func(x, y Alias) bool {
//	    return x.Equal(y)
//	})
func SlicesUnordered[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}

	// Track which elements in b have been matched
	matched := make([]bool, len(b))

	for _, aElem := range a {
		found := false
		for j, bElem := range b {
			if !matched[j] && equalFunc(aElem, bElem) {
				matched[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
