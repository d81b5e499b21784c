package collections

import (
	"iter"
	"slices"

	"github.com/pseudomuto/domainkit/pkg/compare"
)

// Set is a hash-based set with a pluggable element comparer. Elements hash
// into buckets; bucket collisions fall back to a comparer scan. Iteration
// follows insertion order.
//
// The zero value is not usable; construct with NewSet or NewSetWith. Read
// methods tolerate a nil receiver and answer as an empty set.
type Set[T any] struct {
	cmp     Comparer[T]
	buckets map[uint64][]int
	elems   []T
}

// NewSet builds a set of naturally comparable elements.
func NewSet[T comparable](elems ...T) *Set[T] {
	return NewSetWith(Natural[T](), elems...)
}

// NewSetWith builds a set that resolves membership through cmp.
func NewSetWith[T any](cmp Comparer[T], elems ...T) *Set[T] {
	s := &Set[T]{cmp: cmp, buckets: make(map[uint64][]int)}
	for _, e := range elems {
		s.Add(e)
	}
	return s
}

// Add inserts e and reports whether it was newly added. Elements already
// present under the set's comparer are left untouched, first writer wins.
func (s *Set[T]) Add(e T) bool {
	h := s.cmp.Hash(e)
	for _, i := range s.buckets[h] {
		if s.cmp.Equal(s.elems[i], e) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], len(s.elems))
	s.elems = append(s.elems, e)
	return true
}

// Contains reports whether e is a member under the set's comparer.
func (s *Set[T]) Contains(e T) bool {
	if s == nil {
		return false
	}
	for _, i := range s.buckets[s.cmp.Hash(e)] {
		if s.cmp.Equal(s.elems[i], e) {
			return true
		}
	}
	return false
}

// Len reports the number of elements.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.elems)
}

// Elems iterates the elements in insertion order.
func (s *Set[T]) Elems() iter.Seq[T] {
	if s == nil {
		return func(yield func(T) bool) {}
	}
	return slices.Values(s.elems)
}

// Equal compares this set with any Membership implementation, two-way and
// order-insensitive. Each side answers with its own comparer.
func (s *Set[T]) Equal(other compare.Membership[T]) bool {
	return compare.Sets[T](s, other)
}

// Hash buckets the set by emptiness only, consistent with Equal across
// arbitrary comparers.
func (s *Set[T]) Hash() uint64 {
	return compare.SetHash[T](s)
}
