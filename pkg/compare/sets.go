package compare

import "iter"

// Membership is the minimal read surface a set must expose to be compared.
// Implementations answer Contains with their own element comparer, which may
// differ between the two operands of Sets.
type Membership[T any] interface {
	// Len reports the number of elements.
	Len() int

	// Contains reports whether e is a member under this set's own comparer.
	Contains(e T) bool

	// Elems iterates the elements in any order.
	Elems() iter.Seq[T]
}

// Sets compares two sets without regard to element order. Equality requires
// equal sizes plus a two-way membership check: every element of a must be a
// member of b under b's comparer, and every element of b a member of a under
// a's comparer. A nil Membership is the null set, distinct from an empty one.
//
// The two-way check exists because the operands may disagree about element
// equality; see the package documentation for the residual asymmetry this
// cannot remove.
//
// Example:
//
//	a := collections.NewSet("red", "green")
//	b := collections.NewSet("green", "red")
//	compare.Sets[string](a, b) // true
func Sets[T any](a, b Membership[T]) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if sameRef(a, b) {
		return true
	}
	if a.Len() != b.Len() {
		return false
	}
	return subsetOf(a, b) && subsetOf(b, a)
}

// subsetOf reports whether every element of a is a member of b, asking b.
func subsetOf[T any](a, b Membership[T]) bool {
	for e := range a.Elems() {
		if !b.Contains(e) {
			return false
		}
	}
	return true
}

// SetHash hashes a set into one of three buckets: null, empty, or non-empty.
// Element-derived hashing is unsafe here because the operand sets of Sets may
// use different comparers, and the hash must never disagree with equality.
func SetHash[T any](s Membership[T]) uint64 {
	switch {
	case s == nil:
		return HashNull
	case s.Len() == 0:
		return HashEmpty
	default:
		return HashNonEmpty
	}
}
