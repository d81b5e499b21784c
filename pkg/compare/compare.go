package compare

import "reflect"

type (
	// Equaler is implemented by types that define their own equality. Two
	// values of such a type are equal exactly when a.Equal(b) reports true.
	//
	// Implementations must be reflexive, symmetric, and transitive, and a
	// type that implements Equaler should implement Hasher as well so that
	// equal values hash alike.
	Equaler[T any] interface {
		Equal(other T) bool
	}

	// Hasher is implemented by types that provide their own hash code. The
	// returned value must be identical for any two values the type considers
	// equal, and is only meaningful within a single process.
	Hasher interface {
		Hash() uint64
	}
)

// Values compares two values of the same type. Types implementing Equaler
// decide equality themselves; everything else falls back to semantic deep
// equality, so slices, maps, and pointer graphs compare by content.
//
// Example:
//
//	compare.Values(NewText("ada"), NewText("ada")) // true, via Text.Equal
//	compare.Values([]int{1, 2}, []int{1, 2})       // true, via deep equality
func Values[T any](a, b T) bool {
	if e, ok := any(a).(Equaler[T]); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

// sameRef reports whether a and b are the same pointer- or map-backed
// container. Reference identity is a safe fast accept even when element
// equality is irreflexive, as it is for NaN.
func sameRef(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !ra.IsValid() || !rb.IsValid() || ra.Type() != rb.Type() {
		return false
	}
	switch ra.Kind() {
	case reflect.Pointer, reflect.Map:
		return ra.Pointer() == rb.Pointer()
	}
	return false
}

// NilCheck performs a nil check on two pointers and returns whether they are
// equal and whether more comparison checks are needed.
//
// Returns (equal, needsMoreChecks) where:
//   - equal: true if both are nil, false if only one is nil
//   - needsMoreChecks: true if both pointers are non-nil and further comparison is needed
//
// Example:
//
//	func (o *Order) Equal(other *Order) bool {
//	    if eq, needsMoreChecks := compare.NilCheck(o, other); !needsMoreChecks {
//	        return eq
//	    }
//	    // Continue with field comparisons...
//	}
func NilCheck[T any](a, b *T) (equal bool, needsMoreChecks bool) {
	if a == nil && b == nil {
		return true, false
	}
	if a == nil || b == nil {
		return false, false
	}
	return false, true
}

// Pointers compares two pointer values for equality.
// Returns true if both are nil, or both are non-nil with equal values.
//
// Example:
//
//	func (a *Address) Equal(other *Address) bool {
//	    return compare.Pointers(a.Unit, other.Unit) &&
//	           compare.Pointers(a.Floor, other.Floor)
//	}
func Pointers[T comparable](a, b *T) bool {
	if (a != nil) != (b != nil) {
		return false
	}
	if a != nil && *a != *b {
		return false
	}
	return true
}

// PointersFunc compares two pointers using a custom equality function.
// Returns true if both are nil, or both are non-nil and the equality function
// returns true.
//
// Example:
//
//	func (o *Order) Equal(other *Order) bool {
//	    return compare.PointersFunc(o.Discount, other.Discount,
//	        func(a, b Discount) bool { return a.Equal(b) })
//	}
func PointersFunc[T any](a, b *T, equalFunc func(T, T) bool) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return equalFunc(*a, *b)
}
