package collections

import (
	"strings"

	"github.com/pseudomuto/domainkit/pkg/compare"
)

// Comparer decides element equality for a container and supplies the matching
// hash. Implementations must keep the two consistent: values reported equal
// must hash to the same bucket.
type Comparer[T any] interface {
	// Equal reports whether a and b are the same element.
	Equal(a, b T) bool

	// Hash returns the bucket hash for v, consistent with Equal.
	Hash(v T) uint64
}

type funcComparer[T any] struct {
	eq   func(a, b T) bool
	hash func(v T) uint64
}

func (c funcComparer[T]) Equal(a, b T) bool { return c.eq(a, b) }

func (c funcComparer[T]) Hash(v T) uint64 { return c.hash(v) }

// Func builds a Comparer from an equality function and a hash function. The
// caller owns the consistency of the pair.
func Func[T any](equalFunc func(a, b T) bool, hashFunc func(v T) uint64) Comparer[T] {
	return funcComparer[T]{eq: equalFunc, hash: hashFunc}
}

// Natural compares values with == and hashes them consistently. This is the
// default comparer for ordinary keys.
func Natural[T comparable]() Comparer[T] {
	return Func(func(a, b T) bool { return a == b }, compare.ValueHash[T])
}

// Ordinal compares strings byte for byte, the case-sensitive counterpart of
// Fold.
func Ordinal() Comparer[string] {
	return Func(func(a, b string) bool { return a == b }, compare.HashString)
}

// Fold compares strings case-insensitively under Unicode simple case folding
// and hashes through the folded form, so "Go" and "GO" land in one bucket.
func Fold() Comparer[string] {
	return Func(strings.EqualFold, compare.HashFolded)
}

// ByMethod builds a Comparer for types that carry their own Equal and Hash
// methods, such as wrapped domain values.
func ByMethod[T interface {
	compare.Equaler[T]
	compare.Hasher
}]() Comparer[T] {
	return Func(
		func(a, b T) bool { return a.Equal(b) },
		func(v T) uint64 { return v.Hash() },
	)
}
