package domaintest

import (
	"github.com/pseudomuto/domainkit/pkg/compare"
	"github.com/stretchr/testify/require"
)

type (
	// Value is the contract surface the equality checkers exercise: typed
	// equality plus a consistent hash.
	Value[T any] interface {
		compare.Equaler[T]
		compare.Hasher
	}

	// OrderedValue adds a total order to Value.
	OrderedValue[T any] interface {
		Value[T]

		// Compare orders the receiver against other: negative, zero, or
		// positive.
		Compare(other T) int
	}

	tHelper interface{ Helper() }
)

// CheckReflexive asserts that every value in vals equals itself.
func CheckReflexive[T Value[T]](t require.TestingT, vals ...T) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	for _, v := range vals {
		require.True(t, v.Equal(v), "%v must equal itself", v)
	}
}

// CheckEqualHashLaw asserts, over every pair drawn from vals, that equality
// is symmetric and that equal values hash alike. Unequal values are allowed
// to share a hash; equal values are never allowed to differ.
func CheckEqualHashLaw[T Value[T]](t require.TestingT, vals ...T) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	for i, a := range vals {
		for _, b := range vals[i:] {
			require.Equal(t, a.Equal(b), b.Equal(a),
				"equality must be symmetric for %v and %v", a, b)

			if a.Equal(b) {
				require.Equal(t, a.Hash(), b.Hash(),
					"%v and %v are equal and must hash alike", a, b)
			}
		}
	}
}

// CheckOrderingLaws asserts that Compare is a total order consistent with
// Equal: zero exactly for equal values, antisymmetric over every pair, and
// transitive over every triple drawn from vals.
func CheckOrderingLaws[T OrderedValue[T]](t require.TestingT, vals ...T) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	for _, a := range vals {
		for _, b := range vals {
			require.Equal(t, a.Equal(b), a.Compare(b) == 0,
				"Compare must report zero exactly for equal values: %v vs %v", a, b)
			require.Equal(t, sgn(a.Compare(b)), -sgn(b.Compare(a)),
				"Compare must be antisymmetric: %v vs %v", a, b)

			for _, c := range vals {
				if a.Compare(b) <= 0 && b.Compare(c) <= 0 {
					require.LessOrEqual(t, a.Compare(c), 0,
						"Compare must be transitive: %v, %v, %v", a, b, c)
				}
			}
		}
	}
}

func sgn(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
