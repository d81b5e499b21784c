package domain

import "github.com/pkg/errors"

// CaseMode declares how a string-backed wrapped value treats letter case in
// equality, hashing, and ordering.
type CaseMode int

const (
	// CaseSensitive matches byte-identical strings only.
	CaseSensitive CaseMode = iota

	// CaseInsensitive matches strings equal under Unicode simple case
	// folding, the strings.EqualFold rule.
	CaseInsensitive
)

// String implements fmt.Stringer.
func (m CaseMode) String() string {
	if m == CaseInsensitive {
		return "case-insensitive"
	}
	return "case-sensitive"
}

// Ordered is the dynamic ordering capability. Every wrapped kind with a total
// order implements it by delegating to its typed Compare method; kinds
// without an order simply omit it and fail CompareAny at the call site that
// needs ordering, never at construction.
type Ordered interface {
	// CompareAny orders the receiver against other, which must hold the same
	// concrete type. Mismatched operand types answer ErrTypeMismatch.
	CompareAny(other any) (int, error)
}

// CaseModeOf reports the case sensitivity of a string-backed wrapped value.
// Non-string-backed values answer ErrUnsupported: case sensitivity is a
// declared capability, not a universal property.
//
// Example:
//
//	domain.CaseModeOf(domain.NewFoldedText("Go")) // CaseInsensitive, nil
//	domain.CaseModeOf(domain.NewNumber(7))        // 0, ErrUnsupported
func CaseModeOf(v any) (CaseMode, error) {
	if c, ok := v.(interface{ CaseMode() CaseMode }); ok {
		return c.CaseMode(), nil
	}
	return 0, errors.Wrapf(ErrUnsupported, "case mode of %T", v)
}

// CompareAny orders two wrapped values held as dynamic types. Kinds that do
// not declare ordering answer ErrUnsupported; mismatched operand types answer
// ErrTypeMismatch.
func CompareAny(a, b any) (int, error) {
	o, ok := a.(Ordered)
	if !ok {
		return 0, errors.Wrapf(ErrUnsupported, "ordering of %T", a)
	}
	return o.CompareAny(b)
}

// compareAs resolves the dynamic operand to the receiver's concrete type
// before applying the typed comparison.
func compareAs[T any](a T, other any, cmp func(T, T) int) (int, error) {
	o, ok := other.(T)
	if !ok {
		return 0, errors.Wrapf(ErrTypeMismatch, "comparing %T with %T", a, other)
	}
	return cmp(a, o), nil
}
