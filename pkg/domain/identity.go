package domain

import (
	"cmp"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/domainkit/pkg/compare"
	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"
)

type (
	// StringID is a string-backed identity kind: a wrapped string used as an
	// entity's key, with case-sensitive equality and ordering.
	//
	// Identity kinds normalize absence. A nil *string and a JSON or YAML null
	// both become the canonical empty identity, which is also the zero value,
	// so an identity that arrives uninitialized from a low-level
	// deserialization path equals one deliberately built from "". String is
	// the one underlying type where "absent" and "empty" collapse into a
	// single representation; for every other kind the zero value alone plays
	// the default role.
	//
	// Declare a typed key by embedding:
	//
	//	type OrderRef struct{ domain.StringID }
	StringID struct {
		value string
	}

	// NumericID is an integer-backed identity kind. The zero value is the
	// default sentinel: an entity whose NumericID is 0 has not been assigned
	// a meaningful identity yet (see HasDefaultIdentity).
	NumericID[T constraints.Integer] struct {
		value T
	}
)

// NewStringID wraps s as an identity.
func NewStringID(s string) StringID { return StringID{value: s} }

// StringIDFromPtr wraps the string p points at, normalizing nil to the
// canonical empty identity.
func StringIDFromPtr(p *string) StringID {
	if p == nil {
		return StringID{}
	}
	return StringID{value: *p}
}

// RestoreStringID reconstitutes a StringID from its underlying value without
// validation, the inverse of Value.
func RestoreStringID(s string) StringID { return StringID{value: s} }

// Value returns the underlying string.
func (id StringID) Value() string { return id.value }

// String implements fmt.Stringer.
func (id StringID) String() string { return id.value }

// IsZero reports whether the identity is the canonical empty one.
func (id StringID) IsZero() bool { return id.value == "" }

// Equal reports whether both identities wrap byte-identical strings.
func (id StringID) Equal(other StringID) bool { return id.value == other.value }

// Hash returns a hash consistent with Equal, stable within a process.
func (id StringID) Hash() uint64 { return compare.HashString(id.value) }

// Compare orders byte-wise.
func (id StringID) Compare(other StringID) int { return strings.Compare(id.value, other.value) }

// CompareAny implements the dynamic ordering capability.
func (id StringID) CompareAny(other any) (int, error) {
	return compareAs(id, other, StringID.Compare)
}

// CaseMode reports CaseSensitive.
func (id StringID) CaseMode() CaseMode { return CaseSensitive }

// MarshalText implements encoding.TextMarshaler.
func (id StringID) MarshalText() ([]byte, error) { return []byte(id.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler without validation.
func (id *StringID) UnmarshalText(b []byte) error {
	id.value = string(b)
	return nil
}

// MarshalJSON encodes the underlying string.
func (id StringID) MarshalJSON() ([]byte, error) { return json.Marshal(id.value) }

// UnmarshalJSON decodes a JSON string. A JSON null reads as the empty
// identity, never as an error.
func (id *StringID) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		*id = StringID{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.Wrap(err, "unmarshaling string id")
	}
	id.value = s

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (id StringID) MarshalYAML() (any, error) { return id.value, nil }

// UnmarshalYAML implements yaml.Unmarshaler with the same null policy as
// JSON.
func (id *StringID) UnmarshalYAML(n *yaml.Node) error {
	if isYAMLNull(n) {
		*id = StringID{}
		return nil
	}
	if err := n.Decode(&id.value); err != nil {
		return errors.Wrap(err, "unmarshaling string id")
	}
	return nil
}

// NewNumericID wraps v as an identity.
func NewNumericID[T constraints.Integer](v T) NumericID[T] { return NumericID[T]{value: v} }

// NumericIDFromPtr wraps the value p points at, normalizing nil to the
// default identity.
func NumericIDFromPtr[T constraints.Integer](p *T) NumericID[T] {
	if p == nil {
		return NumericID[T]{}
	}
	return NumericID[T]{value: *p}
}

// RestoreNumericID reconstitutes a NumericID from its underlying value
// without validation, the inverse of Value.
func RestoreNumericID[T constraints.Integer](v T) NumericID[T] { return NumericID[T]{value: v} }

// ParseNumericID parses the canonical decimal text form.
func ParseNumericID[T constraints.Integer](s string) (NumericID[T], error) {
	v, err := parseNumeric[T](s)
	if err != nil {
		return NumericID[T]{}, errors.Wrap(err, "parsing numeric id")
	}
	return NumericID[T]{value: v}, nil
}

// Value returns the underlying integer.
func (id NumericID[T]) Value() T { return id.value }

// String returns the canonical decimal text form.
func (id NumericID[T]) String() string { return formatNumeric(id.value) }

// IsZero reports whether the identity is the default one.
func (id NumericID[T]) IsZero() bool { return id.value == 0 }

// Equal reports whether both identities wrap the same integer.
func (id NumericID[T]) Equal(other NumericID[T]) bool { return id.value == other.value }

// Hash returns a hash consistent with Equal, stable within a process.
func (id NumericID[T]) Hash() uint64 { return compare.ValueHash(id.value) }

// Compare orders numerically.
func (id NumericID[T]) Compare(other NumericID[T]) int {
	return cmp.Compare(id.value, other.value)
}

// CompareAny implements the dynamic ordering capability.
func (id NumericID[T]) CompareAny(other any) (int, error) {
	return compareAs(id, other, NumericID[T].Compare)
}

// MarshalText implements encoding.TextMarshaler.
func (id NumericID[T]) MarshalText() ([]byte, error) { return []byte(id.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler via ParseNumericID.
func (id *NumericID[T]) UnmarshalText(b []byte) error {
	parsed, err := ParseNumericID[T](string(b))
	if err != nil {
		return err
	}
	id.value = parsed.value
	return nil
}

// MarshalJSON encodes the underlying integer as a JSON number.
func (id NumericID[T]) MarshalJSON() ([]byte, error) { return json.Marshal(id.value) }

// UnmarshalJSON decodes a JSON number. A JSON null reads as the default
// identity, never as an error.
func (id *NumericID[T]) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		*id = NumericID[T]{}
		return nil
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return errors.Wrap(err, "unmarshaling numeric id")
	}
	id.value = v

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (id NumericID[T]) MarshalYAML() (any, error) { return id.value, nil }

// UnmarshalYAML implements yaml.Unmarshaler with the same null policy as
// JSON.
func (id *NumericID[T]) UnmarshalYAML(n *yaml.Node) error {
	if isYAMLNull(n) {
		*id = NumericID[T]{}
		return nil
	}
	if err := n.Decode(&id.value); err != nil {
		return errors.Wrap(err, "unmarshaling numeric id")
	}
	return nil
}
