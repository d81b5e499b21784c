package domain

import (
	"github.com/pkg/errors"
	"github.com/pseudomuto/domainkit/pkg/compare"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Decimal wraps one immutable arbitrary-precision decimal. Equality compares
// magnitude, not representation: 1.5 and 1.50 are equal and hash alike. The
// JSON form is a quoted decimal string so precision survives the wire.
type Decimal struct {
	value decimal.Decimal
}

// NewDecimal wraps d. Construction never validates.
func NewDecimal(d decimal.Decimal) Decimal { return Decimal{value: d} }

// DecimalFromPtr wraps the value p points at. A nil p is rejected with
// ErrNilValue.
func DecimalFromPtr(p *decimal.Decimal) (Decimal, error) {
	if p == nil {
		return Decimal{}, errors.Wrap(ErrNilValue, "decimal")
	}
	return Decimal{value: *p}, nil
}

// RestoreDecimal reconstitutes a Decimal from its underlying value without
// validation, the inverse of Value.
func RestoreDecimal(d decimal.Decimal) Decimal { return Decimal{value: d} }

// ParseDecimal parses a decimal string such as "1234.5" or "-0.25".
func ParseDecimal(s string) (Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, errors.Wrapf(err, "parsing decimal %q", s)
	}
	return Decimal{value: d}, nil
}

// Value returns the underlying decimal.
func (d Decimal) Value() decimal.Decimal { return d.value }

// String returns the decimal text form.
func (d Decimal) String() string { return d.value.String() }

// IsZero reports whether the underlying value is numerically zero at any
// scale.
func (d Decimal) IsZero() bool { return d.value.IsZero() }

// Equal reports whether both values wrap the same magnitude, regardless of
// scale.
func (d Decimal) Equal(other Decimal) bool { return d.value.Equal(other.value) }

// Hash returns a hash consistent with Equal. The value is reduced to its
// canonical rational form first so that scale never leaks into the hash.
func (d Decimal) Hash() uint64 { return compare.HashString(d.value.Rat().RatString()) }

// Compare orders numerically.
func (d Decimal) Compare(other Decimal) int { return d.value.Cmp(other.value) }

// CompareAny implements the dynamic ordering capability.
func (d Decimal) CompareAny(other any) (int, error) {
	return compareAs(d, other, Decimal.Compare)
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) { return d.value.MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(b []byte) error {
	if err := d.value.UnmarshalText(b); err != nil {
		return errors.Wrap(err, "unmarshaling decimal")
	}
	return nil
}

// MarshalJSON encodes the value as a quoted decimal string.
func (d Decimal) MarshalJSON() ([]byte, error) { return d.value.MarshalJSON() }

// UnmarshalJSON decodes a quoted or bare JSON number. A JSON null is rejected
// with ErrNilValue, matching DecimalFromPtr.
func (d *Decimal) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		return errors.Wrap(ErrNilValue, "decimal from JSON null")
	}
	if err := d.value.UnmarshalJSON(b); err != nil {
		return errors.Wrap(err, "unmarshaling decimal")
	}
	return nil
}

// MarshalYAML encodes the value as its text form so precision is preserved.
func (d Decimal) MarshalYAML() (any, error) { return d.value.String(), nil }

// UnmarshalYAML decodes a scalar node, rejecting null with ErrNilValue.
func (d *Decimal) UnmarshalYAML(n *yaml.Node) error {
	if isYAMLNull(n) {
		return errors.Wrap(ErrNilValue, "decimal from YAML null")
	}

	var s string
	if err := n.Decode(&s); err != nil {
		return errors.Wrap(err, "unmarshaling decimal")
	}

	parsed, err := ParseDecimal(s)
	if err != nil {
		return err
	}
	d.value = parsed.value

	return nil
}
