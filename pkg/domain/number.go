package domain

import (
	"cmp"
	"encoding/json"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
	"github.com/pseudomuto/domainkit/pkg/compare"
	"golang.org/x/exp/constraints"
	"gopkg.in/yaml.v3"
)

// Numeric bounds the underlying types Number accepts.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Number wraps one immutable numeric value. Equality, hashing, and ordering
// follow the underlying value; the JSON and YAML forms are plain numbers.
//
// Like Text, Number is a value kind: a nil underlying value is an error (see
// NumberFromPtr). Use NumericID for numbers that serve as entity keys.
type Number[T Numeric] struct {
	value T
}

// NewNumber wraps v. Construction never validates.
func NewNumber[T Numeric](v T) Number[T] { return Number[T]{value: v} }

// NumberFromPtr wraps the value p points at. A nil p is rejected with
// ErrNilValue.
func NumberFromPtr[T Numeric](p *T) (Number[T], error) {
	if p == nil {
		return Number[T]{}, errors.Wrap(ErrNilValue, "number")
	}
	return Number[T]{value: *p}, nil
}

// RestoreNumber reconstitutes a Number from its underlying value without
// validation, the inverse of Value.
func RestoreNumber[T Numeric](v T) Number[T] { return Number[T]{value: v} }

// ParseNumber parses the canonical text form produced by String.
func ParseNumber[T Numeric](s string) (Number[T], error) {
	v, err := parseNumeric[T](s)
	if err != nil {
		return Number[T]{}, errors.Wrap(err, "parsing number")
	}
	return Number[T]{value: v}, nil
}

// Value returns the underlying value.
func (n Number[T]) Value() T { return n.value }

// String returns the canonical decimal text form.
func (n Number[T]) String() string { return formatNumeric(n.value) }

// IsZero reports whether the underlying value is zero.
func (n Number[T]) IsZero() bool { return n.value == 0 }

// Equal reports whether both values wrap the same number.
func (n Number[T]) Equal(other Number[T]) bool { return n.value == other.value }

// Hash returns a hash consistent with Equal, stable within a process.
func (n Number[T]) Hash() uint64 { return compare.ValueHash(n.value) }

// Compare orders numerically. A floating-point NaN orders below every other
// value, including itself, so Compare stays total.
func (n Number[T]) Compare(other Number[T]) int { return cmp.Compare(n.value, other.value) }

// CompareAny implements the dynamic ordering capability.
func (n Number[T]) CompareAny(other any) (int, error) {
	return compareAs(n, other, Number[T].Compare)
}

// MarshalText implements encoding.TextMarshaler.
func (n Number[T]) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler via ParseNumber.
func (n *Number[T]) UnmarshalText(b []byte) error {
	parsed, err := ParseNumber[T](string(b))
	if err != nil {
		return err
	}
	n.value = parsed.value
	return nil
}

// MarshalJSON encodes the underlying value as a JSON number.
func (n Number[T]) MarshalJSON() ([]byte, error) { return json.Marshal(n.value) }

// UnmarshalJSON decodes a JSON number. A JSON null is rejected with
// ErrNilValue, matching NumberFromPtr.
func (n *Number[T]) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		return errors.Wrap(ErrNilValue, "number from JSON null")
	}

	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return errors.Wrap(err, "unmarshaling number")
	}
	n.value = v

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (n Number[T]) MarshalYAML() (any, error) { return n.value, nil }

// UnmarshalYAML implements yaml.Unmarshaler with the same null policy as
// JSON.
func (n *Number[T]) UnmarshalYAML(node *yaml.Node) error {
	if isYAMLNull(node) {
		return errors.Wrap(ErrNilValue, "number from YAML null")
	}
	if err := node.Decode(&n.value); err != nil {
		return errors.Wrap(err, "unmarshaling number")
	}
	return nil
}

// parseNumeric parses s into the numeric type T, dispatching on T's kind.
func parseNumeric[T Numeric](s string) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetUint(u)
	default:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return v, err
		}
		rv.SetFloat(f)
	}

	return v, nil
}

// formatNumeric renders v in the shortest decimal form that parses back to
// the same value.
func formatNumeric[T Numeric](v T) string {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits())
	}
}
