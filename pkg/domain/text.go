package domain

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/domainkit/pkg/compare"
	"gopkg.in/yaml.v3"
)

type (
	// Text wraps one immutable string with case-sensitive semantics: two Text
	// values are equal when their underlying strings are byte-identical.
	//
	// Text is a value kind, not an identity kind. A nil underlying value is an
	// error here (see TextFromPtr), while identity kinds such as StringID
	// normalize nil to empty. Embed Text in a named type to declare a domain
	// value with equality, hashing, ordering, formatting, and JSON/YAML
	// round-tripping already in place:
	//
	//	type CountryCode struct{ domain.Text }
	//
	//	func NewCountryCode(s string) (CountryCode, error) {
	//		if len(s) != 2 {
	//			return CountryCode{}, errors.New("country code must be two letters")
	//		}
	//		return CountryCode{Text: domain.NewText(s)}, nil
	//	}
	//
	// Reconstitution from JSON or YAML goes through the embedded unmarshaler
	// and therefore never re-runs NewCountryCode's validation. That is the
	// load-bearing property of the embedding pattern: stored values come back
	// as-is, business rules run only at construction time.
	Text struct {
		value string
	}

	// FoldedText wraps one immutable string with case-insensitive semantics:
	// two FoldedText values are equal when strings.EqualFold reports their
	// underlying strings equal. The original spelling is preserved and is what
	// Value, String, and the marshalers emit; only comparison and hashing
	// fold.
	FoldedText struct {
		value string
	}
)

// NewText wraps s. Construction never validates.
func NewText(s string) Text { return Text{value: s} }

// TextFromPtr wraps the string p points at. A nil p is rejected with
// ErrNilValue: absence is not a valid empty signal for non-identity values.
func TextFromPtr(p *string) (Text, error) {
	if p == nil {
		return Text{}, errors.Wrap(ErrNilValue, "text")
	}
	return Text{value: *p}, nil
}

// RestoreText reconstitutes a Text from its underlying value, the inverse of
// Value. It never validates; reconstitution must be able to rebuild any
// stored value without re-running construction-time checks.
func RestoreText(s string) Text { return Text{value: s} }

// Value returns the underlying string.
func (t Text) Value() string { return t.value }

// String implements fmt.Stringer.
func (t Text) String() string { return t.value }

// IsZero reports whether the underlying string is empty.
func (t Text) IsZero() bool { return t.value == "" }

// Equal reports whether both values wrap byte-identical strings.
func (t Text) Equal(other Text) bool { return t.value == other.value }

// Hash returns a hash consistent with Equal, stable within a process.
func (t Text) Hash() uint64 { return compare.HashString(t.value) }

// Compare orders byte-wise: negative, zero, or positive.
func (t Text) Compare(other Text) int { return strings.Compare(t.value, other.value) }

// CompareAny implements the dynamic ordering capability.
func (t Text) CompareAny(other any) (int, error) { return compareAs(t, other, Text.Compare) }

// CaseMode reports CaseSensitive.
func (t Text) CaseMode() CaseMode { return CaseSensitive }

// MarshalText implements encoding.TextMarshaler.
func (t Text) MarshalText() ([]byte, error) { return []byte(t.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler. This is a reconstitution
// path: no validation runs.
func (t *Text) UnmarshalText(b []byte) error {
	t.value = string(b)
	return nil
}

// MarshalJSON encodes the underlying string.
func (t Text) MarshalJSON() ([]byte, error) { return json.Marshal(t.value) }

// UnmarshalJSON decodes a JSON string. A JSON null is rejected with
// ErrNilValue, matching TextFromPtr.
func (t *Text) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		return errors.Wrap(ErrNilValue, "text from JSON null")
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.Wrap(err, "unmarshaling text")
	}
	t.value = s

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t Text) MarshalYAML() (any, error) { return t.value, nil }

// UnmarshalYAML implements yaml.Unmarshaler with the same null policy as
// JSON.
func (t *Text) UnmarshalYAML(n *yaml.Node) error {
	if isYAMLNull(n) {
		return errors.Wrap(ErrNilValue, "text from YAML null")
	}
	if err := n.Decode(&t.value); err != nil {
		return errors.Wrap(err, "unmarshaling text")
	}
	return nil
}

// NewFoldedText wraps s, preserving its spelling. Construction never
// validates.
func NewFoldedText(s string) FoldedText { return FoldedText{value: s} }

// FoldedTextFromPtr wraps the string p points at. A nil p is rejected with
// ErrNilValue.
func FoldedTextFromPtr(p *string) (FoldedText, error) {
	if p == nil {
		return FoldedText{}, errors.Wrap(ErrNilValue, "folded text")
	}
	return FoldedText{value: *p}, nil
}

// RestoreFoldedText reconstitutes a FoldedText from its underlying value
// without validation.
func RestoreFoldedText(s string) FoldedText { return FoldedText{value: s} }

// Value returns the underlying string in its original spelling.
func (t FoldedText) Value() string { return t.value }

// String implements fmt.Stringer.
func (t FoldedText) String() string { return t.value }

// IsZero reports whether the underlying string is empty.
func (t FoldedText) IsZero() bool { return t.value == "" }

// Equal reports whether both values wrap strings equal under Unicode simple
// case folding.
func (t FoldedText) Equal(other FoldedText) bool {
	return strings.EqualFold(t.value, other.value)
}

// Hash returns a case-insensitive hash: fold-equal values always hash alike.
func (t FoldedText) Hash() uint64 { return compare.HashFolded(t.value) }

// Compare orders the fold-canonical forms byte-wise, so fold-equal values
// compare as zero and sorting with a stable sort keeps their input order.
func (t FoldedText) Compare(other FoldedText) int {
	return strings.Compare(compare.Folded(t.value), compare.Folded(other.value))
}

// CompareAny implements the dynamic ordering capability.
func (t FoldedText) CompareAny(other any) (int, error) {
	return compareAs(t, other, FoldedText.Compare)
}

// CaseMode reports CaseInsensitive.
func (t FoldedText) CaseMode() CaseMode { return CaseInsensitive }

// MarshalText implements encoding.TextMarshaler.
func (t FoldedText) MarshalText() ([]byte, error) { return []byte(t.value), nil }

// UnmarshalText implements encoding.TextUnmarshaler without validation.
func (t *FoldedText) UnmarshalText(b []byte) error {
	t.value = string(b)
	return nil
}

// MarshalJSON encodes the underlying string in its original spelling.
func (t FoldedText) MarshalJSON() ([]byte, error) { return json.Marshal(t.value) }

// UnmarshalJSON decodes a JSON string, rejecting null with ErrNilValue.
func (t *FoldedText) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		return errors.Wrap(ErrNilValue, "folded text from JSON null")
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.Wrap(err, "unmarshaling folded text")
	}
	t.value = s

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t FoldedText) MarshalYAML() (any, error) { return t.value, nil }

// UnmarshalYAML implements yaml.Unmarshaler, rejecting null with ErrNilValue.
func (t *FoldedText) UnmarshalYAML(n *yaml.Node) error {
	if isYAMLNull(n) {
		return errors.Wrap(ErrNilValue, "folded text from YAML null")
	}
	if err := n.Decode(&t.value); err != nil {
		return errors.Wrap(err, "unmarshaling folded text")
	}
	return nil
}
