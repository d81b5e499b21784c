package domain

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/pseudomuto/domainkit/pkg/compare"
	"gopkg.in/yaml.v3"
)

// UUID is a UUID-backed identity kind. The nil UUID is the default sentinel,
// and a JSON or YAML null reads as that default. Ordering is lexicographic
// over the raw bytes, which for version 7 UUIDs follows creation order.
//
// Declare a typed key by embedding:
//
//	type AccountID struct{ domain.UUID }
type UUID struct {
	value uuid.UUID
}

// GenerateUUID returns an identity wrapping a new random UUID.
func GenerateUUID() UUID { return UUID{value: uuid.New()} }

// NewUUID wraps u as an identity.
func NewUUID(u uuid.UUID) UUID { return UUID{value: u} }

// ParseUUID parses the canonical text form produced by String.
func ParseUUID(s string) (UUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, errors.Wrapf(err, "parsing uuid %q", s)
	}
	return UUID{value: u}, nil
}

// RestoreUUID reconstitutes a UUID identity from its underlying value without
// validation, the inverse of Value.
func RestoreUUID(u uuid.UUID) UUID { return UUID{value: u} }

// Value returns the underlying UUID.
func (id UUID) Value() uuid.UUID { return id.value }

// String returns the canonical 36-character form.
func (id UUID) String() string { return id.value.String() }

// IsZero reports whether the identity is the nil UUID.
func (id UUID) IsZero() bool { return id.value == uuid.Nil }

// Equal reports whether both identities wrap the same UUID.
func (id UUID) Equal(other UUID) bool { return id.value == other.value }

// Hash returns a hash consistent with Equal, stable within a process.
func (id UUID) Hash() uint64 { return compare.HashBytes(id.value[:]) }

// Compare orders lexicographically over the raw bytes.
func (id UUID) Compare(other UUID) int { return bytes.Compare(id.value[:], other.value[:]) }

// CompareAny implements the dynamic ordering capability.
func (id UUID) CompareAny(other any) (int, error) { return compareAs(id, other, UUID.Compare) }

// MarshalText implements encoding.TextMarshaler.
func (id UUID) MarshalText() ([]byte, error) { return id.value.MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *UUID) UnmarshalText(b []byte) error {
	if err := id.value.UnmarshalText(b); err != nil {
		return errors.Wrap(err, "unmarshaling uuid")
	}
	return nil
}

// MarshalJSON encodes the canonical text form.
func (id UUID) MarshalJSON() ([]byte, error) { return json.Marshal(id.value.String()) }

// UnmarshalJSON decodes a JSON string. A JSON null reads as the default
// identity, never as an error.
func (id *UUID) UnmarshalJSON(b []byte) error {
	if isJSONNull(b) {
		*id = UUID{}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return errors.Wrap(err, "unmarshaling uuid")
	}

	parsed, err := ParseUUID(s)
	if err != nil {
		return err
	}
	id.value = parsed.value

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (id UUID) MarshalYAML() (any, error) { return id.value.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler with the same null policy as
// JSON.
func (id *UUID) UnmarshalYAML(n *yaml.Node) error {
	if isYAMLNull(n) {
		*id = UUID{}
		return nil
	}

	var s string
	if err := n.Decode(&s); err != nil {
		return errors.Wrap(err, "unmarshaling uuid")
	}

	parsed, err := ParseUUID(s)
	if err != nil {
		return err
	}
	id.value = parsed.value

	return nil
}
