// Package domain provides the building blocks for domain-driven models:
// wrapped values, identities, entities, and domain events, each carrying
// structurally correct equality, hashing, ordering, formatting, and JSON/YAML
// round-tripping so that application code never hand-writes them.
//
// # Key Features
//
//   - Wrapped value kinds for the common underlying types: Text and
//     FoldedText (case-sensitive and case-insensitive strings), Number
//     (integers and floats), and Decimal (arbitrary precision)
//   - Identity kinds for entity keys: StringID, NumericID, and UUID, with
//     default-sentinel detection for not-yet-persisted entities
//   - Entity equality and hashing driven by identity and concrete type,
//     never by attributes
//   - Domain events with identity and occurrence time, plus an embeddable
//     Recorder for aggregate roots
//   - Dynamic capability queries (CaseModeOf, CompareAny) that fail with
//     typed errors instead of panicking
//   - A reconstitution path (Restore functions and the unmarshalers) that
//     never re-runs construction-time validation
//
// # Declaring Domain Types
//
// Embed a kind to declare a domain value or key. The embedded methods supply
// equality, hashing, comparison, formatting, and (de)serialization; the
// outer type adds its own construction rules:
//
//	type Email struct{ domain.Text }
//
//	func NewEmail(s string) (Email, error) {
//		if !strings.Contains(s, "@") {
//			return Email{}, errors.New("malformed email")
//		}
//		return Email{Text: domain.NewText(s)}, nil
//	}
//
// Unmarshaling an Email from JSON goes through the embedded Text unmarshaler
// and never calls NewEmail. Reconstitution from storage must be able to
// rebuild any previously stored value even when business rules have since
// changed; validation belongs at construction time only.
//
// # Value Kinds Versus Identity Kinds
//
// Value kinds (Text, FoldedText, Number, Decimal) reject absent input:
// building one from a nil pointer or a JSON/YAML null fails with ErrNilValue.
// Identity kinds (StringID, NumericID, UUID, EventID) normalize absence to
// their default sentinel instead, because an identity that has not been
// assigned yet is a legitimate state an entity passes through before it is
// persisted. For StringID the default coincides with the deliberately empty
// identity: "" and a null both mean "no key yet", and both compare and hash
// identically.
//
// # Entities
//
// An entity owns one identity for its lifetime. EntityEqual accepts the same
// reference, rejects different concrete types, rejects any side whose
// identity is still the kind's default, and otherwise compares identities:
//
//	type Customer struct {
//		id domain.NumericID[int64]
//	}
//
//	func (c *Customer) Identity() domain.NumericID[int64] { return c.id }
//
//	a := &Customer{id: domain.NewNumericID[int64](7)}
//	b := &Customer{id: domain.NewNumericID[int64](7)}
//	domain.EntityEqual[domain.NumericID[int64]](a, b) // true
//
// Two freshly constructed entities with default identities are never equal,
// so unsaved aggregates cannot collide in sets or maps before the store
// assigns their keys. EntityHash falls back to an address hash for exactly
// that state.
//
// All values are immutable after construction and safe for concurrent use;
// the one piece of shared state, the per-type identity sentinel cache, is
// initialized once per type and never invalidated.
package domain
