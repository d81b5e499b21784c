package domain

import (
	"reflect"

	"github.com/pseudomuto/domainkit/pkg/compare"
)

// Entity is implemented by domain objects whose equality follows from an
// identity rather than from their attributes. The identity is assigned at
// construction and never reassigned; an entity whose identity is still the
// kind's default has not been persisted yet and is equal only to itself by
// reference.
//
// Entities are expected to be pointers. Reference semantics (the fast accept
// in EntityEqual, the address hash for unassigned entities) only exist for
// pointer values.
type Entity[K any] interface {
	// Identity returns the entity's key.
	Identity() K
}

// HasDefaultIdentity reports whether e still carries its kind's default
// identity: fresh, unsaved, equal only to itself by reference.
func HasDefaultIdentity[K any](e Entity[K]) bool {
	if e == nil || isNilEntity(e) {
		return true
	}
	return IsDefault(e.Identity())
}

// EntityEqual compares two entities:
//
//   - the same reference is always equal
//   - different concrete types are never equal, whatever their identities
//   - a default identity on either side is never equal, so two fresh,
//     unsaved entities cannot collide before they are assigned keys
//   - otherwise identity equality decides
func EntityEqual[K any](a, b Entity[K]) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if sameEntity(a, b) {
		return true
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if isNilEntity(a) || isNilEntity(b) {
		return false
	}
	if IsDefault(a.Identity()) || IsDefault(b.Identity()) {
		return false
	}

	return IdentityEqual(a.Identity(), b.Identity())
}

// EntityHash returns a hash consistent with EntityEqual: the identity's hash
// once assigned, or an address-derived hash while the identity is still
// default, so unsaved entities spread across hash buckets instead of piling
// onto the shared default.
func EntityHash[K any](e Entity[K]) uint64 {
	if e == nil {
		return compare.HashNull
	}
	if isNilEntity(e) || IsDefault(e.Identity()) {
		return referenceHash(e)
	}
	return IdentityHash(e.Identity())
}

// sameEntity reports whether a and b are the same pointer.
func sameEntity(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Kind() != reflect.Pointer || rb.Kind() != reflect.Pointer {
		return false
	}
	return ra.Type() == rb.Type() && ra.Pointer() == rb.Pointer()
}

// isNilEntity reports whether e is a typed nil pointer, which must never
// reach an Identity call.
func isNilEntity(e any) bool {
	rv := reflect.ValueOf(e)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// referenceHash hashes an entity by address. A non-pointer entity has no
// stable address and lands in a fixed bucket; such an entity with a default
// identity is equal to nothing, so any bucket satisfies the hash contract.
func referenceHash(e any) uint64 {
	rv := reflect.ValueOf(e)
	if rv.Kind() != reflect.Pointer {
		return compare.HashNonEmpty
	}
	return compare.ValueHash(rv.Pointer())
}
