package domain

import (
	"reflect"
	"sync"

	"github.com/pseudomuto/domainkit/pkg/compare"
	"golang.org/x/sync/singleflight"
)

// Sentinels for pointer-backed identity kinds: one zeroed instance per type,
// computed once and kept for the process lifetime. The cache is never
// invalidated.
var (
	sentinels      sync.Map // reflect.Type -> any
	sentinelFlight singleflight.Group
)

// DefaultOf returns the "not yet assigned" sentinel for an identity kind.
//
// For value kinds, strings, and interface kinds the zero value already plays
// that role. For a pointer-to-struct kind the zero value would be nil, which
// cannot be compared against without nil branches spreading through every
// caller, so DefaultOf returns a shared instance pointing at a zeroed struct
// instead. No constructor runs: zero values in Go never do, which is exactly
// the reconstitution guarantee identity sentinels need.
//
// The pointer sentinel is built at most once per type; concurrent first
// callers observe the same instance.
func DefaultOf[K any]() K {
	var zero K
	t := reflect.TypeOf(&zero).Elem()
	if t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return zero
	}
	return sentinelFor(t).(K)
}

// sentinelFor returns the cached zeroed instance for the pointer type t.
func sentinelFor(t reflect.Type) any {
	if v, ok := sentinels.Load(t); ok {
		return v
	}

	key := t.Elem().PkgPath() + "." + t.Elem().Name()
	v, _, _ := sentinelFlight.Do(key, func() (any, error) {
		if v, ok := sentinels.Load(t); ok {
			return v, nil
		}
		v := reflect.New(t.Elem()).Convert(t).Interface()
		sentinels.Store(t, v)
		return v, nil
	})

	return v
}

// IsDefault reports whether id is its kind's default sentinel: the zero
// value, a nil pointer or interface, or a pointer whose pointee equals the
// zeroed instance.
func IsDefault[K any](id K) bool {
	rv := reflect.ValueOf(id)
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return true
		}
	}

	return IdentityEqual(id, DefaultOf[K]())
}

// IdentityEqual compares two identity values. Kinds with an Equal method
// decide for themselves, which is how string identities collapse absent and
// empty into one; everything else falls back to semantic deep equality, which
// follows pointers, so two pointer identities with equal pointees agree with
// the sentinel model. Total: nil operands are answered, never dereferenced.
func IdentityEqual[K any](a, b K) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	aNil := isNilIdentity(ra)
	bNil := isNilIdentity(rb)
	if aNil || bNil {
		return aNil == bNil
	}

	return compare.Values(a, b)
}

// IdentityHash returns the hash of an identity value, consistent with
// IdentityEqual. Pointer identities hash their pointees so that two pointers
// to equal instances agree; nil identities take the null bucket.
func IdentityHash[K any](id K) uint64 {
	rv := reflect.ValueOf(id)
	if isNilIdentity(rv) {
		return compare.HashNull
	}

	if h, ok := any(id).(compare.Hasher); ok {
		return h.Hash()
	}
	if rv.Kind() == reflect.Pointer {
		return compare.HashOf(rv.Elem().Interface())
	}

	return compare.HashOf(id)
}

// isNilIdentity reports whether rv holds no identity at all: an invalid
// value (nil interface) or a nil pointer.
func isNilIdentity(rv reflect.Value) bool {
	if !rv.IsValid() {
		return true
	}
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
