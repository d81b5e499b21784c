package compare

import (
	"encoding/binary"
	"hash/maphash"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// Shared hash buckets. Null always hashes to zero so that an absent container
// and an uninitialized hash agree; the other two are fixed sentinels for the
// unordered shapes, whose hashes never inspect elements.
const (
	HashNull     uint64 = 0
	HashEmpty    uint64 = 1
	HashNonEmpty uint64 = 2
)

// hashSeed randomizes per-process hashes of comparable values. Hashes are
// in-memory artifacts; nothing here is stable across runs.
var hashSeed = maphash.MakeSeed()

// Mix folds two hash values into one. The result depends on argument order,
// which sequence hashing relies on to keep head and tail contributions apart.
func Mix(h, v uint64) uint64 {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], h)
	binary.LittleEndian.PutUint64(b[8:], v)
	return xxhash.Sum64(b[:])
}

// HashString returns the hash of s. Stable within a process and consistent
// with string equality.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// HashBytes returns the hash of b, consistent with bytes.Equal.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// HashFolded returns a case-insensitive hash of s: two strings equal under
// strings.EqualFold always produce the same value. Each rune is mapped to the
// smallest rune in its simple case-folding orbit before hashing.
func HashFolded(s string) uint64 {
	d := xxhash.New()
	var buf [utf8.UTFMax]byte
	for _, r := range s {
		n := utf8.EncodeRune(buf[:], foldRune(r))
		_, _ = d.Write(buf[:n])
	}
	return d.Sum64()
}

// Folded returns the simple-case-fold canonical form of s: two strings equal
// under strings.EqualFold always fold to identical strings. Ordering folded
// forms byte-wise yields a total order whose equality matches HashFolded.
func Folded(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		b.WriteRune(foldRune(r))
	}
	return b.String()
}

// foldRune maps r to the minimum rune of its simple case-folding orbit, the
// canonical representative strings.EqualFold treats as equal.
func foldRune(r rune) rune {
	m := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < m {
			m = f
		}
	}
	return m
}

// ValueHash returns the hash of a comparable value, consistent with ==.
// Types implementing Hasher decide their own hash instead, and strings hash
// through HashString, so those two paths agree with HashOf.
func ValueHash[T comparable](v T) uint64 {
	if h, ok := any(v).(Hasher); ok {
		return h.Hash()
	}
	if s, ok := any(v).(string); ok {
		return HashString(s)
	}
	return maphash.Comparable(hashSeed, v)
}

// HashOf returns the hash of an arbitrary value: the Hasher result when the
// type provides one, a value hash for comparable types, and a fixed bucket
// for everything else. Total by construction; pairs with Values.
func HashOf(v any) uint64 {
	switch x := v.(type) {
	case nil:
		return HashNull
	case Hasher:
		return x.Hash()
	case string:
		return HashString(x)
	}
	if reflect.TypeOf(v).Comparable() {
		return maphash.Comparable(hashSeed, v)
	}
	return HashNonEmpty
}
