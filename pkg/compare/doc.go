// Package compare provides structural equality and hashing for the container
// shapes that appear in domain models: sequences, sets, keyed maps, and keyed
// multimaps.
//
// Every shape gets a matched pair of entry points, an equality function and a
// hash function, that together satisfy the hash-code contract: whenever the
// equality function reports two containers equal, the hash function returns
// the same value for both. The converse is deliberately not promised; several
// hash functions trade precision for contract safety (see below).
//
// # Key Features
//
//   - Nil-aware comparisons: a nil slice/map/interface is distinct from an
//     empty one, and both are distinct from any populated container
//   - Order-sensitive sequence equality with constant-time hashing
//     (length + first + last, never a full scan)
//   - Order-insensitive set and keyed-map equality performed as a two-way
//     check through each operand's own membership test
//   - Multimap equality that ignores key order but preserves the order of
//     each key's value sequence
//   - Element contracts (Equaler, Hasher) with dispatch helpers for types
//     that define their own semantics
//
// # Two-Way Checks And Comparer Asymmetry
//
// Sets, keyed maps, and multimaps are compared from both operands'
// perspectives because each operand answers membership questions with its own
// comparer. When the two operands disagree about element equality (one
// case-sensitive, the other case-insensitive), a one-way check can pass while
// the reverse check fails; the two-way check catches that. Two containers of
// equal size whose comparers agree in both directions can still be reported
// equal despite holding different backing data. That is a documented
// limitation of comparing foreign containers, not a bug.
//
// # Hash Degeneration For Unordered Shapes
//
// Because a foreign container's comparer is unknowable, any element-derived
// hash could violate the hash-code contract under comparer asymmetry. Sets,
// keyed maps, and multimaps therefore hash into exactly three buckets:
// HashNull for nil, HashEmpty for empty, HashNonEmpty for everything else.
// Do not "improve" these hashes; equality-consistency is the point.
//
// # Usage Examples
//
// Position matters for sequences:
//
//	compare.Sequences([]string{"a", "b"}, []string{"a", "b"}) // true
//	compare.Sequences([]string{"a", "b"}, []string{"b", "a"}) // false
//
// The built-in map is the keyed-map fast path:
//
//	compare.MapsFunc(ratings, other, func(a, b Rating) bool {
//	    return a.Equal(b)
//	})
//
// Hashes pair with their equality function:
//
//	h := compare.SequenceHash(items, func(i Item) uint64 { return i.Hash() })
//
// All functions are total: nil, empty, and default inputs map to defined
// results, never to a panic or an error. Hash values are 64-bit and stable
// only within a single process.
package compare
