// Package collections provides hash-based containers that carry their own
// element comparer: a Set, a keyed Map, and a keyed Multimap.
//
// The containers exist for domain code whose key semantics differ from Go's
// built-in == (case-insensitive strings, value objects with Equal methods).
// For ordinary keys, the built-in map plus the compare package's fast paths
// remain the right tool.
//
// # Key Features
//
//   - Pluggable Comparer pairing an equality function with a consistent hash
//   - Ready-made comparers: Natural (==), Ordinal, Fold (case-insensitive),
//     ByMethod (types with Equal/Hash methods), and Func for ad hoc pairs
//   - Deterministic, insertion-ordered iteration
//   - Each container satisfies its compare-package read interface
//     (Membership, Mapping, Grouping), so containers with different
//     comparers can still be compared structurally
//
// # Usage Examples
//
// A case-insensitive set:
//
//	tags := collections.NewSetWith(collections.Fold())
//	tags.Add("Go")
//	tags.Contains("GO") // true
//
// Grouping values under case-insensitive keys:
//
//	byCity := collections.NewMultimapWith[string, Order](collections.Fold())
//	byCity.Add("Lisbon", a)
//	byCity.Add("LISBON", b)
//	byCity.Group("lisbon") // [a b]
//
// The containers are not safe for concurrent mutation; build them first,
// then share them read-only.
package collections
