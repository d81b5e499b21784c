// Package domaintest provides test support for code built on the domainkit
// packages: contract-law checkers for equality, hashing, and ordering, a
// small test-data builder, and pointer helpers for literals.
//
// # Contract Checkers
//
// A type that implements Equal, Hash, and Compare owes its callers three
// laws: equality is reflexive and symmetric, equal values hash alike, and
// Compare is a total order that agrees with Equal. The checkers assert those
// laws over a hand-picked sample of values, which is where custom types break
// in practice (case folding, scale normalization, absent-versus-empty):
//
//	func TestEmailContract(t *testing.T) {
//		vals := []Email{
//			mustEmail(t, "ada@example.com"),
//			mustEmail(t, "ADA@example.com"),
//			mustEmail(t, "grace@example.com"),
//		}
//
//		domaintest.CheckReflexive(t, vals...)
//		domaintest.CheckEqualHashLaw(t, vals...)
//		domaintest.CheckOrderingLaws(t, vals...)
//	}
//
// Include the values most likely to disagree: both spellings of a
// case-insensitive pair, the same decimal at two scales, a zero value next to
// an explicitly constructed empty one.
//
// # Test-Data Builder
//
// Build copies a prototype and applies mutations in order, so a test states
// only what it changes:
//
//	func validOrder() Order {
//		return Order{ID: domain.NewStringID("o-1"), Qty: domain.NewNumber(1)}
//	}
//
//	rush := domaintest.Build(validOrder(), func(o *Order) {
//		o.Rush = true
//	})
//
// The copy is shallow: mutate shared reference fields inside a mutation only
// when the prototype is not reused across tests.
//
// # Pointer Helpers
//
// Ptr takes the address of a literal, which the FromPtr constructors need:
//
//	txt, err := domain.TextFromPtr(domaintest.Ptr("ada"))
package domaintest
