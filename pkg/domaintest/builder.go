package domaintest

// Build returns a copy of proto with each mutation applied in order. The
// prototype itself is never modified, so a shared "valid object" function
// stays valid across tests:
//
//	func validOrder() Order { ... }
//
//	cancelled := domaintest.Build(validOrder(), func(o *Order) {
//		o.Status = StatusCancelled
//	})
//
// The copy is shallow; reference fields still point into the prototype.
func Build[T any](proto T, muts ...func(*T)) T {
	v := proto
	for _, m := range muts {
		m(&v)
	}
	return v
}
