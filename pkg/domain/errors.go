package domain

import "github.com/pkg/errors"

// Wrapped-value errors. Equality, hashing, and the comparator entry points
// never return errors; these mark invalid construction inputs and unsupported
// dynamic capability queries. Match with errors.Is.
var (
	// ErrNilValue is returned when a non-identity wrapped value is built from
	// a nil underlying value, including a JSON or YAML null. Identity kinds
	// normalize nil to their default instead.
	ErrNilValue = errors.New("nil underlying value")

	// ErrUnsupported is returned when a dynamic capability query asks a type
	// for something it does not declare: case sensitivity on a non-string
	// kind, or ordering on a kind without a total order.
	ErrUnsupported = errors.New("unsupported operation")

	// ErrTypeMismatch is returned when a dynamic comparison receives operands
	// of two different concrete types.
	ErrTypeMismatch = errors.New("mismatched operand types")
)
