package query

import "errors"

// Error kinds a caller can distinguish via errors.Is.
var (
	ErrInvalidInput              = errors.New("pql: invalid input")
	ErrUnknownName               = errors.New("pql: unknown name")
	ErrTypeMismatch              = errors.New("pql: type mismatch")
	ErrUnsupported               = errors.New("pql: unsupported operation")
	ErrInternalInvariantViolated = errors.New("pql: internal invariant violated")
)
