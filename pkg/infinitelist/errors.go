package infinitelist

import "errors"

// Sentinel errors.
var (
	// ErrDomain is returned when two lists or a list and a span do not fit
	// together: mismatched directions, overlapping fill regions or spans that
	// cannot be read as the requested shape.
	ErrDomain = errors.New("domain mismatch")

	// ErrOutOfBounds is returned when an index lies outside the domain of a
	// directional list.
	ErrOutOfBounds = errors.New("index out of bounds")

	// ErrUnsupportedStep is returned when an assignment requests a step other than 1.
	ErrUnsupportedStep = errors.New("unsupported slice step")
)
