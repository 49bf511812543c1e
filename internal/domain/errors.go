package domain

import "errors"

// Error taxonomy. Wrap these with fmt.Errorf("%w: ...") and match with
// errors.Is at the transport boundary.
var (
	// ErrInvalidArgument marks missing or malformed required input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound marks a referenced session that does not exist or is
	// not owned by the caller.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable marks a failure of the external generation provider.
	ErrUnavailable = errors.New("generation service unavailable")
)
