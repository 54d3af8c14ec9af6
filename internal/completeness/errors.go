package completeness

import "errors"

var (
	// ErrUnsupportedExemption is returned when the directive arguments are
	// neither a single scalar nor a single array, or do not parse.
	ErrUnsupportedExemption = errors.New("unsupported exemption arguments")

	// ErrMalformedExemption is returned when an exempted value is not a string.
	ErrMalformedExemption = errors.New("malformed exemption")
)
