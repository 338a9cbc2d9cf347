package parser

import "errors"

// Domain-specific errors for the parser package.
var (
	// ErrInvalidSettings is returned when the caller supplies an
	// unsupported date format, timezone or start of week. This is a
	// caller bug, not ambiguous user input, so it fails the call.
	ErrInvalidSettings = errors.New("invalid parser settings")
)
