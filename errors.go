package nodekit

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates invocation parameters failed validation
	// before any external call was attempted.
	ErrValidation = errors.New("validation error")

	// ErrComponentNotFound indicates the requested component is not registered.
	ErrComponentNotFound = errors.New("component not found")
)
