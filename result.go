package nodekit

import "errors"

// FailureKind classifies a failed invocation.
type FailureKind string

const (
	// FailureValidation: a required input was missing or malformed;
	// no external call was made.
	FailureValidation FailureKind = "validation"

	// FailureCall: the external call was attempted and failed.
	FailureCall FailureKind = "call"
)

// Failure describes why an invocation failed. Reason is the human-readable
// message the host displays; it carries whatever the wrapped API or library
// reported.
type Failure struct {
	Kind   FailureKind
	Reason string
}

// Result is the outcome of one component invocation. Exactly one of Payload
// and Failure is meaningful: OK results carry the component's declared
// payload shape, failed results carry a Failure and a nil Payload. Results
// live for a single invocation and are never persisted.
type Result struct {
	OK      bool
	Payload any
	Failure *Failure
}

// Succeed wraps payload in an OK Result.
func Succeed(payload any) Result {
	return Result{OK: true, Payload: payload}
}

// Fail builds a failed Result from err. Errors wrapping ErrValidation or
// ErrComponentNotFound classify as validation failures (detected before any
// external call); everything else is a call failure.
func Fail(err error) Result {
	kind := FailureCall
	if errors.Is(err, ErrValidation) || errors.Is(err, ErrComponentNotFound) {
		kind = FailureValidation
	}
	return Result{Failure: &Failure{Kind: kind, Reason: err.Error()}}
}
