// Package nodekit defines the component contract for workflow-builder nodes:
// typed input declarations, invocation parameters, the result envelope, and
// the capability interfaces the bundled components call through.
//
// A component adapts host-supplied parameters to exactly one external call
// and maps the outcome back into the host's output contract. Hosts drive
// components through [Run] or a [Registry]; concrete implementations live in
// the builtin package, backed by the client packages (openai, gemini, places,
// firecrawl, pdf).
package nodekit

import "context"

// ParamType identifies the declared type of a component input.
type ParamType string

const (
	TypeString ParamType = "string"
	TypeInt    ParamType = "int"
	TypeFloat  ParamType = "float"
	TypeBool   ParamType = "bool"
	TypeSecret ParamType = "secret" // string; hosts mask the value
	TypeFile   ParamType = "file"   // string; path to a local file
	TypeChoice ParamType = "choice" // string; constrained to Options
)

// Input declares one user-configurable parameter of a component.
type Input struct {
	Name        string
	DisplayName string
	Info        string
	Type        ParamType
	Required    bool
	Default     any      // applied when the parameter is absent; nil = no default
	Options     []string // TypeChoice only
}

// Output declares one result slot of a component. The payload shape is fixed
// per component and does not vary at runtime.
type Output struct {
	Name        string
	DisplayName string
	Type        string // payload shape, e.g. "image", "places", "pages"
}

// Meta describes a component to the host: identity plus the declared
// input/output interface. Input order is the host's display order.
type Meta struct {
	Name        string
	DisplayName string
	Description string
	Inputs      []Input
	Outputs     []Output
}

// Component adapts host-supplied parameters to one external call.
// Implementations must be stateless and safe for concurrent use.
//
// Call receives parameters that have already been defaulted and validated
// against Meta. Errors wrapping ErrValidation report bad input detected
// before the external call; any other error is a call failure.
type Component interface {
	Meta() Meta
	Call(ctx context.Context, params Params) (any, error)
}
