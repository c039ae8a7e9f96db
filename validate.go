package nodekit

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// ValidateParams checks p against the component's declared inputs: required
// parameters must be present and non-empty, and present values must match
// their declared type. Keys not declared in Inputs are ignored. Callers
// normally apply declared defaults first (see ApplyDefaults); Run does both.
func (m Meta) ValidateParams(p Params) error {
	for _, in := range m.Inputs {
		v, ok := p[in.Name]
		if !ok || v == nil {
			if in.Required {
				return fmt.Errorf("%s is required: %w", in.Name, ErrValidation)
			}
			continue
		}
		if err := checkValue(in, v); err != nil {
			return err
		}
	}
	return nil
}

func checkValue(in Input, v any) error {
	switch in.Type {
	case TypeString, TypeSecret, TypeFile:
		s, ok := v.(string)
		if !ok {
			return wrongType(in, "a string", v)
		}
		if in.Required && strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required: %w", in.Name, ErrValidation)
		}

	case TypeChoice:
		s, ok := v.(string)
		if !ok {
			return wrongType(in, "a string", v)
		}
		if !slices.Contains(in.Options, s) {
			return fmt.Errorf("%s must be one of %s, got %q: %w",
				in.Name, strings.Join(in.Options, "|"), s, ErrValidation)
		}

	case TypeInt:
		f, ok := numeric(v)
		if !ok {
			return wrongType(in, "an integer", v)
		}
		if f != math.Trunc(f) {
			return fmt.Errorf("%s must be an integer, got %g: %w", in.Name, f, ErrValidation)
		}

	case TypeFloat:
		if _, ok := numeric(v); !ok {
			return wrongType(in, "a number", v)
		}

	case TypeBool:
		if _, ok := v.(bool); !ok {
			return wrongType(in, "a boolean", v)
		}

	default:
		return fmt.Errorf("%s has unknown input type %q: %w", in.Name, in.Type, ErrValidation)
	}
	return nil
}

// numeric reports v as a float64 for any numeric kind a host may supply.
// JSON-decoded parameters arrive as float64; flag-built ones as int.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func wrongType(in Input, want string, got any) error {
	return fmt.Errorf("%s must be %s, got %T: %w", in.Name, want, got, ErrValidation)
}
