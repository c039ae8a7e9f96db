package nodekit

// Params is one invocation's parameter set, keyed by Input.Name. Values are
// the plain types hosts produce from user configuration: string, bool, and
// numeric kinds (JSON-sourced numbers arrive as float64).
type Params map[string]any

// Clone returns a shallow copy of p. A nil receiver yields an empty map.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// ApplyDefaults returns a copy of p with declared defaults filled in for
// absent inputs. A nil value counts as absent, matching ValidateParams.
// p itself is not modified.
func (m Meta) ApplyDefaults(p Params) Params {
	out := p.Clone()
	for _, in := range m.Inputs {
		if v, ok := out[in.Name]; (!ok || v == nil) && in.Default != nil {
			out[in.Name] = in.Default
		}
	}
	return out
}
