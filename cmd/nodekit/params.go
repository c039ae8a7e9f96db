package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/nodekit/nodekit"
	nodejson "github.com/nodekit/nodekit/json"
)

// paramFlags collects repeated -p key=value flags. Values stay strings until
// the target component's declared types are known.
type paramFlags struct {
	values map[string]string
}

func (p *paramFlags) String() string {
	pairs := make([]string, 0, len(p.values))
	for k, v := range p.values {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, " ")
}

func (p *paramFlags) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	if p.values == nil {
		p.values = make(map[string]string)
	}
	p.values[k] = v
	return nil
}

// resolveParams merges the parameter file with -p overrides. Flag values are
// converted to the types meta declares; file values arrive typed from JSON.
func resolveParams(meta nodekit.Meta, path string, flags map[string]string) (nodekit.Params, error) {
	params := nodekit.Params{}
	if path != "" {
		loaded, err := nodejson.LoadParams(path)
		if err != nil {
			return nil, err
		}
		if loaded != nil {
			params = loaded
		}
	}
	coerced, err := coerceParams(meta, flags)
	if err != nil {
		return nil, err
	}
	for k, v := range coerced {
		params[k] = v
	}
	return params, nil
}

// coerceParams converts raw flag strings per the declared input types.
// Undeclared keys pass through as strings.
func coerceParams(meta nodekit.Meta, raw map[string]string) (nodekit.Params, error) {
	types := make(map[string]nodekit.ParamType, len(meta.Inputs))
	for _, in := range meta.Inputs {
		types[in.Name] = in.Type
	}
	params := make(nodekit.Params, len(raw))
	for k, v := range raw {
		switch types[k] {
		case nodekit.TypeInt:
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: %q is not an integer", k, v)
			}
			params[k] = n
		case nodekit.TypeFloat:
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: %q is not a number", k, v)
			}
			params[k] = f
		case nodekit.TypeBool:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("parameter %s: %q is not a boolean", k, v)
			}
			params[k] = b
		default:
			params[k] = v
		}
	}
	return params, nil
}
