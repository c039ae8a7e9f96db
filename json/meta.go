package json

import (
	"encoding/json"

	"github.com/nodekit/nodekit"
)

// metaDTO is the JSON representation of a component's Meta.
type metaDTO struct {
	Name        string      `json:"name"`
	DisplayName string      `json:"display_name"`
	Description string      `json:"description,omitempty"`
	Inputs      []inputDTO  `json:"inputs"`
	Outputs     []outputDTO `json:"outputs"`
}

// inputDTO keeps Default as a pointer so a declared false or zero default
// still serializes, while an undeclared one is omitted.
type inputDTO struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name,omitempty"`
	Info        string   `json:"info,omitempty"`
	Type        string   `json:"type"`
	Required    bool     `json:"required,omitempty"`
	Default     *any     `json:"default,omitempty"`
	Options     []string `json:"options,omitempty"`
}

type outputDTO struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Type        string `json:"type"`
}

// MarshalMetas serializes component metadata for a host's catalog listing.
func MarshalMetas(metas []nodekit.Meta) ([]byte, error) {
	dtos := make([]metaDTO, len(metas))
	for i, m := range metas {
		dtos[i] = marshalMeta(m)
	}
	return json.MarshalIndent(dtos, "", "  ")
}

func marshalMeta(m nodekit.Meta) metaDTO {
	dto := metaDTO{
		Name:        m.Name,
		DisplayName: m.DisplayName,
		Description: m.Description,
		Inputs:      make([]inputDTO, len(m.Inputs)),
		Outputs:     make([]outputDTO, len(m.Outputs)),
	}
	for i, in := range m.Inputs {
		var def *any
		if in.Default != nil {
			d := in.Default
			def = &d
		}
		dto.Inputs[i] = inputDTO{
			Name:        in.Name,
			DisplayName: in.DisplayName,
			Info:        in.Info,
			Type:        string(in.Type),
			Required:    in.Required,
			Default:     def,
			Options:     in.Options,
		}
	}
	for i, out := range m.Outputs {
		dto.Outputs[i] = outputDTO{
			Name:        out.Name,
			DisplayName: out.DisplayName,
			Type:        out.Type,
		}
	}
	return dto
}
