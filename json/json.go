// Package json implements the host-facing JSON wire format: the invocation
// result envelope, component metadata listings, and parameter files.
package json

import (
	"encoding/json"

	"github.com/nodekit/nodekit"
)

// envelope is the wire format for one invocation result. Exactly one of
// payload and failure is present.
type envelope struct {
	OK      bool        `json:"ok"`
	Payload any         `json:"payload,omitempty"`
	Failure *failureDTO `json:"failure,omitempty"`
}

type failureDTO struct {
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

// MarshalResult serializes a Result to the envelope format.
func MarshalResult(r nodekit.Result) ([]byte, error) {
	env := envelope{OK: r.OK, Payload: r.Payload}
	if r.Failure != nil {
		env.Failure = &failureDTO{Kind: string(r.Failure.Kind), Reason: r.Failure.Reason}
	}
	return json.MarshalIndent(env, "", "  ")
}
