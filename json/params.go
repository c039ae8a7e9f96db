package json

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nodekit/nodekit"
)

// UnmarshalParams parses a parameter file: one JSON object mapping parameter
// names to values.
func UnmarshalParams(data []byte) (nodekit.Params, error) {
	var p map[string]any
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal params: %w", err)
	}
	return p, nil
}

// LoadParams reads a parameter file from disk.
func LoadParams(path string) (nodekit.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalParams(data)
}
