// Package mock provides test doubles for nodekit interfaces using function fields.
package mock

import (
	"context"

	"github.com/nodekit/nodekit"
)

// Interface compliance check.
var _ nodekit.Component = (*Component)(nil)

// Component is a test double for nodekit.Component.
// Set the function fields for the methods you need.
type Component struct {
	MetaFn func() nodekit.Meta
	CallFn func(ctx context.Context, params nodekit.Params) (any, error)
}

// Meta delegates to MetaFn.
func (c *Component) Meta() nodekit.Meta {
	return c.MetaFn()
}

// Call delegates to CallFn.
func (c *Component) Call(ctx context.Context, params nodekit.Params) (any, error) {
	return c.CallFn(ctx, params)
}
