package mock

import (
	"context"

	"github.com/nodekit/nodekit"
)

// Interface compliance check.
var _ nodekit.PageExtractor = (*PageExtractor)(nil)

// PageExtractor is a test double for nodekit.PageExtractor.
// Set ExtractPagesFn before calling ExtractPages.
type PageExtractor struct {
	ExtractPagesFn func(ctx context.Context, path, password string) ([]nodekit.PDFPage, error)
}

// ExtractPages delegates to ExtractPagesFn.
func (e *PageExtractor) ExtractPages(ctx context.Context, path, password string) ([]nodekit.PDFPage, error) {
	return e.ExtractPagesFn(ctx, path, password)
}
