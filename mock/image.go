package mock

import (
	"context"

	"github.com/nodekit/nodekit"
)

// Interface compliance check.
var _ nodekit.ImageGenerator = (*ImageGenerator)(nil)

// ImageGenerator is a test double for nodekit.ImageGenerator.
// Set GenerateImageFn before calling GenerateImage.
type ImageGenerator struct {
	GenerateImageFn func(ctx context.Context, req nodekit.ImageRequest) (*nodekit.GeneratedImage, error)
}

// GenerateImage delegates to GenerateImageFn.
func (g *ImageGenerator) GenerateImage(ctx context.Context, req nodekit.ImageRequest) (*nodekit.GeneratedImage, error) {
	return g.GenerateImageFn(ctx, req)
}
