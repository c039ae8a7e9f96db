package builtin

import (
	"context"

	"github.com/nodekit/nodekit"
)

// Interface compliance check.
var _ nodekit.Component = (*ImageGeneration)(nil)

// ImageGeneration turns a text prompt into one generated image.
type ImageGeneration struct {
	generator nodekit.ImageGenerator
}

// NewImageGeneration creates the image_generation component backed by g.
func NewImageGeneration(g nodekit.ImageGenerator) *ImageGeneration {
	return &ImageGeneration{generator: g}
}

type imageArgs struct {
	Prompt         string `mapstructure:"prompt"`
	Model          string `mapstructure:"model"`
	Size           string `mapstructure:"size"`
	Quality        string `mapstructure:"quality"`
	ResponseFormat string `mapstructure:"response_format"`
}

// Meta declares the component's parameter and output interface.
func (c *ImageGeneration) Meta() nodekit.Meta {
	return nodekit.Meta{
		Name:        "image_generation",
		DisplayName: "Image Generation",
		Description: "Generate an image from a text prompt.",
		Inputs: []nodekit.Input{
			{
				Name:        "prompt",
				DisplayName: "Prompt",
				Info:        "Text description of the image to generate.",
				Type:        nodekit.TypeString,
				Required:    true,
			},
			{
				Name:        "model",
				DisplayName: "Model",
				Info:        "Generation model. Empty uses the backend default.",
				Type:        nodekit.TypeString,
			},
			{
				Name:        "size",
				DisplayName: "Size",
				Type:        nodekit.TypeChoice,
				Default:     "1024x1024",
				Options:     []string{"1024x1024", "1792x1024", "1024x1792"},
			},
			{
				Name:        "quality",
				DisplayName: "Quality",
				Type:        nodekit.TypeChoice,
				Default:     "standard",
				Options:     []string{"standard", "hd"},
			},
			{
				Name:        "response_format",
				DisplayName: "Response Format",
				Info:        "url returns a hosted link, b64_json inline bytes. SDK backends always return bytes.",
				Type:        nodekit.TypeChoice,
				Default:     "url",
				Options:     []string{"url", "b64_json"},
			},
		},
		Outputs: []nodekit.Output{
			{Name: "image", DisplayName: "Image", Type: "image"},
		},
	}
}

// Call makes a single generation call and returns the resulting image
// reference.
func (c *ImageGeneration) Call(ctx context.Context, params nodekit.Params) (any, error) {
	var args imageArgs
	if err := decode(params, &args); err != nil {
		return nil, err
	}
	img, err := c.generator.GenerateImage(ctx, nodekit.ImageRequest{
		Prompt:         args.Prompt,
		Model:          args.Model,
		Size:           args.Size,
		Quality:        args.Quality,
		ResponseFormat: args.ResponseFormat,
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}
