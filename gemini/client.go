package gemini

import (
	"context"
	"fmt"

	"github.com/nodekit/nodekit"
	"google.golang.org/genai"
)

// Interface compliance check.
var _ nodekit.ImageGenerator = (*Client)(nil)

// Client implements [nodekit.ImageGenerator] for the Google Imagen API.
type Client struct {
	client *genai.Client
	model  string
}

// Option configures a [Client].
type Option func(*Client)

// WithModel sets the model ID. Default is imagen-3.0-generate-002.
func WithModel(model string) Option {
	return func(c *Client) { c.model = model }
}

// New creates a new Imagen [Client] with the given API key and options.
func New(ctx context.Context, apiKey string, opts ...Option) (*Client, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	c := &Client{
		client: gc,
		model:  defaultModel,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// GenerateImage renders one image from a text prompt via the Imagen API.
// The result always carries inline bytes; req.ResponseFormat and req.Quality
// have no Imagen equivalent and are ignored.
func (c *Client) GenerateImage(ctx context.Context, req nodekit.ImageRequest) (*nodekit.GeneratedImage, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	config := &genai.GenerateImagesConfig{
		NumberOfImages: 1,
	}
	if ratio := AspectRatio(req.Size); ratio != "" {
		config.AspectRatio = ratio
	}

	resp, err := c.client.Models.GenerateImages(ctx, model, req.Prompt, config)
	if err != nil {
		return nil, fmt.Errorf("gemini: %w", err)
	}
	if len(resp.GeneratedImages) == 0 {
		return nil, fmt.Errorf("gemini: no image generated")
	}
	return ConvertImage(resp.GeneratedImages[0])
}

// AspectRatio maps a WxH size to the matching Imagen aspect ratio. Unknown
// sizes map to the empty string, leaving the backend default in place.
// Exported for testing.
func AspectRatio(size string) string {
	switch size {
	case "1024x1024":
		return "1:1"
	case "1792x1024":
		return "16:9"
	case "1024x1792":
		return "9:16"
	default:
		return ""
	}
}

// ConvertImage maps one Imagen result to the generator result. Filtered
// results carry no image payload and surface as errors.
// Exported for testing.
func ConvertImage(g *genai.GeneratedImage) (*nodekit.GeneratedImage, error) {
	if g.Image == nil {
		if g.RAIFilteredReason != "" {
			return nil, fmt.Errorf("gemini: image filtered: %s", g.RAIFilteredReason)
		}
		return nil, fmt.Errorf("gemini: result contained no image")
	}
	return &nodekit.GeneratedImage{
		URL:           g.Image.GCSURI,
		Data:          g.Image.ImageBytes,
		MimeType:      g.Image.MIMEType,
		RevisedPrompt: g.EnhancedPrompt,
	}, nil
}
