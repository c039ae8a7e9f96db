package nodekit

import "context"

// ImageRequest carries the parameters of one image generation call.
// The generator uses its own defaults when fields are empty.
type ImageRequest struct {
	Prompt         string
	Model          string // generator-specific; empty = generator default
	Size           string // e.g. "1024x1024"
	Quality        string // "standard" or "hd"
	ResponseFormat string // "url" or "b64_json"; SDK generators always return bytes
}

// GeneratedImage references one generated image: a hosted URL, inline bytes,
// or both, depending on the generator and the requested response format.
type GeneratedImage struct {
	URL           string `json:"url,omitempty"`
	Data          []byte `json:"data,omitempty"`
	MimeType      string `json:"mime_type,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// ImageGenerator is a strategy interface for text-to-image backends.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req ImageRequest) (*GeneratedImage, error)
}
