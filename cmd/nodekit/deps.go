package main

import (
	"context"
	"fmt"

	"github.com/nodekit/nodekit"
	"github.com/nodekit/nodekit/builtin"
	"github.com/nodekit/nodekit/firecrawl"
	"github.com/nodekit/nodekit/gemini"
	"github.com/nodekit/nodekit/openai"
	"github.com/nodekit/nodekit/pdf"
	"github.com/nodekit/nodekit/places"
	"go.uber.org/zap"
)

// config carries the credential and backend selections resolved from flags
// and environment, passed as values so env is only read in run.
type config struct {
	openaiKey    string
	geminiKey    string
	firecrawlKey string
	placesKey    string
	imageBackend string
}

// credentialHint names the environment variables a component needs, for
// error messages when it is not configured.
var credentialHint = map[string]string{
	"image_generation": "OPENAI_API_KEY or GEMINI_API_KEY",
	"audio_transcript": "OPENAI_API_KEY",
	"web_crawler":      "FIRECRAWL_API_KEY",
	"places_search":    "GOOGLE_PLACES_API_KEY",
}

// buildDeps constructs a client for every credential present. PDF extraction
// is local and always available.
func buildDeps(ctx context.Context, cfg config, logger *zap.Logger) (builtin.Deps, error) {
	d := builtin.Deps{
		PDF: pdf.New(pdf.WithLogger(logger)),
	}

	var openaiClient *openai.Client
	if cfg.openaiKey != "" {
		openaiClient = openai.New(cfg.openaiKey, openai.WithLogger(logger))
		d.Transcriber = openaiClient
	}

	images, err := imageGenerator(ctx, cfg, openaiClient)
	if err != nil {
		return builtin.Deps{}, err
	}
	d.Images = images

	if cfg.firecrawlKey != "" {
		d.Crawler = firecrawl.New(cfg.firecrawlKey, firecrawl.WithLogger(logger))
	}
	if cfg.placesKey != "" {
		d.Places = places.New(cfg.placesKey, places.WithLogger(logger))
	}
	return d, nil
}

// imageGenerator selects the image backend: the -image-backend flag wins,
// otherwise openai is preferred when both keys are present.
func imageGenerator(ctx context.Context, cfg config, openaiClient *openai.Client) (nodekit.ImageGenerator, error) {
	switch cfg.imageBackend {
	case "openai":
		if openaiClient == nil {
			return nil, fmt.Errorf("image backend openai: OPENAI_API_KEY not set")
		}
		return openaiClient, nil
	case "gemini":
		if cfg.geminiKey == "" {
			return nil, fmt.Errorf("image backend gemini: GEMINI_API_KEY not set")
		}
		return gemini.New(ctx, cfg.geminiKey)
	case "":
		if openaiClient != nil {
			return openaiClient, nil
		}
		if cfg.geminiKey != "" {
			return gemini.New(ctx, cfg.geminiKey)
		}
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown image backend %q: must be \"openai\" or \"gemini\"", cfg.imageBackend)
	}
}
