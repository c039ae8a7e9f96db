// Package gemini implements [nodekit.ImageGenerator] for the Google Imagen
// API.
//
// It wraps the google.golang.org/genai SDK, translating between nodekit's
// domain types and the Imagen request config. Imagen delivers image bytes
// inline; URL-based delivery is not available through this backend.
package gemini

const defaultModel = "imagen-3.0-generate-002"
