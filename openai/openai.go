// Package openai implements [nodekit.ImageGenerator] and [nodekit.Transcriber]
// for the OpenAI Images and Audio APIs.
//
// Image generation posts JSON to the images endpoint; transcription uploads
// the audio as multipart form data. Both authenticate with a bearer token.
package openai

const (
	defaultBaseURL            = "https://api.openai.com"
	defaultImageModel         = "dall-e-3"
	defaultTranscriptionModel = "whisper-1"
	imagesPath                = "/v1/images/generations"
	transcriptionsPath        = "/v1/audio/transcriptions"
)

// apiImageRequest is the JSON body sent to the images endpoint.
type apiImageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size,omitempty"`
	Quality        string `json:"quality,omitempty"`
	ResponseFormat string `json:"response_format,omitempty"`
}

type apiImageResponse struct {
	Created int64          `json:"created"`
	Data    []apiImageData `json:"data"`
}

// apiImageData carries one generated image. URL and B64JSON are mutually
// exclusive, selected by the request's response_format.
type apiImageData struct {
	URL           string `json:"url,omitempty"`
	B64JSON       string `json:"b64_json,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

// apiTranscription is the JSON body returned by the transcriptions endpoint.
// Language, Duration, and Segments appear only in verbose_json responses.
type apiTranscription struct {
	Task     string       `json:"task,omitempty"`
	Language string       `json:"language,omitempty"`
	Duration float64      `json:"duration,omitempty"`
	Text     string       `json:"text"`
	Segments []apiSegment `json:"segments,omitempty"`
}

type apiSegment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// apiErrorResponse is the JSON body returned on non-200 HTTP responses.
type apiErrorResponse struct {
	Error apiErrorDetail `json:"error"`
}

type apiErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    any    `json:"code,omitempty"` // string or null per the API schema
}
