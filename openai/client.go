package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"time"

	"github.com/nodekit/nodekit"
	"go.uber.org/zap"
)

// Interface compliance checks.
var (
	_ nodekit.ImageGenerator = (*Client)(nil)
	_ nodekit.Transcriber    = (*Client)(nil)
)

// Client talks to the OpenAI API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a new OpenAI [Client] with the given API key and options.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// GenerateImage renders one image from a text prompt via the images endpoint.
func (c *Client) GenerateImage(ctx context.Context, req nodekit.ImageRequest) (*nodekit.GeneratedImage, error) {
	model := req.Model
	if model == "" {
		model = defaultImageModel
	}
	format := req.ResponseFormat
	if format == "" {
		format = "url"
	}

	body, err := json.Marshal(apiImageRequest{
		Model:          model,
		Prompt:         req.Prompt,
		N:              1,
		Size:           req.Size,
		Quality:        req.Quality,
		ResponseFormat: format,
	})
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+imagesPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, parseHTTPError(resp)
	}

	var apiResp apiImageResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("openai: decoding images response: %w", err)
	}
	if len(apiResp.Data) == 0 {
		return nil, fmt.Errorf("openai: images response contained no data")
	}

	c.logger.Debug("image generated",
		zap.String("model", model),
		zap.Duration("elapsed", time.Since(start)))

	return convertImage(apiResp.Data[0])
}

// convertImage maps one images-endpoint datum to the generator result.
// The images endpoint always produces PNG.
func convertImage(d apiImageData) (*nodekit.GeneratedImage, error) {
	img := &nodekit.GeneratedImage{
		URL:           d.URL,
		RevisedPrompt: d.RevisedPrompt,
	}
	if d.B64JSON != "" {
		data, err := base64.StdEncoding.DecodeString(d.B64JSON)
		if err != nil {
			return nil, fmt.Errorf("openai: decoding b64_json image: %w", err)
		}
		img.Data = data
		img.MimeType = "image/png"
	}
	return img, nil
}

// Transcribe converts speech to text via the transcriptions endpoint. The
// audio is uploaded as multipart form data; req.Timestamps selects the
// verbose response with per-segment timing.
func (c *Client) Transcribe(ctx context.Context, req nodekit.TranscriptionRequest) (*nodekit.Transcript, error) {
	model := req.Model
	if model == "" {
		model = defaultTranscriptionModel
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", req.Filename)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if _, err := io.Copy(fw, req.Audio); err != nil {
		return nil, fmt.Errorf("openai: reading audio: %w", err)
	}
	if err := writeFormFields(mw, model, req); err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+transcriptionsPath, &body)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	httpReq.Header.Set("Content-Type", mw.FormDataContentType())
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, parseHTTPError(resp)
	}

	var apiResp apiTranscription
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("openai: decoding transcription response: %w", err)
	}

	c.logger.Debug("audio transcribed",
		zap.String("model", model),
		zap.Duration("elapsed", time.Since(start)))

	return convertTranscript(apiResp), nil
}

func writeFormFields(mw *multipart.Writer, model string, req nodekit.TranscriptionRequest) error {
	if err := mw.WriteField("model", model); err != nil {
		return err
	}
	format := "json"
	if req.Timestamps {
		format = "verbose_json"
	}
	if err := mw.WriteField("response_format", format); err != nil {
		return err
	}
	if req.Language != "" {
		if err := mw.WriteField("language", req.Language); err != nil {
			return err
		}
	}
	if req.Prompt != "" {
		if err := mw.WriteField("prompt", req.Prompt); err != nil {
			return err
		}
	}
	if req.Temperature != nil {
		v := strconv.FormatFloat(*req.Temperature, 'g', -1, 64)
		if err := mw.WriteField("temperature", v); err != nil {
			return err
		}
	}
	return nil
}

func convertTranscript(t apiTranscription) *nodekit.Transcript {
	out := &nodekit.Transcript{
		Text:     t.Text,
		Language: t.Language,
		Duration: t.Duration,
	}
	for _, s := range t.Segments {
		out.Segments = append(out.Segments, nodekit.TranscriptSegment{
			ID:    s.ID,
			Start: s.Start,
			End:   s.End,
			Text:  s.Text,
		})
	}
	return out
}

func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("openai: HTTP %d (failed to read body: %w)", resp.StatusCode, err)
	}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error.Message == "" {
		return fmt.Errorf("openai: HTTP %d: %s", resp.StatusCode, string(body))
	}
	return fmt.Errorf("openai: %s: %s", apiErr.Error.Type, apiErr.Error.Message)
}
