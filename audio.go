package nodekit

import (
	"context"
	"io"
)

// TranscriptionRequest carries one speech-to-text call. Audio is streamed
// from the reader; Filename tells the API which container format to expect.
type TranscriptionRequest struct {
	Audio       io.Reader
	Filename    string
	Model       string   // empty = transcriber default
	Language    string   // ISO-639-1 hint, optional
	Prompt      string   // optional context to guide the model
	Temperature *float64 // nil = transcriber default
	Timestamps  bool     // request per-segment timestamps
}

// TranscriptSegment is one timed slice of a transcript.
type TranscriptSegment struct {
	ID    int     `json:"id"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Transcript is the text of one transcribed audio file. Language, Duration,
// and Segments are populated only when the request asked for timestamps.
type Transcript struct {
	Text     string              `json:"text"`
	Language string              `json:"language,omitempty"`
	Duration float64             `json:"duration,omitempty"`
	Segments []TranscriptSegment `json:"segments,omitempty"`
}

// Transcriber is a strategy interface for speech-to-text backends.
type Transcriber interface {
	Transcribe(ctx context.Context, req TranscriptionRequest) (*Transcript, error)
}
