package builtin

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nodekit/nodekit"
)

// Interface compliance check.
var _ nodekit.Component = (*AudioTranscript)(nil)

// AudioTranscript transcribes a local audio file to text.
type AudioTranscript struct {
	transcriber nodekit.Transcriber
}

// NewAudioTranscript creates the audio_transcript component backed by t.
func NewAudioTranscript(t nodekit.Transcriber) *AudioTranscript {
	return &AudioTranscript{transcriber: t}
}

type audioArgs struct {
	AudioFile   string   `mapstructure:"audio_file"`
	Model       string   `mapstructure:"model"`
	Language    string   `mapstructure:"language"`
	Prompt      string   `mapstructure:"prompt"`
	Temperature *float64 `mapstructure:"temperature"`
	Timestamps  bool     `mapstructure:"timestamps"`
}

// Meta declares the component's parameter and output interface.
func (c *AudioTranscript) Meta() nodekit.Meta {
	return nodekit.Meta{
		Name:        "audio_transcript",
		DisplayName: "Audio Transcript",
		Description: "Transcribe an audio file to text.",
		Inputs: []nodekit.Input{
			{
				Name:        "audio_file",
				DisplayName: "Audio File",
				Info:        "Path to the audio file to transcribe.",
				Type:        nodekit.TypeFile,
				Required:    true,
			},
			{
				Name:        "model",
				DisplayName: "Model",
				Type:        nodekit.TypeString,
				Default:     "whisper-1",
			},
			{
				Name:        "language",
				DisplayName: "Language",
				Info:        "ISO-639-1 hint for the spoken language.",
				Type:        nodekit.TypeString,
			},
			{
				Name:        "prompt",
				DisplayName: "Prompt",
				Info:        "Optional context to guide the transcription.",
				Type:        nodekit.TypeString,
			},
			{
				Name:        "temperature",
				DisplayName: "Temperature",
				Type:        nodekit.TypeFloat,
				Default:     0.0,
			},
			{
				Name:        "timestamps",
				DisplayName: "Timestamps",
				Info:        "Return per-segment timestamps with the text.",
				Type:        nodekit.TypeBool,
				Default:     false,
			},
		},
		Outputs: []nodekit.Output{
			{Name: "transcript", DisplayName: "Transcript", Type: "transcript"},
		},
	}
}

// Call streams the audio file to the transcriber. An unreadable file is a
// validation failure; the external call is never made.
func (c *AudioTranscript) Call(ctx context.Context, params nodekit.Params) (any, error) {
	var args audioArgs
	if err := decode(params, &args); err != nil {
		return nil, err
	}

	f, err := os.Open(args.AudioFile)
	if err != nil {
		return nil, fmt.Errorf("audio_file: %v: %w", err, nodekit.ErrValidation)
	}
	defer f.Close()
	if fi, err := f.Stat(); err == nil && fi.IsDir() {
		return nil, fmt.Errorf("audio_file %s is a directory: %w", args.AudioFile, nodekit.ErrValidation)
	}

	transcript, err := c.transcriber.Transcribe(ctx, nodekit.TranscriptionRequest{
		Audio:       f,
		Filename:    filepath.Base(args.AudioFile),
		Model:       args.Model,
		Language:    args.Language,
		Prompt:      args.Prompt,
		Temperature: args.Temperature,
		Timestamps:  args.Timestamps,
	})
	if err != nil {
		return nil, err
	}
	return transcript, nil
}
