package mock

import (
	"context"

	"github.com/nodekit/nodekit"
)

// Interface compliance check.
var _ nodekit.Transcriber = (*Transcriber)(nil)

// Transcriber is a test double for nodekit.Transcriber.
// Set TranscribeFn before calling Transcribe.
type Transcriber struct {
	TranscribeFn func(ctx context.Context, req nodekit.TranscriptionRequest) (*nodekit.Transcript, error)
}

// Transcribe delegates to TranscribeFn.
func (tr *Transcriber) Transcribe(ctx context.Context, req nodekit.TranscriptionRequest) (*nodekit.Transcript, error) {
	return tr.TranscribeFn(ctx, req)
}
