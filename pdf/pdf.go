// Package pdf implements [nodekit.PageExtractor] with the ledongthuc/pdf
// parser.
//
// Extraction walks the document page by page so one unreadable page costs
// only its own text, never the rest of the document.
package pdf

import (
	"context"
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
	"github.com/nodekit/nodekit"
	"go.uber.org/zap"
)

// Interface compliance check.
var _ nodekit.PageExtractor = (*Extractor)(nil)

// Extractor reads per-page text from PDF files on disk.
type Extractor struct {
	logger *zap.Logger
}

// Option configures an [Extractor].
type Option func(*Extractor)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) { e.logger = l }
}

// New creates a new [Extractor].
func New(opts ...Option) *Extractor {
	e := &Extractor{logger: zap.NewNop()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// ExtractPages returns the text of every page in document order, one entry
// per page. password unlocks encrypted documents and is ignored otherwise.
// A page whose content cannot be decoded yields an empty Text and a log
// entry; the page count always matches the document.
func (e *Extractor) ExtractPages(ctx context.Context, path, password string) ([]nodekit.PDFPage, error) {
	f, r, err := open(path, password)
	if err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]nodekit.PDFPage, 0, total)
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p := r.Page(i)
		if p.V.IsNull() {
			e.logger.Warn("page unreadable", zap.String("path", path), zap.Int("page", i))
			pages = append(pages, nodekit.PDFPage{Number: i})
			continue
		}
		text, err := safePlainText(p)
		if err != nil {
			e.logger.Warn("page text extraction failed",
				zap.String("path", path),
				zap.Int("page", i),
				zap.Error(err))
			pages = append(pages, nodekit.PDFPage{Number: i})
			continue
		}
		pages = append(pages, nodekit.PDFPage{Number: i, Text: text})
	}
	return pages, nil
}

// open prepares a reader for path. The password callback hands the password
// over exactly once: the parser keeps asking until the callback gives up
// with an empty string, and answering forever would never terminate on a
// wrong password.
func open(path, password string) (*os.File, *pdf.Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	attempted := false
	pw := func() string {
		if attempted || password == "" {
			return ""
		}
		attempted = true
		return password
	}

	r, err := pdf.NewReaderEncrypted(f, fi.Size(), pw)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return f, r, nil
}

// safePlainText extracts a page's text. The underlying parser panics on
// malformed content streams, so the call is fenced with recover.
func safePlainText(p pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed page content: %v", r)
		}
	}()
	return p.GetPlainText(nil)
}
