package nodekit

import "context"

// PDFPage is the extracted text of one page. Number is 1-based and
// pages are returned in document order.
type PDFPage struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
}

// PageExtractor extracts per-page text from a PDF file on disk.
// password unlocks encrypted documents and is ignored otherwise.
type PageExtractor interface {
	ExtractPages(ctx context.Context, path, password string) ([]PDFPage, error)
}
