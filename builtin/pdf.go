package builtin

import (
	"context"
	"fmt"
	"os"

	"github.com/nodekit/nodekit"
)

// Interface compliance check.
var _ nodekit.Component = (*PDFPages)(nil)

// PDFPages extracts per-page text from a local PDF document.
type PDFPages struct {
	extractor nodekit.PageExtractor
}

// NewPDFPages creates the pdf_pages component backed by e.
func NewPDFPages(e nodekit.PageExtractor) *PDFPages {
	return &PDFPages{extractor: e}
}

type pdfArgs struct {
	PDFFile  string `mapstructure:"pdf_file"`
	Password string `mapstructure:"password"`
}

// Meta declares the component's parameter and output interface.
func (c *PDFPages) Meta() nodekit.Meta {
	return nodekit.Meta{
		Name:        "pdf_pages",
		DisplayName: "PDF Pages",
		Description: "Extract the text of every page in a PDF document.",
		Inputs: []nodekit.Input{
			{
				Name:        "pdf_file",
				DisplayName: "PDF File",
				Info:        "Path to the PDF document.",
				Type:        nodekit.TypeFile,
				Required:    true,
			},
			{
				Name:        "password",
				DisplayName: "Password",
				Info:        "Password for encrypted documents.",
				Type:        nodekit.TypeSecret,
			},
		},
		Outputs: []nodekit.Output{
			{Name: "pages", DisplayName: "Pages", Type: "pages"},
		},
	}
}

// Call extracts one entry per page. An unreadable file is a validation
// failure; extraction problems on an opened document are call failures.
func (c *PDFPages) Call(ctx context.Context, params nodekit.Params) (any, error) {
	var args pdfArgs
	if err := decode(params, &args); err != nil {
		return nil, err
	}

	f, err := os.Open(args.PDFFile)
	if err != nil {
		return nil, fmt.Errorf("pdf_file: %v: %w", err, nodekit.ErrValidation)
	}
	fi, statErr := f.Stat()
	f.Close()
	if statErr == nil && fi.IsDir() {
		return nil, fmt.Errorf("pdf_file %s is a directory: %w", args.PDFFile, nodekit.ErrValidation)
	}

	pages, err := c.extractor.ExtractPages(ctx, args.PDFFile, args.Password)
	if err != nil {
		return nil, err
	}
	return pages, nil
}
