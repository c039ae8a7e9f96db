package builtin_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nodekit/nodekit"
	"github.com/nodekit/nodekit/builtin"
	"github.com/nodekit/nodekit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFPages_Call(t *testing.T) {
	t.Parallel()

	t.Run("passes path and password to the extractor", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4"), 0o644))

		var gotPath, gotPassword string
		want := []nodekit.PDFPage{{Number: 1, Text: "first"}, {Number: 2, Text: "second"}}
		e := &mock.PageExtractor{
			ExtractPagesFn: func(ctx context.Context, p, password string) ([]nodekit.PDFPage, error) {
				gotPath, gotPassword = p, password
				return want, nil
			},
		}

		c := builtin.NewPDFPages(e)
		payload, err := c.Call(context.Background(), nodekit.Params{
			"pdf_file": path,
			"password": "s3cret",
		})
		require.NoError(t, err)

		assert.Equal(t, path, gotPath)
		assert.Equal(t, "s3cret", gotPassword)
		assert.Equal(t, want, payload)
	})

	t.Run("missing file never reaches the extractor", func(t *testing.T) {
		t.Parallel()

		calls := 0
		e := &mock.PageExtractor{
			ExtractPagesFn: func(ctx context.Context, p, password string) ([]nodekit.PDFPage, error) {
				calls++
				return nil, nil
			},
		}

		c := builtin.NewPDFPages(e)
		_, err := c.Call(context.Background(), nodekit.Params{
			"pdf_file": filepath.Join(t.TempDir(), "absent.pdf"),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, nodekit.ErrValidation))
		assert.Equal(t, 0, calls)
	})

	t.Run("directory is a validation failure", func(t *testing.T) {
		t.Parallel()

		c := builtin.NewPDFPages(&mock.PageExtractor{})
		_, err := c.Call(context.Background(), nodekit.Params{"pdf_file": t.TempDir()})
		require.Error(t, err)
		assert.True(t, errors.Is(err, nodekit.ErrValidation))
	})

	t.Run("returns the extractor error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "doc.pdf")
		require.NoError(t, os.WriteFile(path, []byte("not a pdf"), 0o644))

		e := &mock.PageExtractor{
			ExtractPagesFn: func(ctx context.Context, p, password string) ([]nodekit.PDFPage, error) {
				return nil, errors.New("malformed PDF")
			},
		}

		c := builtin.NewPDFPages(e)
		_, err := c.Call(context.Background(), nodekit.Params{"pdf_file": path})
		require.Error(t, err)
		assert.False(t, errors.Is(err, nodekit.ErrValidation))
		assert.Contains(t, err.Error(), "malformed PDF")
	})
}
