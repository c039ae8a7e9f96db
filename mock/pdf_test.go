package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nodekit/nodekit"
	"github.com/nodekit/nodekit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageExtractor_ExtractPages(t *testing.T) {
	t.Parallel()
	t.Run("delegates to ExtractPagesFn", func(t *testing.T) {
		t.Parallel()
		want := []nodekit.PDFPage{{Number: 1, Text: "page one"}}
		e := mock.PageExtractor{
			ExtractPagesFn: func(ctx context.Context, path, password string) ([]nodekit.PDFPage, error) {
				assert.Equal(t, "doc.pdf", path)
				assert.Equal(t, "secret", password)
				return want, nil
			},
		}
		got, err := e.ExtractPages(context.Background(), "doc.pdf", "secret")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("open failed")
		e := mock.PageExtractor{
			ExtractPagesFn: func(ctx context.Context, path, password string) ([]nodekit.PDFPage, error) {
				return nil, wantErr
			},
		}
		_, err := e.ExtractPages(context.Background(), "doc.pdf", "")
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("panics when ExtractPagesFn not set", func(t *testing.T) {
		t.Parallel()
		e := mock.PageExtractor{}
		assert.Panics(t, func() {
			_, _ = e.ExtractPages(context.Background(), "doc.pdf", "")
		})
	})
}
