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

func TestCrawler_Crawl(t *testing.T) {
	t.Parallel()
	t.Run("delegates to CrawlFn", func(t *testing.T) {
		t.Parallel()
		want := []nodekit.CrawledPage{{URL: "https://example.com", Content: "# Home"}}
		c := mock.Crawler{
			CrawlFn: func(ctx context.Context, req nodekit.CrawlRequest) ([]nodekit.CrawledPage, error) {
				assert.Equal(t, "https://example.com", req.URL)
				assert.Equal(t, 5, req.Limit)
				return want, nil
			},
		}
		got, err := c.Crawl(context.Background(), nodekit.CrawlRequest{URL: "https://example.com", Limit: 5})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("crawl failed")
		c := mock.Crawler{
			CrawlFn: func(ctx context.Context, req nodekit.CrawlRequest) ([]nodekit.CrawledPage, error) {
				return nil, wantErr
			},
		}
		_, err := c.Crawl(context.Background(), nodekit.CrawlRequest{})
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("panics when CrawlFn not set", func(t *testing.T) {
		t.Parallel()
		c := mock.Crawler{}
		assert.Panics(t, func() {
			_, _ = c.Crawl(context.Background(), nodekit.CrawlRequest{})
		})
	})
}
