package mock

import (
	"context"

	"github.com/nodekit/nodekit"
)

// Interface compliance check.
var _ nodekit.Crawler = (*Crawler)(nil)

// Crawler is a test double for nodekit.Crawler.
// Set CrawlFn before calling Crawl.
type Crawler struct {
	CrawlFn func(ctx context.Context, req nodekit.CrawlRequest) ([]nodekit.CrawledPage, error)
}

// Crawl delegates to CrawlFn.
func (c *Crawler) Crawl(ctx context.Context, req nodekit.CrawlRequest) ([]nodekit.CrawledPage, error) {
	return c.CrawlFn(ctx, req)
}
