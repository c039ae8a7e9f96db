package nodekit

import "context"

// CrawlRequest describes one crawl rooted at URL. Limit caps the number of
// pages returned; MaxDepth caps the link distance from the root.
type CrawlRequest struct {
	URL      string
	Limit    int // 0 = crawler default
	MaxDepth int // 0 = crawler default
}

// CrawledPage is one fetched page: its URL and the extracted content.
type CrawledPage struct {
	URL        string `json:"url"`
	Title      string `json:"title,omitempty"`
	Content    string `json:"content"`
	StatusCode int    `json:"status_code,omitempty"`
}

// Crawler is the interface to a remote crawl service. One Crawl call may
// cover many pages; fetching, rendering, and any parallelism belong entirely
// to the service.
type Crawler interface {
	Crawl(ctx context.Context, req CrawlRequest) ([]CrawledPage, error)
}
