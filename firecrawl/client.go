package firecrawl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nodekit/nodekit"
	"go.uber.org/zap"
)

// Interface compliance check.
var _ nodekit.Crawler = (*Client)(nil)

// Client talks to the Firecrawl API.
type Client struct {
	apiKey       string
	baseURL      string
	httpClient   *http.Client
	pollInterval time.Duration
	logger       *zap.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithPollInterval sets the delay between status polls. Default is 2s.
func WithPollInterval(d time.Duration) Option {
	return func(c *Client) { c.pollInterval = d }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a new Firecrawl [Client] with the given API key and options.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:       apiKey,
		baseURL:      defaultBaseURL,
		httpClient:   http.DefaultClient,
		pollInterval: defaultPollInterval,
		logger:       zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Crawl starts a crawl rooted at req.URL and blocks until the job settles,
// returning every collected page as markdown. Cancel ctx to abandon the
// poll; the remote job keeps running.
func (c *Client) Crawl(ctx context.Context, req nodekit.CrawlRequest) ([]nodekit.CrawledPage, error) {
	id, err := c.startCrawl(ctx, req)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("crawl started", zap.String("id", id), zap.String("url", req.URL))

	for {
		status, err := c.crawlStatus(ctx, id)
		if err != nil {
			return nil, err
		}

		switch status.Status {
		case statusCompleted:
			return c.collectPages(ctx, status)
		case statusFailed, statusCancelled:
			return nil, fmt.Errorf("firecrawl: crawl %s", status.Status)
		}

		c.logger.Debug("crawl in progress",
			zap.String("id", id),
			zap.Int("completed", status.Completed),
			zap.Int("total", status.Total))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}
	}
}

func (c *Client) startCrawl(ctx context.Context, req nodekit.CrawlRequest) (string, error) {
	body, err := json.Marshal(apiCrawlRequest{
		URL:           req.URL,
		Limit:         req.Limit,
		MaxDepth:      req.MaxDepth,
		ScrapeOptions: &apiScrapeOptions{Formats: []string{"markdown"}},
	})
	if err != nil {
		return "", fmt.Errorf("firecrawl: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+crawlPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("firecrawl: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("firecrawl: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", parseHTTPError(resp)
	}

	var start apiCrawlStart
	if err := json.NewDecoder(resp.Body).Decode(&start); err != nil {
		return "", fmt.Errorf("firecrawl: decoding crawl response: %w", err)
	}
	if !start.Success || start.ID == "" {
		return "", fmt.Errorf("firecrawl: crawl was not accepted")
	}
	return start.ID, nil
}

func (c *Client) crawlStatus(ctx context.Context, id string) (*apiCrawlStatus, error) {
	var status apiCrawlStatus
	if err := c.getJSON(ctx, c.baseURL+crawlPath+"/"+id, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// collectPages converts the settled status payload and follows pagination
// links until the page set is complete.
func (c *Client) collectPages(ctx context.Context, status *apiCrawlStatus) ([]nodekit.CrawledPage, error) {
	pages := convertDocuments(status.Data)
	next := status.Next
	for next != "" {
		var batch apiCrawlStatus
		if err := c.getJSON(ctx, next, &batch); err != nil {
			return nil, err
		}
		pages = append(pages, convertDocuments(batch.Data)...)
		next = batch.Next
	}
	return pages, nil
}

func convertDocuments(docs []apiDocument) []nodekit.CrawledPage {
	pages := make([]nodekit.CrawledPage, 0, len(docs))
	for _, d := range docs {
		pages = append(pages, nodekit.CrawledPage{
			URL:        d.Metadata.SourceURL,
			Title:      d.Metadata.Title,
			Content:    d.Markdown,
			StatusCode: d.Metadata.StatusCode,
		})
	}
	return pages
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("firecrawl: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("firecrawl: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return parseHTTPError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("firecrawl: decoding response: %w", err)
	}
	return nil
}

func parseHTTPError(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("firecrawl: HTTP %d (failed to read body: %w)", resp.StatusCode, err)
	}
	var apiErr apiErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil || apiErr.Error == "" {
		return fmt.Errorf("firecrawl: HTTP %d: %s", resp.StatusCode, string(body))
	}
	return fmt.Errorf("firecrawl: %s", apiErr.Error)
}
