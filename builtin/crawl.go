package builtin

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/nodekit/nodekit"
	"github.com/nodekit/nodekit/goldmark"
)

// Interface compliance check.
var _ nodekit.Component = (*WebCrawler)(nil)

// maxCrawlLimit caps the page budget a single invocation may request.
const maxCrawlLimit = 100

// WebCrawler crawls a site through a remote crawl service and returns the
// extracted content of every visited page.
type WebCrawler struct {
	crawler nodekit.Crawler
}

// NewWebCrawler creates the web_crawler component backed by cr.
func NewWebCrawler(cr nodekit.Crawler) *WebCrawler {
	return &WebCrawler{crawler: cr}
}

type crawlArgs struct {
	URL          string `mapstructure:"url"`
	Limit        int    `mapstructure:"limit"`
	MaxDepth     int    `mapstructure:"max_depth"`
	IncludePaths string `mapstructure:"include_paths"`
	ExcludePaths string `mapstructure:"exclude_paths"`
	Format       string `mapstructure:"format"`
	MaxPageChars int    `mapstructure:"max_page_chars"`
}

// Meta declares the component's parameter and output interface.
func (c *WebCrawler) Meta() nodekit.Meta {
	return nodekit.Meta{
		Name:        "web_crawler",
		DisplayName: "Web Crawler",
		Description: "Crawl a website and return the content of each page.",
		Inputs: []nodekit.Input{
			{
				Name:        "url",
				DisplayName: "URL",
				Info:        "Root URL to start crawling from.",
				Type:        nodekit.TypeString,
				Required:    true,
			},
			{
				Name:        "limit",
				DisplayName: "Page Limit",
				Info:        "Maximum number of pages to crawl, capped at 100.",
				Type:        nodekit.TypeInt,
				Default:     10,
			},
			{
				Name:        "max_depth",
				DisplayName: "Max Depth",
				Info:        "Maximum link distance from the root URL.",
				Type:        nodekit.TypeInt,
				Default:     2,
			},
			{
				Name:        "include_paths",
				DisplayName: "Include Paths",
				Info:        "Space-separated glob patterns; keep only pages whose URL path matches, e.g. \"blog/** docs/**\".",
				Type:        nodekit.TypeString,
			},
			{
				Name:        "exclude_paths",
				DisplayName: "Exclude Paths",
				Info:        "Space-separated glob patterns; drop pages whose URL path matches.",
				Type:        nodekit.TypeString,
			},
			{
				Name:        "format",
				DisplayName: "Format",
				Info:        "markdown keeps the extracted markup, text flattens it to plain text.",
				Type:        nodekit.TypeChoice,
				Default:     "markdown",
				Options:     []string{"markdown", "text"},
			},
			{
				Name:        "max_page_chars",
				DisplayName: "Max Page Characters",
				Info:        "Truncate each page's content to this many characters. 0 keeps everything.",
				Type:        nodekit.TypeInt,
				Default:     0,
			},
		},
		Outputs: []nodekit.Output{
			{Name: "pages", DisplayName: "Pages", Type: "pages"},
		},
	}
}

// Call runs one crawl and refines the returned pages: path filtering, the
// requested content format, and per-page truncation.
func (c *WebCrawler) Call(ctx context.Context, params nodekit.Params) (any, error) {
	var args crawlArgs
	if err := decode(params, &args); err != nil {
		return nil, err
	}
	include, err := parsePatterns("include_paths", args.IncludePaths)
	if err != nil {
		return nil, err
	}
	exclude, err := parsePatterns("exclude_paths", args.ExcludePaths)
	if err != nil {
		return nil, err
	}
	if args.Limit > maxCrawlLimit {
		args.Limit = maxCrawlLimit
	}

	pages, err := c.crawler.Crawl(ctx, nodekit.CrawlRequest{
		URL:      args.URL,
		Limit:    args.Limit,
		MaxDepth: args.MaxDepth,
	})
	if err != nil {
		return nil, err
	}

	out := make([]nodekit.CrawledPage, 0, len(pages))
	for _, page := range pages {
		path := pagePath(page.URL)
		if len(include) > 0 && !matchAny(include, path) {
			continue
		}
		if matchAny(exclude, path) {
			continue
		}
		if args.Format == "text" {
			page.Content = goldmark.PlainText(page.Content)
		}
		page.Content = truncate(page.Content, args.MaxPageChars)
		out = append(out, page)
	}
	return out, nil
}

// parsePatterns splits a space-separated glob list and rejects malformed
// patterns before any crawling starts.
func parsePatterns(name, raw string) ([]string, error) {
	patterns := strings.Fields(raw)
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("%s pattern %q is invalid: %w", name, p, nodekit.ErrValidation)
		}
	}
	return patterns, nil
}

// pagePath returns the URL path globs are matched against, without its
// leading slash.
func pagePath(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return strings.TrimPrefix(u.Path, "/")
}

func matchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if doublestar.MatchUnvalidated(p, path) {
			return true
		}
	}
	return false
}

// truncate cuts s to at most max characters without splitting a rune.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}
