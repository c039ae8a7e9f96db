// Package firecrawl implements [nodekit.Crawler] for the Firecrawl API.
//
// A crawl is asynchronous: one POST starts the job, then the client polls
// the status endpoint until the job settles and follows pagination links
// until every page is collected. Pages arrive as markdown.
package firecrawl

import "time"

const (
	defaultBaseURL      = "https://api.firecrawl.dev"
	defaultPollInterval = 2 * time.Second
	crawlPath           = "/v1/crawl"

	statusCompleted = "completed"
	statusFailed    = "failed"
	statusCancelled = "cancelled"
)

// apiCrawlRequest is the JSON body sent to start a crawl.
type apiCrawlRequest struct {
	URL           string            `json:"url"`
	Limit         int               `json:"limit,omitempty"`
	MaxDepth      int               `json:"maxDepth,omitempty"`
	ScrapeOptions *apiScrapeOptions `json:"scrapeOptions,omitempty"`
}

type apiScrapeOptions struct {
	Formats []string `json:"formats"`
}

// apiCrawlStart is the JSON body returned when a crawl is accepted.
type apiCrawlStart struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	URL     string `json:"url"`
}

// apiCrawlStatus is the JSON body returned by the status endpoint. Next
// carries a pagination URL when the page set spans multiple responses.
type apiCrawlStatus struct {
	Status    string        `json:"status"`
	Total     int           `json:"total"`
	Completed int           `json:"completed"`
	Next      string        `json:"next,omitempty"`
	Data      []apiDocument `json:"data"`
}

type apiDocument struct {
	Markdown string      `json:"markdown"`
	Metadata apiMetadata `json:"metadata"`
}

type apiMetadata struct {
	Title      string `json:"title,omitempty"`
	SourceURL  string `json:"sourceURL,omitempty"`
	StatusCode int    `json:"statusCode,omitempty"`
}

// apiErrorResponse is the JSON body returned on failures.
type apiErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
