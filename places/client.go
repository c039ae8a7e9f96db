package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nodekit/nodekit"
	"go.uber.org/zap"
)

// Interface compliance check.
var _ nodekit.PlaceSearcher = (*Client)(nil)

// Client talks to the Google Places API.
type Client struct {
	apiKey        string
	baseURL       string
	httpClient    *http.Client
	websiteClient *http.Client
	pageDelay     time.Duration
	logger        *zap.Logger
}

// Option configures a [Client].
type Option func(*Client)

// WithBaseURL sets the API base URL. Useful for testing with httptest.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithHTTPClient sets the client used for Places API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithWebsiteClient sets the client used to fetch business websites when
// scraping e-mails. Default has a 5s timeout.
func WithWebsiteClient(hc *http.Client) Option {
	return func(c *Client) { c.websiteClient = hc }
}

// WithPageTokenDelay sets the wait before a fresh page token is used.
// Default is 2s, matching the token warm-up the API requires.
func WithPageTokenDelay(d time.Duration) Option {
	return func(c *Client) { c.pageDelay = d }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a new Places [Client] with the given API key and options.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:        apiKey,
		baseURL:       defaultBaseURL,
		httpClient:    http.DefaultClient,
		websiteClient: &http.Client{Timeout: websiteTimeout},
		pageDelay:     defaultPageTokenDelay,
		logger:        zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// SearchPlaces runs a text search and returns up to q.MaxResults places that
// pass the rating and price filters. Each kept place is enriched with a
// detail lookup; filtered places never reach the details endpoint.
func (c *Client) SearchPlaces(ctx context.Context, q nodekit.PlaceQuery) ([]nodekit.Place, error) {
	maxResults := q.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if maxResults > maxResultsCap {
		maxResults = maxResultsCap
	}
	maxEmails := q.MaxEmails
	if maxEmails <= 0 {
		maxEmails = defaultMaxEmails
	}

	places := []nodekit.Place{}
	params := url.Values{"query": {q.Query}, "key": {c.apiKey}}

	for len(places) < maxResults {
		page, err := c.textSearch(ctx, params)
		if err != nil {
			return nil, err
		}
		if len(page.Results) == 0 {
			break
		}

		for _, p := range page.Results {
			if p.Rating < q.MinRating || p.PriceLevel > q.MaxPriceLevel {
				continue
			}
			places = append(places, c.assemblePlace(ctx, p, q.ScrapeEmails, maxEmails))
			if len(places) >= maxResults {
				break
			}
		}

		if page.NextPageToken == "" || len(places) >= maxResults {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pageDelay):
		}
		params = url.Values{"pagetoken": {page.NextPageToken}, "key": {c.apiKey}}
	}

	c.logger.Debug("places search finished",
		zap.String("query", q.Query),
		zap.Int("places", len(places)))
	return places, nil
}

func (c *Client) textSearch(ctx context.Context, params url.Values) (*apiSearchResponse, error) {
	var resp apiSearchResponse
	if err := c.getJSON(ctx, c.baseURL+textSearchPath+"?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	if resp.Status != statusOK && resp.Status != statusZeroResults {
		if resp.ErrorMessage != "" {
			return nil, fmt.Errorf("places: %s: %s", resp.Status, resp.ErrorMessage)
		}
		return nil, fmt.Errorf("places: %s", resp.Status)
	}
	return &resp, nil
}

// assemblePlace builds one place record from a search result, the per-place
// detail lookup, and an optional website scrape.
func (c *Client) assemblePlace(ctx context.Context, p apiPlace, scrapeEmails bool, maxEmails int) nodekit.Place {
	place := nodekit.Place{
		Name:             p.Name,
		Address:          p.FormattedAddress,
		Vicinity:         p.Vicinity,
		Rating:           p.Rating,
		UserRatingsTotal: p.UserRatingsTotal,
		PriceLevel:       p.PriceLevel,
		BusinessStatus:   p.BusinessStatus,
		Types:            p.Types,
		Latitude:         p.Geometry.Location.Lat,
		Longitude:        p.Geometry.Location.Lng,
		PlaceID:          p.PlaceID,
		Icon:             p.Icon,
		PlusCode:         p.PlusCode.GlobalCode,
	}
	if p.OpeningHours != nil {
		place.OpenNow = p.OpeningHours.OpenNow
	}
	if len(p.Photos) > 0 {
		place.PhotoReference = p.Photos[0].PhotoReference
	}

	details := c.placeDetails(ctx, p.PlaceID)
	place.Phone = details.FormattedPhoneNumber
	if place.Phone == "" {
		place.Phone = details.InternationalPhoneNumber
	}
	place.Website = details.Website
	if details.OpeningHours != nil {
		place.WeekdayHours = details.OpeningHours.WeekdayText
	}

	if scrapeEmails && place.Website != "" {
		place.Emails = c.scrapeEmails(ctx, place.Website, maxEmails)
	}
	return place
}

// placeDetails fetches the per-place detail fields. Failures degrade the
// record instead of failing the search.
func (c *Client) placeDetails(ctx context.Context, placeID string) apiDetails {
	params := url.Values{
		"place_id": {placeID},
		"fields":   {detailFields},
		"key":      {c.apiKey},
	}
	var resp apiDetailsResponse
	if err := c.getJSON(ctx, c.baseURL+detailsPath+"?"+params.Encode(), &resp); err != nil {
		c.logger.Warn("place details fetch failed",
			zap.String("place_id", placeID),
			zap.Error(err))
		return apiDetails{}
	}
	if resp.Status != statusOK {
		c.logger.Warn("place details fetch failed",
			zap.String("place_id", placeID),
			zap.String("status", resp.Status))
		return apiDetails{}
	}
	return resp.Result
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("places: %w", err)
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("places: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("places: HTTP %d: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("places: decoding response: %w", err)
	}
	return nil
}
