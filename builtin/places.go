package builtin

import (
	"context"

	"github.com/nodekit/nodekit"
)

// Interface compliance check.
var _ nodekit.Component = (*PlacesSearch)(nil)

// PlacesSearch finds businesses matching a text query and enriches each hit
// with contact details.
type PlacesSearch struct {
	searcher nodekit.PlaceSearcher
}

// NewPlacesSearch creates the places_search component backed by s.
func NewPlacesSearch(s nodekit.PlaceSearcher) *PlacesSearch {
	return &PlacesSearch{searcher: s}
}

type placesArgs struct {
	Query         string  `mapstructure:"query"`
	MaxResults    int     `mapstructure:"max_results"`
	MinRating     float64 `mapstructure:"min_rating"`
	MaxPriceLevel int     `mapstructure:"max_price_level"`
	ScrapeEmails  bool    `mapstructure:"scrape_emails"`
	MaxEmails     int     `mapstructure:"max_emails"`
}

// Meta declares the component's parameter and output interface.
func (c *PlacesSearch) Meta() nodekit.Meta {
	return nodekit.Meta{
		Name:        "places_search",
		DisplayName: "Places Search",
		Description: "Search Google Places and enrich results with contact details.",
		Inputs: []nodekit.Input{
			{
				Name:        "query",
				DisplayName: "Query",
				Info:        "Free-text search, e.g. \"coffee near Berlin\".",
				Type:        nodekit.TypeString,
				Required:    true,
			},
			{
				Name:        "max_results",
				DisplayName: "Max Results",
				Info:        "Number of places to return, capped at 60 by the API.",
				Type:        nodekit.TypeInt,
				Default:     20,
			},
			{
				Name:        "min_rating",
				DisplayName: "Minimum Rating",
				Info:        "Skip places rated below this value.",
				Type:        nodekit.TypeFloat,
				Default:     0.0,
			},
			{
				Name:        "max_price_level",
				DisplayName: "Maximum Price Level",
				Info:        "Skip places above this price level (0 = free, 4 = very expensive).",
				Type:        nodekit.TypeInt,
				Default:     4,
			},
			{
				Name:        "scrape_emails",
				DisplayName: "Scrape Emails",
				Info:        "Fetch each place's website and extract e-mail addresses.",
				Type:        nodekit.TypeBool,
				Default:     true,
			},
			{
				Name:        "max_emails",
				DisplayName: "Max Emails",
				Info:        "E-mail addresses to keep per place.",
				Type:        nodekit.TypeInt,
				Default:     3,
			},
		},
		Outputs: []nodekit.Output{
			{Name: "places", DisplayName: "Places", Type: "places"},
		},
	}
}

// Call runs one search, including the detail and e-mail enrichment the
// searcher performs per surviving place.
func (c *PlacesSearch) Call(ctx context.Context, params nodekit.Params) (any, error) {
	var args placesArgs
	if err := decode(params, &args); err != nil {
		return nil, err
	}
	places, err := c.searcher.SearchPlaces(ctx, nodekit.PlaceQuery{
		Query:         args.Query,
		MaxResults:    args.MaxResults,
		MinRating:     args.MinRating,
		MaxPriceLevel: args.MaxPriceLevel,
		ScrapeEmails:  args.ScrapeEmails,
		MaxEmails:     args.MaxEmails,
	})
	if err != nil {
		return nil, err
	}
	return places, nil
}
