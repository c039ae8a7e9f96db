package nodekit

import "context"

// PlaceQuery carries one places search with result filters.
type PlaceQuery struct {
	Query         string
	MaxResults    int     // 0 = searcher default (20); capped at 60
	MinRating     float64 // skip places rated below this
	MaxPriceLevel int     // skip places priced above this; 0 (free) .. 4 (very expensive)
	ScrapeEmails  bool    // fetch each place's website and extract e-mail addresses
	MaxEmails     int     // per-website e-mail cap; 0 = searcher default (3)
}

// Place is one place record assembled from the search result and the
// per-place detail lookup.
type Place struct {
	Name             string   `json:"name"`
	Address          string   `json:"address,omitempty"`
	Vicinity         string   `json:"vicinity,omitempty"`
	Rating           float64  `json:"rating,omitempty"`
	UserRatingsTotal int      `json:"user_ratings_total,omitempty"`
	PriceLevel       int      `json:"price_level,omitempty"`
	BusinessStatus   string   `json:"business_status,omitempty"`
	OpenNow          *bool    `json:"open_now,omitempty"`
	WeekdayHours     []string `json:"weekday_hours,omitempty"`
	Types            []string `json:"types,omitempty"`
	Latitude         float64  `json:"latitude,omitempty"`
	Longitude        float64  `json:"longitude,omitempty"`
	PhotoReference   string   `json:"photo_reference,omitempty"`
	PlaceID          string   `json:"place_id,omitempty"`
	Icon             string   `json:"icon,omitempty"`
	PlusCode         string   `json:"plus_code,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	Website          string   `json:"website,omitempty"`
	Emails           []string `json:"emails,omitempty"`
}

// PlaceSearcher is the interface to a places lookup service.
type PlaceSearcher interface {
	SearchPlaces(ctx context.Context, q PlaceQuery) ([]Place, error)
}
