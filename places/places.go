// Package places implements [nodekit.PlaceSearcher] for the Google Places
// API.
//
// A search pages through the text-search endpoint, enriches each kept place
// with a per-place detail lookup, and optionally scrapes the place's website
// for e-mail addresses. Detail and scrape failures degrade the record rather
// than failing the search; API-level error statuses fail it.
package places

import "time"

const (
	defaultBaseURL = "https://maps.googleapis.com"
	textSearchPath = "/maps/api/place/textsearch/json"
	detailsPath    = "/maps/api/place/details/json"
	detailFields   = "formatted_phone_number,international_phone_number,website,opening_hours"

	defaultMaxResults = 20
	maxResultsCap     = 60
	defaultMaxEmails  = 3

	// A fresh next_page_token needs a beat before the API accepts it.
	defaultPageTokenDelay = 2 * time.Second

	websiteUserAgent = "Mozilla/5.0"
	websiteTimeout   = 5 * time.Second
	maxWebsiteBytes  = 2 << 20

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// apiSearchResponse is the JSON body returned by the text-search endpoint.
// Status is an API-level verdict independent of the HTTP status code.
type apiSearchResponse struct {
	Status        string     `json:"status"`
	ErrorMessage  string     `json:"error_message,omitempty"`
	Results       []apiPlace `json:"results"`
	NextPageToken string     `json:"next_page_token,omitempty"`
}

type apiPlace struct {
	Name             string      `json:"name"`
	FormattedAddress string      `json:"formatted_address"`
	Vicinity         string      `json:"vicinity"`
	Rating           float64     `json:"rating"`
	UserRatingsTotal int         `json:"user_ratings_total"`
	PriceLevel       int         `json:"price_level"`
	BusinessStatus   string      `json:"business_status"`
	OpeningHours     *apiOpening `json:"opening_hours,omitempty"`
	Types            []string    `json:"types"`
	Geometry         apiGeometry `json:"geometry"`
	Photos           []apiPhoto  `json:"photos"`
	PlaceID          string      `json:"place_id"`
	Icon             string      `json:"icon"`
	PlusCode         apiPlusCode `json:"plus_code"`
}

type apiOpening struct {
	OpenNow     *bool    `json:"open_now,omitempty"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

type apiGeometry struct {
	Location apiLatLng `json:"location"`
}

type apiLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type apiPhoto struct {
	PhotoReference string `json:"photo_reference"`
}

type apiPlusCode struct {
	GlobalCode string `json:"global_code"`
}

// apiDetailsResponse is the JSON body returned by the details endpoint.
type apiDetailsResponse struct {
	Status string     `json:"status"`
	Result apiDetails `json:"result"`
}

type apiDetails struct {
	FormattedPhoneNumber     string      `json:"formatted_phone_number"`
	InternationalPhoneNumber string      `json:"international_phone_number"`
	Website                  string      `json:"website"`
	OpeningHours             *apiOpening `json:"opening_hours,omitempty"`
}
