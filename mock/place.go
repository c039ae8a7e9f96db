package mock

import (
	"context"

	"github.com/nodekit/nodekit"
)

// Interface compliance check.
var _ nodekit.PlaceSearcher = (*PlaceSearcher)(nil)

// PlaceSearcher is a test double for nodekit.PlaceSearcher.
// Set SearchPlacesFn before calling SearchPlaces.
type PlaceSearcher struct {
	SearchPlacesFn func(ctx context.Context, q nodekit.PlaceQuery) ([]nodekit.Place, error)
}

// SearchPlaces delegates to SearchPlacesFn.
func (s *PlaceSearcher) SearchPlaces(ctx context.Context, q nodekit.PlaceQuery) ([]nodekit.Place, error) {
	return s.SearchPlacesFn(ctx, q)
}
