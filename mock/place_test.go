package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nodekit/nodekit"
	"github.com/nodekit/nodekit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceSearcher_SearchPlaces(t *testing.T) {
	t.Parallel()
	t.Run("delegates to SearchPlacesFn", func(t *testing.T) {
		t.Parallel()
		want := []nodekit.Place{{Name: "Blue Bottle", Rating: 4.5}}
		s := mock.PlaceSearcher{
			SearchPlacesFn: func(ctx context.Context, q nodekit.PlaceQuery) ([]nodekit.Place, error) {
				assert.Equal(t, "coffee in Oakland", q.Query)
				return want, nil
			},
		}
		got, err := s.SearchPlaces(context.Background(), nodekit.PlaceQuery{Query: "coffee in Oakland"})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("returns error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("api error")
		s := mock.PlaceSearcher{
			SearchPlacesFn: func(ctx context.Context, q nodekit.PlaceQuery) ([]nodekit.Place, error) {
				return nil, wantErr
			},
		}
		_, err := s.SearchPlaces(context.Background(), nodekit.PlaceQuery{})
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("panics when SearchPlacesFn not set", func(t *testing.T) {
		t.Parallel()
		s := mock.PlaceSearcher{}
		assert.Panics(t, func() {
			_, _ = s.SearchPlaces(context.Background(), nodekit.PlaceQuery{})
		})
	})
}
