package builtin_test

import (
	"testing"

	"github.com/nodekit/nodekit"
	"github.com/nodekit/nodekit/builtin"
	"github.com/nodekit/nodekit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("registers every component when all capabilities are configured", func(t *testing.T) {
		t.Parallel()

		r := nodekit.NewRegistry()
		err := builtin.Register(r, builtin.Deps{
			Images:      &mock.ImageGenerator{},
			Transcriber: &mock.Transcriber{},
			Crawler:     &mock.Crawler{},
			Places:      &mock.PlaceSearcher{},
			PDF:         &mock.PageExtractor{},
		})
		require.NoError(t, err)

		var names []string
		for _, m := range r.Metas() {
			names = append(names, m.Name)
		}
		assert.Equal(t, []string{
			"audio_transcript",
			"image_generation",
			"pdf_pages",
			"places_search",
			"web_crawler",
		}, names)
	})

	t.Run("skips components without a capability", func(t *testing.T) {
		t.Parallel()

		r := nodekit.NewRegistry()
		err := builtin.Register(r, builtin.Deps{Crawler: &mock.Crawler{}})
		require.NoError(t, err)

		metas := r.Metas()
		require.Len(t, metas, 1)
		assert.Equal(t, "web_crawler", metas[0].Name)
	})

	t.Run("metas lists every bundled component", func(t *testing.T) {
		t.Parallel()

		var names []string
		for _, m := range builtin.Metas() {
			names = append(names, m.Name)
		}
		assert.Equal(t, []string{
			"audio_transcript",
			"image_generation",
			"pdf_pages",
			"places_search",
			"web_crawler",
		}, names)
	})

	t.Run("fails on duplicate registration", func(t *testing.T) {
		t.Parallel()

		r := nodekit.NewRegistry()
		d := builtin.Deps{PDF: &mock.PageExtractor{}}
		require.NoError(t, builtin.Register(r, d))
		err := builtin.Register(r, d)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})
}
