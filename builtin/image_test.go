package builtin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nodekit/nodekit"
	"github.com/nodekit/nodekit/builtin"
	"github.com/nodekit/nodekit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageGeneration_Call(t *testing.T) {
	t.Parallel()

	t.Run("passes decoded parameters to the generator", func(t *testing.T) {
		t.Parallel()

		var got nodekit.ImageRequest
		want := &nodekit.GeneratedImage{URL: "https://img.example/1.png", RevisedPrompt: "a tall lighthouse"}
		gen := &mock.ImageGenerator{
			GenerateImageFn: func(ctx context.Context, req nodekit.ImageRequest) (*nodekit.GeneratedImage, error) {
				got = req
				return want, nil
			},
		}

		c := builtin.NewImageGeneration(gen)
		payload, err := c.Call(context.Background(), nodekit.Params{
			"prompt":          "a lighthouse",
			"model":           "dall-e-3",
			"size":            "1792x1024",
			"quality":         "hd",
			"response_format": "b64_json",
		})
		require.NoError(t, err)

		assert.Equal(t, nodekit.ImageRequest{
			Prompt:         "a lighthouse",
			Model:          "dall-e-3",
			Size:           "1792x1024",
			Quality:        "hd",
			ResponseFormat: "b64_json",
		}, got)
		assert.Equal(t, want, payload)
	})

	t.Run("returns the generator error", func(t *testing.T) {
		t.Parallel()

		gen := &mock.ImageGenerator{
			GenerateImageFn: func(ctx context.Context, req nodekit.ImageRequest) (*nodekit.GeneratedImage, error) {
				return nil, errors.New("content policy violation")
			},
		}

		c := builtin.NewImageGeneration(gen)
		_, err := c.Call(context.Background(), nodekit.Params{"prompt": "a lighthouse"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "content policy violation")
	})
}

func TestImageGeneration_Run(t *testing.T) {
	t.Parallel()

	t.Run("applies declared defaults", func(t *testing.T) {
		t.Parallel()

		var got nodekit.ImageRequest
		gen := &mock.ImageGenerator{
			GenerateImageFn: func(ctx context.Context, req nodekit.ImageRequest) (*nodekit.GeneratedImage, error) {
				got = req
				return &nodekit.GeneratedImage{URL: "https://img.example/1.png"}, nil
			},
		}

		result := nodekit.Run(context.Background(), builtin.NewImageGeneration(gen), nodekit.Params{
			"prompt": "a lighthouse",
		})
		require.True(t, result.OK)

		assert.Equal(t, "", got.Model)
		assert.Equal(t, "1024x1024", got.Size)
		assert.Equal(t, "standard", got.Quality)
		assert.Equal(t, "url", got.ResponseFormat)
	})

	t.Run("missing prompt never reaches the generator", func(t *testing.T) {
		t.Parallel()

		calls := 0
		gen := &mock.ImageGenerator{
			GenerateImageFn: func(ctx context.Context, req nodekit.ImageRequest) (*nodekit.GeneratedImage, error) {
				calls++
				return nil, nil
			},
		}

		result := nodekit.Run(context.Background(), builtin.NewImageGeneration(gen), nodekit.Params{})
		require.False(t, result.OK)
		require.NotNil(t, result.Failure)
		assert.Equal(t, nodekit.FailureValidation, result.Failure.Kind)
		assert.Equal(t, 0, calls)
	})
}
