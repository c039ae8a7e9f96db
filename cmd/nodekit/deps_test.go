package main

import (
	"context"
	"testing"

	"github.com/nodekit/nodekit/gemini"
	"github.com/nodekit/nodekit/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildDeps_NoCredentials(t *testing.T) {
	t.Parallel()
	d, err := buildDeps(context.Background(), config{}, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, d.PDF)
	assert.Nil(t, d.Images)
	assert.Nil(t, d.Transcriber)
	assert.Nil(t, d.Crawler)
	assert.Nil(t, d.Places)
}

func TestBuildDeps_OpenAIKey(t *testing.T) {
	t.Parallel()
	d, err := buildDeps(context.Background(), config{openaiKey: "sk-test"}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &openai.Client{}, d.Transcriber)
	assert.IsType(t, &openai.Client{}, d.Images)
}

func TestBuildDeps_GeminiKeyOnly(t *testing.T) {
	t.Parallel()
	d, err := buildDeps(context.Background(), config{geminiKey: "gk-test"}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &gemini.Client{}, d.Images)
	assert.Nil(t, d.Transcriber)
}

func TestBuildDeps_PrefersOpenAIWhenBothKeys(t *testing.T) {
	t.Parallel()
	d, err := buildDeps(context.Background(), config{openaiKey: "sk-test", geminiKey: "gk-test"}, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &openai.Client{}, d.Images)
}

func TestBuildDeps_BackendFlagGemini(t *testing.T) {
	t.Parallel()
	cfg := config{openaiKey: "sk-test", geminiKey: "gk-test", imageBackend: "gemini"}
	d, err := buildDeps(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &gemini.Client{}, d.Images)
	assert.IsType(t, &openai.Client{}, d.Transcriber)
}

func TestBuildDeps_BackendFlagWithoutKey(t *testing.T) {
	t.Parallel()
	_, err := buildDeps(context.Background(), config{imageBackend: "gemini"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestBuildDeps_UnknownBackend(t *testing.T) {
	t.Parallel()
	_, err := buildDeps(context.Background(), config{imageBackend: "dalle"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown image backend")
}

func TestBuildDeps_AllCredentials(t *testing.T) {
	t.Parallel()
	cfg := config{
		openaiKey:    "sk-test",
		geminiKey:    "gk-test",
		firecrawlKey: "fc-test",
		placesKey:    "pl-test",
	}
	d, err := buildDeps(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, d.Images)
	assert.NotNil(t, d.Transcriber)
	assert.NotNil(t, d.Crawler)
	assert.NotNil(t, d.Places)
	assert.NotNil(t, d.PDF)
}
