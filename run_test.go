package nodekit_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/nodekit/nodekit"
	"github.com/nodekit/nodekit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Success(t *testing.T) {
	t.Parallel()
	c := mock.Component{
		MetaFn: func() nodekit.Meta {
			return nodekit.Meta{Name: "echo", Inputs: []nodekit.Input{
				{Name: "text", Type: nodekit.TypeString, Required: true},
			}}
		},
		CallFn: func(ctx context.Context, params nodekit.Params) (any, error) {
			return params["text"], nil
		},
	}
	r := nodekit.Run(context.Background(), &c, nodekit.Params{"text": "hello"})
	assert.True(t, r.OK)
	assert.Equal(t, "hello", r.Payload)
	assert.Nil(t, r.Failure)
}

func TestRun_AppliesDefaultsBeforeCall(t *testing.T) {
	t.Parallel()
	c := mock.Component{
		MetaFn: func() nodekit.Meta {
			return nodekit.Meta{Name: "gen", Inputs: []nodekit.Input{
				{Name: "prompt", Type: nodekit.TypeString, Required: true},
				{Name: "model", Type: nodekit.TypeString, Default: "dall-e-3"},
				{Name: "size", Type: nodekit.TypeChoice, Options: []string{"1024x1024", "1792x1024"}, Default: "1024x1024"},
			}}
		},
		CallFn: func(ctx context.Context, params nodekit.Params) (any, error) {
			assert.Equal(t, "dall-e-3", params["model"])
			assert.Equal(t, "1024x1024", params["size"])
			return "ok", nil
		},
	}
	r := nodekit.Run(context.Background(), &c, nodekit.Params{"prompt": "a fox"})
	assert.True(t, r.OK)
}

func TestRun_DoesNotModifyCallerParams(t *testing.T) {
	t.Parallel()
	c := mock.Component{
		MetaFn: func() nodekit.Meta {
			return nodekit.Meta{Name: "gen", Inputs: []nodekit.Input{
				{Name: "model", Type: nodekit.TypeString, Default: "dall-e-3"},
			}}
		},
		CallFn: func(ctx context.Context, params nodekit.Params) (any, error) {
			return "ok", nil
		},
	}
	p := nodekit.Params{}
	_ = nodekit.Run(context.Background(), &c, p)
	assert.Empty(t, p)
}

func TestRun_ValidationFailureSkipsCall(t *testing.T) {
	t.Parallel()
	called := false
	c := mock.Component{
		MetaFn: func() nodekit.Meta {
			return nodekit.Meta{Name: "gen", Inputs: []nodekit.Input{
				{Name: "prompt", Type: nodekit.TypeString, Required: true},
			}}
		},
		CallFn: func(ctx context.Context, params nodekit.Params) (any, error) {
			called = true
			return nil, nil
		},
	}
	r := nodekit.Run(context.Background(), &c, nodekit.Params{})
	assert.False(t, r.OK)
	assert.Nil(t, r.Payload)
	require.NotNil(t, r.Failure)
	assert.Equal(t, nodekit.FailureValidation, r.Failure.Kind)
	assert.Contains(t, r.Failure.Reason, "prompt")
	assert.False(t, called)
}

func TestRun_CallFailure(t *testing.T) {
	t.Parallel()
	c := mock.Component{
		MetaFn: func() nodekit.Meta {
			return nodekit.Meta{Name: "gen"}
		},
		CallFn: func(ctx context.Context, params nodekit.Params) (any, error) {
			return nil, errors.New("images api: status 500")
		},
	}
	r := nodekit.Run(context.Background(), &c, nodekit.Params{})
	assert.False(t, r.OK)
	require.NotNil(t, r.Failure)
	assert.Equal(t, nodekit.FailureCall, r.Failure.Kind)
	assert.Equal(t, "images api: status 500", r.Failure.Reason)
}

func TestRun_CallValidationErrorClassifies(t *testing.T) {
	t.Parallel()
	// Components may detect bad input after declared-type checks pass,
	// e.g. a file path that does not exist. Those surface as validation
	// failures when wrapped in ErrValidation.
	c := mock.Component{
		MetaFn: func() nodekit.Meta {
			return nodekit.Meta{Name: "pdf"}
		},
		CallFn: func(ctx context.Context, params nodekit.Params) (any, error) {
			return nil, fmt.Errorf("pdf_file: no such file: %w", nodekit.ErrValidation)
		},
	}
	r := nodekit.Run(context.Background(), &c, nodekit.Params{})
	require.NotNil(t, r.Failure)
	assert.Equal(t, nodekit.FailureValidation, r.Failure.Kind)
}
