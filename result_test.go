package nodekit_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nodekit/nodekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSucceed(t *testing.T) {
	t.Parallel()
	payload := []string{"a", "b"}
	r := nodekit.Succeed(payload)
	assert.True(t, r.OK)
	assert.Equal(t, payload, r.Payload)
	assert.Nil(t, r.Failure)
}

func TestFail(t *testing.T) {
	t.Parallel()

	t.Run("validation errors classify as validation failures", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("prompt is required: %w", nodekit.ErrValidation)
		r := nodekit.Fail(err)
		assert.False(t, r.OK)
		assert.Nil(t, r.Payload)
		require.NotNil(t, r.Failure)
		assert.Equal(t, nodekit.FailureValidation, r.Failure.Kind)
		assert.Equal(t, err.Error(), r.Failure.Reason)
	})

	t.Run("unknown component classifies as validation failure", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("%q: %w", "nope", nodekit.ErrComponentNotFound)
		r := nodekit.Fail(err)
		require.NotNil(t, r.Failure)
		assert.Equal(t, nodekit.FailureValidation, r.Failure.Kind)
	})

	t.Run("other errors classify as call failures", func(t *testing.T) {
		t.Parallel()
		err := errors.New("places api: status 500")
		r := nodekit.Fail(err)
		assert.False(t, r.OK)
		require.NotNil(t, r.Failure)
		assert.Equal(t, nodekit.FailureCall, r.Failure.Kind)
		assert.Equal(t, "places api: status 500", r.Failure.Reason)
	})
}
