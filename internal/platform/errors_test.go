package platform_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MichalMitros/review-checker/internal/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		err := platform.NewError(platform.ErrUpstream, "model API request failed", assert.AnError).
			WithDetails("timeout")

		assert.EqualError(t, err, "model API request failed: "+assert.AnError.Error(), "should return valid message")
		assert.Equal(t, "timeout", err.Details, "should set details")
		require.ErrorIs(t, err, platform.ErrUpstream, "should match error kind")
		require.ErrorIs(t, err, assert.AnError, "should match wrapped error")
		assert.NotErrorIs(t, err, platform.ErrNotFound, "shouldn't match other kinds")
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := platform.NewError(platform.ErrInvalidInput, "No product_url provided", nil)

		assert.EqualError(t, err, "No product_url provided", "should return message only")
		require.ErrorIs(t, err, platform.ErrInvalidInput, "should match error kind")
	})

	t.Run("wrapped platform error", func(t *testing.T) {
		err := fmt.Errorf("can't analyze: %w", platform.NewError(platform.ErrNotFound, "not found", nil))

		var platformErr *platform.Error
		require.True(t, errors.As(err, &platformErr), "should be extractable with errors.As")
		assert.Equal(t, "not found", platformErr.Message, "should keep message")
		require.ErrorIs(t, err, platform.ErrNotFound, "should match error kind")
	})
}
