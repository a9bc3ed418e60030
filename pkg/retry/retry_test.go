package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cocoa-apparel/storefront/pkg/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo(t *testing.T) {
	cfg := retry.RetryConfig{
		MaxAttempts: 3,
		Backoff:     retry.LineareBackoff(time.Millisecond),
	}

	t.Run("SucceedsAfterFailures", func(t *testing.T) {
		var calls int
		err := retry.Do(t.Context(), cfg, func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("ExhaustsAttempts", func(t *testing.T) {
		wantErr := errors.New("down")
		var calls int
		err := retry.Do(t.Context(), cfg, func() error {
			calls++
			return wantErr
		})
		require.ErrorIs(t, err, wantErr)
		assert.Equal(t, 3, calls)
	})

	t.Run("NonRetryableStopsEarly", func(t *testing.T) {
		wantErr := errors.New("fatal")
		stopCfg := cfg
		stopCfg.ShouldRetry = func(err error) bool {
			return !errors.Is(err, wantErr)
		}

		var calls int
		err := retry.Do(t.Context(), stopCfg, func() error {
			calls++
			return wantErr
		})
		require.ErrorIs(t, err, wantErr)
		assert.Equal(t, 1, calls)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		err := retry.Do(ctx, cfg, func() error { return nil })
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDoWithResult(t *testing.T) {
	cfg := retry.RetryConfig{
		MaxAttempts: 2,
		Backoff:     retry.LineareBackoff(time.Millisecond),
	}

	var calls int
	v, err := retry.DoWithResult(t.Context(), cfg, func() (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}
