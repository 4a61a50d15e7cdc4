package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/campscout"
	"github.com/fwojciec/campscout/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithRetryDelays(t *testing.T) {
	t.Parallel()

	noDelays := []time.Duration{0, 0, 0}

	t.Run("returns on first success", func(t *testing.T) {
		t.Parallel()

		var calls int
		fetch := func(_ context.Context, _ string) (string, int, error) {
			calls++
			return "<html></html>", 200, nil
		}

		html, status, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Equal(t, 200, status)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		t.Parallel()

		var calls int
		fetch := func(_ context.Context, _ string) (string, int, error) {
			calls++
			if calls < 3 {
				return "", 503, campscout.Errorf(campscout.EINTERNAL, "status 503")
			}
			return "ok", 200, nil
		}

		html, status, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)

		require.NoError(t, err)
		assert.Equal(t, "ok", html)
		assert.Equal(t, 200, status)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after exhausting delays", func(t *testing.T) {
		t.Parallel()

		var calls int
		fetch := func(_ context.Context, _ string) (string, int, error) {
			calls++
			return "", 500, campscout.Errorf(campscout.EINTERNAL, "status 500")
		}

		_, status, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, nil, noDelays)

		require.Error(t, err)
		assert.Equal(t, 500, status)
		assert.Equal(t, 4, calls)
	})

	t.Run("logs each retry attempt", func(t *testing.T) {
		t.Parallel()

		fetch := func(_ context.Context, _ string) (string, int, error) {
			return "", 0, campscout.Errorf(campscout.EINTERNAL, "connection refused")
		}

		var logged int
		logger := func(_ string, _ ...any) { logged++ }

		_, _, err := crawl.FetchWithRetryDelays(context.Background(), "https://example.com", fetch, logger, noDelays)

		require.Error(t, err)
		assert.Equal(t, 3, logged)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		fetch := func(_ context.Context, _ string) (string, int, error) {
			cancel()
			return "", 0, campscout.Errorf(campscout.EINTERNAL, "timeout")
		}

		_, _, err := crawl.FetchWithRetryDelays(ctx, "https://example.com", fetch, nil, []time.Duration{time.Minute})

		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	delays := crawl.DefaultRetryDelays()
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}, delays)
}
