package crawl_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Quintaneishon/archtext"
	"github.com/Quintaneishon/archtext/crawl"
	"github.com/Quintaneishon/archtext/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Empty(t, crawl.RetryDelays(0))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, crawl.RetryDelays(3))
}

func TestRetryFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the first successful body", func(t *testing.T) {
		t.Parallel()

		calls := 0
		f := &crawl.RetryFetcher{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) ([]byte, error) {
					calls++
					if calls < 3 {
						return nil, archtext.Errorf(archtext.ENETWORK, "HTTP 503")
					}
					return []byte("<html></html>"), nil
				},
			},
			Delays: []time.Duration{time.Millisecond, time.Millisecond, time.Millisecond},
		}

		body, err := f.Fetch(context.Background(), "https://unamglobal.unam.mx/2020/01/")

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", string(body))
		assert.Equal(t, 3, calls)
	})

	t.Run("returns the last error after all attempts", func(t *testing.T) {
		t.Parallel()

		calls := 0
		f := &crawl.RetryFetcher{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) ([]byte, error) {
					calls++
					return nil, archtext.Errorf(archtext.ENETWORK, "attempt %d", calls)
				},
			},
			Delays: []time.Duration{time.Millisecond},
		}

		_, err := f.Fetch(context.Background(), "u")

		require.Error(t, err)
		assert.Equal(t, "attempt 2", archtext.ErrorMessage(err))
		assert.Equal(t, 2, calls)
	})

	t.Run("fetches once without delays", func(t *testing.T) {
		t.Parallel()

		calls := 0
		f := crawl.NewRetryFetcher(&mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) ([]byte, error) {
				calls++
				return nil, errors.New("boom")
			},
		}, 0, nil)

		_, err := f.Fetch(context.Background(), "u")

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when the context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		f := &crawl.RetryFetcher{
			Fetcher: &mock.Fetcher{
				FetchFn: func(_ context.Context, _ string) ([]byte, error) {
					cancel()
					return nil, errors.New("boom")
				},
			},
			Delays: []time.Duration{time.Hour},
		}

		_, err := f.Fetch(ctx, "u")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestRetryFetcher_Close(t *testing.T) {
	t.Parallel()

	closed := false
	f := crawl.NewRetryFetcher(&mock.Fetcher{
		CloseFn: func() error {
			closed = true
			return nil
		},
	}, 2, nil)

	require.NoError(t, f.Close())
	assert.True(t, closed)
}
