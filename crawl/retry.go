package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/Quintaneishon/archtext"
)

var _ archtext.Fetcher = (*RetryFetcher)(nil)

// RetryDelays returns n backoff delays doubling from one second: 1s, 2s, 4s…
func RetryDelays(n int) []time.Duration {
	delays := make([]time.Duration, n)
	d := time.Second
	for i := range delays {
		delays[i] = d
		d *= 2
	}
	return delays
}

// RetryFetcher wraps a Fetcher and retries failed fetches, sleeping
// Delays[i] before attempt i+2. With no delays it fetches exactly once.
type RetryFetcher struct {
	Fetcher archtext.Fetcher
	Delays  []time.Duration
	Logger  *slog.Logger
}

// NewRetryFetcher returns a RetryFetcher making up to retries extra attempts.
func NewRetryFetcher(f archtext.Fetcher, retries int, logger *slog.Logger) *RetryFetcher {
	return &RetryFetcher{
		Fetcher: f,
		Delays:  RetryDelays(max(retries, 0)),
		Logger:  logger,
	}
}

// Fetch returns the body of url, retrying on error. The last error is
// returned once all attempts fail.
func (r *RetryFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	maxAttempts := len(r.Delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		body, err := r.Fetcher.Fetch(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if r.Logger != nil {
			r.Logger.Warn("retrying fetch", "url", url, "attempt", attempt+2, "err", err)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.Delays[attempt]):
		}
	}

	return nil, lastErr
}

// Close closes the wrapped fetcher.
func (r *RetryFetcher) Close() error {
	return r.Fetcher.Close()
}
