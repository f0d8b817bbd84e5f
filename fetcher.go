package archtext

import "context"

// Fetcher retrieves raw page bytes from URLs.
type Fetcher interface {
	// Fetch returns the body of the page at url.
	// Returns ENETWORK if the host is unreachable, the response status is
	// not a success, or the request times out.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// Limiter spaces out requests toward a host.
type Limiter interface {
	// Wait blocks until a request to host is allowed.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
