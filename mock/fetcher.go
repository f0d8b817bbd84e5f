package mock

import (
	"context"

	"github.com/Quintaneishon/archtext"
)

var _ archtext.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of archtext.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) ([]byte, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}

var _ archtext.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of archtext.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *Limiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
