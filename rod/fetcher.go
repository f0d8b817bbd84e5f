// Package rod provides a Chrome-backed implementation of archtext.Fetcher
// for archive pages that render their listing with JavaScript.
package rod

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Quintaneishon/archtext"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page load.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements archtext.Fetcher at compile time.
var _ archtext.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using a headless Chrome browser.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
	closed   atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the timeout of a single page load.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher launches a headless Chrome browser and connects to it.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return nil, archtext.Errorf(archtext.EINTERNAL, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, archtext.Errorf(archtext.EINTERNAL, "connecting to browser: %v", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to url and returns the rendered HTML.
// Navigation and load failures are returned as ENETWORK errors; context
// errors are returned unchanged.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.closed.Load() {
		return nil, archtext.Errorf(archtext.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	f.mu.Lock()
	browser := f.browser
	f.mu.Unlock()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, archtext.Errorf(archtext.EINTERNAL, "opening page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return nil, fetchError(ctx, url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fetchError(ctx, url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, fetchError(ctx, url, err)
	}

	return []byte(html), nil
}

func fetchError(ctx context.Context, url string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return archtext.Errorf(archtext.ENETWORK, "loading %s: %v", url, err)
}

// Close shuts down the browser and its process. Close is safe to call
// multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	var err error
	if f.browser != nil {
		err = f.browser.Close()
		f.browser = nil
	}
	if f.launcher != nil {
		f.launcher.Kill()
		f.launcher = nil
	}
	return err
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (f *Fetcher) LauncherPID() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.launcher == nil {
		return 0
	}
	return f.launcher.PID()
}
