package crawl

import (
	"context"
	"net/url"
	"sync"

	"github.com/Quintaneishon/archtext"
	"golang.org/x/time/rate"
)

var _ archtext.Limiter = (*HostLimiter)(nil)

// DefaultRate is the request rate used toward the archive host when none is
// configured: one request per second.
const DefaultRate = 1.0

// HostLimiter spaces out requests per host using token buckets. Requests to
// different hosts do not wait on each other.
type HostLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewHostLimiter creates a HostLimiter allowing rps requests per second to
// each host, without bursting. A non-positive rps falls back to DefaultRate.
func NewHostLimiter(rps float64) *HostLimiter {
	if rps <= 0 {
		rps = DefaultRate
	}
	return &HostLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until a request to host is allowed.
// Returns an error if the context is canceled before the wait completes.
func (h *HostLimiter) Wait(ctx context.Context, host string) error {
	h.mu.Lock()
	limiter, ok := h.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(h.rps), 1)
		h.limiters[host] = limiter
	}
	h.mu.Unlock()

	return limiter.Wait(ctx)
}

// hostOf returns the host of rawURL, or rawURL itself when it does not parse
// so that malformed URLs still share one bucket.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
