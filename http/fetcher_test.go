package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Quintaneishon/archtext"
	archtexthttp "github.com/Quintaneishon/archtext/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hola</body></html>"))
		}))
		defer server.Close()

		fetcher := archtexthttp.NewFetcher()
		defer fetcher.Close()

		body, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hola</body></html>", string(body))
	})

	t.Run("sends the browser user agent", func(t *testing.T) {
		t.Parallel()

		var got string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.UserAgent()
		}))
		defer server.Close()

		fetcher := archtexthttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, archtexthttp.DefaultUserAgent, got)
	})

	t.Run("sends a custom user agent", func(t *testing.T) {
		t.Parallel()

		var got string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.UserAgent()
		}))
		defer server.Close()

		fetcher := archtexthttp.NewFetcher(archtexthttp.WithUserAgent("archtext-test"))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "archtext-test", got)
	})

	t.Run("uses the given client", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := archtexthttp.NewFetcher(archtexthttp.WithClient(server.Client()))
		defer fetcher.Close()

		body, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "ok", string(body))
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		fetcher := archtexthttp.NewFetcher(archtexthttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, archtext.ENETWORK, archtext.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := archtexthttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("returns network error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := archtexthttp.NewFetcher(archtexthttp.WithTimeout(100 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/2025/13/")
		require.Error(t, err)
		assert.Equal(t, archtext.ENETWORK, archtext.ErrorCode(err))
	})

	t.Run("returns network error for non-2xx status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		fetcher := archtexthttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL+"/2025/13/")
		require.Error(t, err)
		assert.Equal(t, archtext.ENETWORK, archtext.ErrorCode(err))
		assert.Equal(t, "HTTP 404 for "+server.URL+"/2025/13/", archtext.ErrorMessage(err))
	})

	t.Run("returns invalid error for malformed url", func(t *testing.T) {
		t.Parallel()

		fetcher := archtexthttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), "http://[::1")
		assert.Equal(t, archtext.EINVALID, archtext.ErrorCode(err))
	})
}

// Compile-time verification that Fetcher implements archtext.Fetcher
var _ archtext.Fetcher = (*archtexthttp.Fetcher)(nil)
