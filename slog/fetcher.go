// Package slog provides logging decorators for archtext services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Quintaneishon/archtext"
)

// Ensure LoggingFetcher implements archtext.Fetcher.
var _ archtext.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   archtext.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next archtext.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome. Failures
// are logged at warn level with their error code.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (body []byte, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"bytes", len(body),
			"duration", time.Since(begin),
		}
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelWarn
			attrs = append(attrs, "code", archtext.ErrorCode(err), "err", err)
		}
		f.logger.Log(ctx, level, "fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
