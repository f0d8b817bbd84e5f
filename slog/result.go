package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/Quintaneishon/archtext"
)

// Ensure LoggingResultStore implements archtext.ResultStore.
var _ archtext.ResultStore = (*LoggingResultStore)(nil)

// LoggingResultStore wraps a ResultStore with logging.
type LoggingResultStore struct {
	next   archtext.ResultStore
	logger *slog.Logger
}

// NewLoggingResultStore creates a new LoggingResultStore.
func NewLoggingResultStore(next archtext.ResultStore, logger *slog.Logger) *LoggingResultStore {
	return &LoggingResultStore{next: next, logger: logger}
}

// SaveResult delegates to the wrapped store and logs the operation.
func (s *LoggingResultStore) SaveResult(ctx context.Context, r *archtext.ExtractionResult) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save result",
			"period", r.Period.String(),
			"failed", r.Failed(),
			"words", r.WordCount,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveResult(ctx, r)
}
