package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/Quintaneishon/archtext"
	"golang.org/x/sync/errgroup"
)

// Runner extracts a sequence of periods and persists every result.
type Runner struct {
	Pipeline *Pipeline
	Store    archtext.ResultStore

	// Limiter is shared by all workers. Nil disables rate limiting.
	Limiter archtext.Limiter

	// Concurrency is the number of periods extracted at once. Defaults to 1.
	Concurrency int

	Logger *slog.Logger
}

// Summary holds the outcome of a run.
type Summary struct {
	Processed int
	Succeeded int
	Failed    int
	Words     int
	Records   int
}

// SuccessRate returns the share of processed periods that succeeded, in
// percent. An empty run has a rate of zero.
func (s *Summary) SuccessRate() float64 {
	if s.Processed == 0 {
		return 0
	}
	return float64(s.Succeeded) / float64(s.Processed) * 100
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Period    archtext.Period
	Result    *archtext.ExtractionResult
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// Run extracts periods and saves each result, content or error, through
// Store. A failed period is counted and the run moves on; only context
// cancellation and store failures abort it. The summary covers the periods
// handled before an abort.
func (r *Runner) Run(ctx context.Context, periods []archtext.Period, progress ProgressFunc) (*Summary, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	total := len(periods)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan *archtext.ExtractionResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var workErr error
	go func() {
		for _, period := range periods {
			g.Go(func() error {
				return r.extract(gctx, period, resultCh)
			})
		}
		workErr = g.Wait()
		close(resultCh)
	}()

	summary := &Summary{}
	var completed atomic.Int64
	for result := range resultCh {
		if err := r.Store.SaveResult(ctx, result); err != nil {
			cancel()
			for range resultCh {
			}
			return summary, fmt.Errorf("save %s: %w", result.Period, err)
		}

		summary.Processed++
		event := ProgressEvent{
			Completed: int(completed.Add(1)),
			Total:     total,
			Period:    result.Period,
			Result:    result,
		}
		if result.Failed() {
			summary.Failed++
			event.Type = ProgressFailed
			logger.Warn("extraction failed", "period", result.Period.String(), "url", result.URL, "err", result.Error)
		} else {
			summary.Succeeded++
			summary.Words += result.WordCount
			summary.Records += result.Records
			event.Type = ProgressCompleted
			logger.Info("extracted", "period", result.Period.String(), "words", result.WordCount, "records", result.Records)
		}
		if progress != nil {
			progress(event)
		}
	}

	if workErr != nil {
		return summary, workErr
	}
	if err := ctx.Err(); err != nil {
		return summary, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: summary.Processed, Total: total})
	}
	return summary, nil
}

func (r *Runner) extract(ctx context.Context, period archtext.Period, out chan<- *archtext.ExtractionResult) error {
	url := r.Pipeline.SourceURL(period)
	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx, hostOf(url)); err != nil {
			return err
		}
	}

	result := r.Pipeline.Extract(ctx, period)
	// A canceled fetch is not a verdict on the period.
	if err := ctx.Err(); err != nil {
		return err
	}
	out <- result
	return nil
}
