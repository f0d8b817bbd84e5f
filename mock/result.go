package mock

import (
	"context"

	"github.com/Quintaneishon/archtext"
)

var _ archtext.ResultStore = (*ResultStore)(nil)

// ResultStore is a mock implementation of archtext.ResultStore.
type ResultStore struct {
	SaveResultFn func(ctx context.Context, r *archtext.ExtractionResult) error
}

func (s *ResultStore) SaveResult(ctx context.Context, r *archtext.ExtractionResult) error {
	return s.SaveResultFn(ctx, r)
}

var _ archtext.ResultService = (*ResultService)(nil)

// ResultService is a mock implementation of archtext.ResultService.
type ResultService struct {
	SaveResultFn         func(ctx context.Context, r *archtext.ExtractionResult) error
	FindResultByPeriodFn func(ctx context.Context, period archtext.Period) (*archtext.ExtractionResult, error)
	FindResultsFn        func(ctx context.Context, filter archtext.ResultFilter) ([]*archtext.ExtractionResult, error)
}

func (s *ResultService) SaveResult(ctx context.Context, r *archtext.ExtractionResult) error {
	return s.SaveResultFn(ctx, r)
}

func (s *ResultService) FindResultByPeriod(ctx context.Context, period archtext.Period) (*archtext.ExtractionResult, error) {
	return s.FindResultByPeriodFn(ctx, period)
}

func (s *ResultService) FindResults(ctx context.Context, filter archtext.ResultFilter) ([]*archtext.ExtractionResult, error) {
	return s.FindResultsFn(ctx, filter)
}
