package mock

import (
	"context"

	"github.com/fwojciec/faqcrawl"
)

var _ faqcrawl.ResultService = (*ResultService)(nil)

// ResultService is a mock implementation of faqcrawl.ResultService.
type ResultService struct {
	SaveResultFn     func(ctx context.Context, result *faqcrawl.CrawlResult) (*faqcrawl.SavedResult, error)
	FindResultByIDFn func(ctx context.Context, id string) (*faqcrawl.SavedResult, error)
	FindResultsFn    func(ctx context.Context, filter faqcrawl.ResultFilter) ([]*faqcrawl.SavedResult, error)
	DeleteResultFn   func(ctx context.Context, id string) error
}

func (s *ResultService) SaveResult(ctx context.Context, result *faqcrawl.CrawlResult) (*faqcrawl.SavedResult, error) {
	return s.SaveResultFn(ctx, result)
}

func (s *ResultService) FindResultByID(ctx context.Context, id string) (*faqcrawl.SavedResult, error) {
	return s.FindResultByIDFn(ctx, id)
}

func (s *ResultService) FindResults(ctx context.Context, filter faqcrawl.ResultFilter) ([]*faqcrawl.SavedResult, error) {
	return s.FindResultsFn(ctx, filter)
}

func (s *ResultService) DeleteResult(ctx context.Context, id string) error {
	return s.DeleteResultFn(ctx, id)
}

var _ faqcrawl.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of faqcrawl.ResultWriter.
type ResultWriter struct {
	WriteResultFn func(ctx context.Context, result *faqcrawl.CrawlResult) (string, error)
}

func (w *ResultWriter) WriteResult(ctx context.Context, result *faqcrawl.CrawlResult) (string, error) {
	return w.WriteResultFn(ctx, result)
}
