package mock

import (
	"context"

	"github.com/fwojciec/faqcrawl"
)

var _ faqcrawl.CrawlService = (*CrawlService)(nil)

// CrawlService is a mock implementation of faqcrawl.CrawlService.
type CrawlService struct {
	CrawlFn func(ctx context.Context, req faqcrawl.CrawlRequest) (*faqcrawl.CrawlResult, error)
}

func (s *CrawlService) Crawl(ctx context.Context, req faqcrawl.CrawlRequest) (*faqcrawl.CrawlResult, error) {
	return s.CrawlFn(ctx, req)
}
