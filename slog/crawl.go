package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/faqcrawl"
)

// Ensure LoggingCrawlService implements faqcrawl.CrawlService.
var _ faqcrawl.CrawlService = (*LoggingCrawlService)(nil)

// LoggingCrawlService wraps a CrawlService and logs a summary of each crawl.
type LoggingCrawlService struct {
	next   faqcrawl.CrawlService
	logger *slog.Logger
}

// NewLoggingCrawlService creates a new LoggingCrawlService.
func NewLoggingCrawlService(next faqcrawl.CrawlService, logger *slog.Logger) *LoggingCrawlService {
	return &LoggingCrawlService{next: next, logger: logger}
}

// Crawl delegates to the wrapped service and logs the outcome.
func (s *LoggingCrawlService) Crawl(ctx context.Context, req faqcrawl.CrawlRequest) (result *faqcrawl.CrawlResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", req.URL, "duration", time.Since(begin)}
		if result != nil {
			attrs = append(attrs,
				"pages", result.Metadata.PagesProcessed,
				"faqs", result.Metadata.TotalFAQsFound,
				"faqPageFound", result.Metadata.FAQPageFound,
			)
		}
		attrs = append(attrs, "err", err)
		s.logger.Info("crawl", attrs...)
	}(time.Now())
	return s.next.Crawl(ctx, req)
}
