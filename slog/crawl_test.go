package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/faqcrawl"
	"github.com/fwojciec/faqcrawl/mock"
	faqslog "github.com/fwojciec/faqcrawl/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCrawlService_Crawl(t *testing.T) {
	t.Parallel()

	t.Run("logs a summary of the result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CrawlService{
			CrawlFn: func(_ context.Context, req faqcrawl.CrawlRequest) (*faqcrawl.CrawlResult, error) {
				return &faqcrawl.CrawlResult{
					Website: req.URL,
					Metadata: faqcrawl.CrawlMetadata{
						PagesProcessed: 4,
						TotalFAQsFound: 9,
						FAQPageFound:   true,
					},
				}, nil
			},
		}

		svc := faqslog.NewLoggingCrawlService(inner, logger)
		result, err := svc.Crawl(context.Background(), faqcrawl.CrawlRequest{URL: "https://example.com"})

		require.NoError(t, err)
		assert.Equal(t, 9, result.Metadata.TotalFAQsFound)
		output := buf.String()
		assert.Contains(t, output, "msg=crawl")
		assert.Contains(t, output, "url=https://example.com")
		assert.Contains(t, output, "pages=4")
		assert.Contains(t, output, "faqs=9")
		assert.Contains(t, output, "faqPageFound=true")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error without result fields", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CrawlService{
			CrawlFn: func(_ context.Context, _ faqcrawl.CrawlRequest) (*faqcrawl.CrawlResult, error) {
				return nil, faqcrawl.Errorf(faqcrawl.EINVALID, "URL is required")
			},
		}

		svc := faqslog.NewLoggingCrawlService(inner, logger)
		_, err := svc.Crawl(context.Background(), faqcrawl.CrawlRequest{})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "err=")
		assert.Contains(t, output, "URL is required")
		assert.NotContains(t, output, "pages=")
	})
}
