// Package crawl drives FAQ discovery over a website. It fetches the
// homepage, follows dedicated FAQ links when the homepage has any and falls
// back to a bounded breadth-first crawl of the site otherwise.
package crawl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/faqcrawl"
)

var _ faqcrawl.CrawlService = (*Crawler)(nil)

// Crawler implements faqcrawl.CrawlService.
type Crawler struct {
	// Fetcher is the primary fetch mechanism.
	Fetcher faqcrawl.Fetcher

	// Fallback replaces Fetcher for the rest of a crawl once Fetcher reports
	// EUNAVAILABLE. Optional.
	Fallback faqcrawl.Fetcher

	Analyzer faqcrawl.Analyzer

	// RateLimiter paces fetches per domain. Optional.
	RateLimiter faqcrawl.DomainLimiter

	// Logger receives crawl progress. Defaults to discarding output.
	Logger *slog.Logger

	// Now returns the extraction timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Crawl runs one isolated crawl session for req.
func (c *Crawler) Crawl(ctx context.Context, req faqcrawl.CrawlRequest) (*faqcrawl.CrawlResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Normalize()

	sess, err := NewSession(req, c.Fetcher)
	if err != nil {
		return nil, err
	}
	logger := c.logger().With("website", sess.Website)

	// The homepage is claimed before it is fetched so that links back to it
	// are never queued.
	sess.Visited.Add(sess.RootURL)
	home, _ := c.visit(ctx, sess, sess.Website)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var homeLinks []faqcrawl.CrawlTarget
	if home != nil {
		homeLinks = home.Links
	}

	if faqLinks := filterFAQLinks(homeLinks); len(faqLinks) > 0 {
		logger.Info("crawl mode", "mode", "faq", "links", len(faqLinks))
		for _, link := range faqLinks {
			if !sess.Claim(link.URL) {
				continue
			}
			_, fetched := c.visit(ctx, sess, link.URL)
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if fetched {
				sess.FAQPageFound = true
			}
		}
		if sess.Collector.Len() > 0 {
			return c.finish(sess, logger), nil
		}
		logger.Info("faq pages yielded nothing", "pages", sess.Visited.Len())
	}

	logger.Info("crawl mode", "mode", "full", "links", len(homeLinks))
	for _, link := range homeLinks {
		if !sess.Visited.Contains(link.URL) {
			sess.Frontier.Push(link)
		}
	}

	for sess.HasBudget() {
		target, ok := sess.Frontier.Pop()
		if !ok {
			break
		}
		if !sess.Claim(target.URL) {
			continue
		}

		analysis, _ := c.visit(ctx, sess, target.URL)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if analysis == nil {
			continue
		}
		for _, link := range analysis.Links {
			if !sess.Visited.Contains(link.URL) {
				sess.Frontier.Push(link)
			}
		}
	}

	return c.finish(sess, logger), nil
}

// finish assembles the session's result and logs its summary.
func (c *Crawler) finish(sess *Session, logger *slog.Logger) *faqcrawl.CrawlResult {
	result := sess.Result(c.now())
	logger.Info("crawl finished",
		"pages", result.Metadata.PagesProcessed,
		"faqs", result.Metadata.TotalFAQsFound,
		"fallback", sess.Degraded(),
	)
	return result
}

// visit fetches and analyzes url and feeds its candidates to the session's
// collector. It reports whether url was fetched. The analysis is nil when the
// page could not be used; the failure is logged and the crawl continues.
func (c *Crawler) visit(ctx context.Context, sess *Session, url string) (*faqcrawl.Analysis, bool) {
	logger := c.logger()

	html, err := c.fetch(ctx, sess, url)
	if err != nil {
		logger.Warn("skipping page", "url", url, "err", err)
		return nil, false
	}
	if sess.SeenContent(html) {
		logger.Debug("skipping duplicate page", "url", url)
		return nil, true
	}

	analysis, err := c.Analyzer.Analyze(&faqcrawl.Page{URL: url, HTML: html}, sess.Website, sess.Domain, sess.Visited)
	if err != nil {
		logger.Warn("skipping page", "url", url, "err", err)
		return nil, true
	}

	var added int
	for _, candidate := range analysis.Candidates {
		if sess.Collector.Add(candidate.Question, candidate.Answer, url) {
			added++
		}
	}
	logger.Debug("page analyzed",
		"url", url,
		"links", len(analysis.Links),
		"sections", analysis.Sections,
		"candidates", len(analysis.Candidates),
		"faqs", added,
	)

	return analysis, true
}

// fetch retrieves url with the session's current fetcher. When the fetcher
// reports that it is unavailable the session switches to the fallback
// fetcher and url is fetched once more with it.
func (c *Crawler) fetch(ctx context.Context, sess *Session, url string) (string, error) {
	if c.RateLimiter != nil {
		if err := c.RateLimiter.Wait(ctx, sess.Domain); err != nil {
			return "", err
		}
	}

	html, err := sess.Fetcher().Fetch(ctx, url)
	if err == nil || faqcrawl.ErrorCode(err) != faqcrawl.EUNAVAILABLE {
		return html, err
	}
	if !sess.Degrade(c.Fallback) {
		return "", err
	}

	c.logger().Warn("fetcher unavailable, using fallback", "url", url, "err", err)
	return sess.Fetcher().Fetch(ctx, url)
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Logger
}

func (c *Crawler) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func filterFAQLinks(links []faqcrawl.CrawlTarget) []faqcrawl.CrawlTarget {
	var out []faqcrawl.CrawlTarget
	for _, link := range links {
		if faqcrawl.IsFAQLink(link.URL, link.Text) {
			out = append(out, link)
		}
	}
	return out
}
