package crawl

import (
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/faqcrawl"
)

// Session is the state of a single crawl. It is created fresh for every
// Crawl call and owned by it exclusively; nothing in it is shared with other
// crawls.
type Session struct {
	// Website is the requested site as reported in the result.
	Website string

	// RootURL is the canonical form of Website used for the visited set.
	RootURL string

	// Domain is the host every crawled URL must belong to.
	Domain string

	// MaxPages bounds the number of visited URLs.
	MaxPages int

	Visited   *VisitedSet
	Frontier  faqcrawl.URLFrontier
	Collector *faqcrawl.Collector

	// FAQPageFound is set once a dedicated FAQ page has been fetched.
	FAQPageFound bool

	fetcher      faqcrawl.Fetcher
	degraded     bool
	fingerprints map[uint64]struct{}
}

// NewSession prepares the state for crawling req, which must have been
// normalized. fetcher is the session's initial fetch mechanism.
func NewSession(req faqcrawl.CrawlRequest, fetcher faqcrawl.Fetcher) (*Session, error) {
	rootURL, err := faqcrawl.NormalizeURL(req.URL, req.URL)
	if err != nil {
		return nil, err
	}
	domain, err := faqcrawl.Domain(rootURL)
	if err != nil {
		return nil, err
	}

	return &Session{
		Website:      req.URL,
		RootURL:      rootURL,
		Domain:       domain,
		MaxPages:     max(req.MaxPages, 1),
		Visited:      NewVisitedSet(req.MaxPages),
		Frontier:     NewFrontier(),
		Collector:    faqcrawl.NewCollector(),
		fetcher:      fetcher,
		fingerprints: make(map[uint64]struct{}),
	}, nil
}

// HasBudget reports whether another URL may be visited.
func (s *Session) HasBudget() bool {
	return s.Visited.Len() < s.MaxPages
}

// Claim marks url visited if the page budget allows. It reports whether the
// caller should fetch url.
func (s *Session) Claim(url string) bool {
	if !s.HasBudget() || s.Visited.Contains(url) {
		return false
	}
	return s.Visited.Add(url)
}

// Fetcher returns the fetch mechanism currently in use.
func (s *Session) Fetcher() faqcrawl.Fetcher {
	return s.fetcher
}

// Degrade switches the session to fallback for the rest of the crawl. It
// reports false if the session has already degraded or fallback is nil.
func (s *Session) Degrade(fallback faqcrawl.Fetcher) bool {
	if s.degraded || fallback == nil {
		return false
	}
	s.fetcher = fallback
	s.degraded = true
	return true
}

// Degraded reports whether the session runs on its fallback fetcher.
func (s *Session) Degraded() bool {
	return s.degraded
}

// SeenContent records the fingerprint of html and reports whether identical
// markup was processed earlier in the session.
func (s *Session) SeenContent(html string) bool {
	sum := xxhash.Sum64String(html)
	if _, ok := s.fingerprints[sum]; ok {
		return true
	}
	s.fingerprints[sum] = struct{}{}
	return false
}

// Result assembles the crawl result at time now.
func (s *Session) Result(now time.Time) *faqcrawl.CrawlResult {
	faqs := s.Collector.FAQs()
	return &faqcrawl.CrawlResult{
		Website: s.Website,
		FAQs:    faqs,
		Metadata: faqcrawl.CrawlMetadata{
			PagesProcessed: s.Visited.Len(),
			TotalFAQsFound: len(faqs),
			FAQPageFound:   s.FAQPageFound,
			ExtractedAt:    now.UTC(),
		},
	}
}
