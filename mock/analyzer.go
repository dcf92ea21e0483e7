package mock

import "github.com/fwojciec/faqcrawl"

var _ faqcrawl.Analyzer = (*Analyzer)(nil)

// Analyzer is a mock implementation of faqcrawl.Analyzer.
type Analyzer struct {
	AnalyzeFn func(page *faqcrawl.Page, rootURL, domain string, visited faqcrawl.URLSet) (*faqcrawl.Analysis, error)
}

func (a *Analyzer) Analyze(page *faqcrawl.Page, rootURL, domain string, visited faqcrawl.URLSet) (*faqcrawl.Analysis, error) {
	return a.AnalyzeFn(page, rootURL, domain, visited)
}
