package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/faqcrawl"
)

// Ensure Analyzer implements faqcrawl.Analyzer.
var _ faqcrawl.Analyzer = (*Analyzer)(nil)

// nonContentSelector matches subtrees removed before links and sections are
// extracted.
const nonContentSelector = "script, style, noscript, iframe"

// Analyzer extracts crawl targets and FAQ candidates from HTML using goquery.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze parses the page and runs every extraction step over it. Structured
// data is read from the raw markup first; script, style, noscript and iframe
// subtrees are then removed before links and FAQ sections are extracted.
func (a *Analyzer) Analyze(page *faqcrawl.Page, rootURL, domain string, visited faqcrawl.URLSet) (*faqcrawl.Analysis, error) {
	if page == nil {
		return nil, faqcrawl.Errorf(faqcrawl.EINVALID, "page is required")
	}

	doc, err := Parse(page.HTML)
	if err != nil {
		return nil, err
	}

	analysis := &faqcrawl.Analysis{
		Candidates: ExtractStructuredData(doc),
	}

	doc.Find(nonContentSelector).Remove()

	analysis.Links = ExtractLinks(doc, rootURL, domain, visited)

	sections := FindSections(doc)
	analysis.Sections = len(sections)
	for _, section := range sections {
		analysis.Candidates = append(analysis.Candidates, ExtractSection(section)...)
	}

	return analysis, nil
}

// Parse parses HTML into a goquery document.
func Parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, faqcrawl.Errorf(faqcrawl.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}
