package faqcrawl

// Page is a fetched document.
type Page struct {
	// URL is the canonical URL the page was fetched from.
	URL string

	// HTML is the raw markup as returned by the Fetcher.
	HTML string
}

// Strategy names the extraction strategy that produced a Candidate.
type Strategy string

// Extraction strategies, in the order they are applied.
const (
	StrategyStructuredData Strategy = "jsonld"
	StrategyAccordion      Strategy = "details"
	StrategyContainer      Strategy = "container"
	StrategyHeading        Strategy = "heading"
	StrategyDefinitionList Strategy = "dl"
	StrategyMarker         Strategy = "marker"
	StrategyParagraph      Strategy = "paragraph"
)

// Candidate is a raw question/answer pair emitted by an extraction strategy.
// Text has been normalized but not yet validated or deduplicated.
type Candidate struct {
	Question string
	Answer   string
	Strategy Strategy
}

// Analysis is everything extracted from a single page.
type Analysis struct {
	// Links are valid internal crawl targets in document order, deduplicated
	// by canonical URL.
	Links []CrawlTarget

	// Candidates are question/answer pairs in discovery order: structured
	// data first, then each FAQ section in document order.
	Candidates []Candidate

	// Sections is the number of FAQ sections located on the page.
	Sections int
}

// Analyzer parses a page and extracts crawl targets and FAQ candidates.
type Analyzer interface {
	// Analyze parses the page. Relative links are resolved against rootURL,
	// and only links on domain are returned. URLs in visited are skipped;
	// visited may be nil.
	Analyze(page *Page, rootURL, domain string, visited URLSet) (*Analysis, error)
}
