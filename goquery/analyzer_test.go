package goquery_test

import (
	"testing"

	"github.com/fwojciec/faqcrawl"
	"github.com/fwojciec/faqcrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ faqcrawl.Analyzer = (*goquery.Analyzer)(nil)

// urlSet is a map-backed faqcrawl.URLSet.
type urlSet map[string]bool

func (s urlSet) Contains(url string) bool { return s[url] }

func analyze(t *testing.T, html string) *faqcrawl.Analysis {
	t.Helper()

	page := &faqcrawl.Page{URL: "https://example.com/faq", HTML: html}
	analysis, err := goquery.NewAnalyzer().Analyze(page, "https://example.com", "example.com", nil)
	require.NoError(t, err)
	return analysis
}

func TestAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("pairs paragraphs under an FAQ heading", func(t *testing.T) {
		t.Parallel()

		analysis := analyze(t, `<html><body>
<h2>FAQ</h2>
<p>What is your return policy?</p>
<p>You may return items within 30 days of purchase for a full refund.</p>
</body></html>`)

		assert.Equal(t, 1, analysis.Sections)
		require.Len(t, analysis.Candidates, 1)
		assert.Equal(t, faqcrawl.Candidate{
			Question: "What is your return policy?",
			Answer:   "You may return items within 30 days of purchase for a full refund.",
			Strategy: faqcrawl.StrategyParagraph,
		}, analysis.Candidates[0])
	})

	t.Run("reads structured data without any FAQ section", func(t *testing.T) {
		t.Parallel()

		analysis := analyze(t, `<html><head>
<script type="application/ld+json">
{"@context": "https://schema.org", "@type": "FAQPage", "mainEntity": [
  {"@type": "Question", "name": "Do you offer gift cards?",
   "acceptedAnswer": {"@type": "Answer", "text": "Yes, in any amount."}}
]}
</script>
</head><body><p>Welcome to our shop.</p></body></html>`)

		assert.Equal(t, 0, analysis.Sections)
		require.Len(t, analysis.Candidates, 1)
		assert.Equal(t, faqcrawl.Candidate{
			Question: "Do you offer gift cards?",
			Answer:   "Yes, in any amount.",
			Strategy: faqcrawl.StrategyStructuredData,
		}, analysis.Candidates[0])
	})

	t.Run("returns structured data before section candidates", func(t *testing.T) {
		t.Parallel()

		analysis := analyze(t, `<html><body>
<h2>FAQ</h2>
<p>How do I track my parcel?</p>
<p>Use the tracking link in your confirmation email.</p>
<script type="application/ld+json">
{"@type": "FAQPage", "mainEntity": {"@type": "Question", "name": "Is checkout secure?",
 "acceptedAnswer": {"text": "All payments are encrypted."}}}
</script>
</body></html>`)

		require.Len(t, analysis.Candidates, 2)
		assert.Equal(t, faqcrawl.StrategyStructuredData, analysis.Candidates[0].Strategy)
		assert.Equal(t, faqcrawl.StrategyParagraph, analysis.Candidates[1].Strategy)
	})

	t.Run("emits duplicate accordion questions for the collector to resolve", func(t *testing.T) {
		t.Parallel()

		analysis := analyze(t, `<html><body><div class="faq">
<details><summary>How long does shipping take?</summary><p>Shipping takes three to five business days.</p></details>
<details><summary>How long does shipping take?</summary><p>International orders arrive within two weeks.</p></details>
</div></body></html>`)

		require.Len(t, analysis.Candidates, 2)

		c := faqcrawl.NewCollector()
		for _, candidate := range analysis.Candidates {
			c.Add(candidate.Question, candidate.Answer, "https://example.com/faq")
		}

		faqs := c.FAQs()
		require.Len(t, faqs, 1)
		assert.Equal(t, "How long does shipping take?", faqs[0].Question)
		assert.Equal(t, "Shipping takes three to five business days.", faqs[0].Answer)
	})

	t.Run("ignores content outside FAQ sections", func(t *testing.T) {
		t.Parallel()

		analysis := analyze(t, `<html><body>
<h2>About us</h2>
<p>What makes us different?</p>
<p>We have been roasting coffee in small batches since 1998.</p>
</body></html>`)

		assert.Equal(t, 0, analysis.Sections)
		assert.Empty(t, analysis.Candidates)
	})

	t.Run("removes scripts and iframes before extracting sections", func(t *testing.T) {
		t.Parallel()

		analysis := analyze(t, `<html><body>
<h2>FAQ</h2>
<script>var faq = "What is hidden? This text lives in a script block.";</script>
<iframe src="/embed"></iframe>
<p>Can I pick up my order?</p>
<p>Orders can be collected from our warehouse on weekdays.</p>
</body></html>`)

		require.Len(t, analysis.Candidates, 1)
		assert.Equal(t, "Can I pick up my order?", analysis.Candidates[0].Question)
	})

	t.Run("returns links with visited URLs excluded", func(t *testing.T) {
		t.Parallel()

		page := &faqcrawl.Page{
			URL:  "https://example.com/",
			HTML: `<a href="/">Home</a><a href="/faq">FAQ</a><a href="/shop">Shop</a>`,
		}
		visited := urlSet{"https://example.com/": true}

		analysis, err := goquery.NewAnalyzer().Analyze(page, "https://example.com", "example.com", visited)

		require.NoError(t, err)
		assert.Equal(t, []faqcrawl.CrawlTarget{
			{URL: "https://example.com/faq", Text: "FAQ"},
			{URL: "https://example.com/shop", Text: "Shop"},
		}, analysis.Links)
	})

	t.Run("rejects nil page", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.NewAnalyzer().Analyze(nil, "https://example.com", "example.com", nil)

		assert.Equal(t, faqcrawl.EINVALID, faqcrawl.ErrorCode(err))
	})
}
