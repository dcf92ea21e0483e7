package goquery_test

import (
	"testing"

	"github.com/fwojciec/faqcrawl"
	"github.com/fwojciec/faqcrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func structuredData(t *testing.T, blocks ...string) []faqcrawl.Candidate {
	t.Helper()

	html := "<html><head>"
	for _, b := range blocks {
		html += `<script type="application/ld+json">` + b + `</script>`
	}
	html += "</head><body></body></html>"

	doc, err := goquery.Parse(html)
	require.NoError(t, err)
	return goquery.ExtractStructuredData(doc)
}

func questions(candidates []faqcrawl.Candidate) []string {
	var out []string
	for _, c := range candidates {
		out = append(out, c.Question)
	}
	return out
}

func TestExtractStructuredData(t *testing.T) {
	t.Parallel()

	t.Run("extracts questions from an FAQPage", func(t *testing.T) {
		t.Parallel()

		got := structuredData(t, `{"@type": "FAQPage", "mainEntity": [
			{"@type": "Question", "name": "Where are you based?", "acceptedAnswer": {"@type": "Answer", "text": "Berlin."}},
			{"@type": "Question", "name": "Do you ship?", "acceptedAnswer": {"@type": "Answer", "text": "Yes."}}
		]}`)

		require.Len(t, got, 2)
		assert.Equal(t, faqcrawl.Candidate{
			Question: "Where are you based?",
			Answer:   "Berlin.",
			Strategy: faqcrawl.StrategyStructuredData,
		}, got[0])
		assert.Equal(t, "Do you ship?", got[1].Question)
	})

	t.Run("ignores other schema types", func(t *testing.T) {
		t.Parallel()

		got := structuredData(t, `{"@type": "Organization", "name": "Acme"}`)

		assert.Empty(t, got)
	})

	t.Run("skips malformed blocks and keeps reading", func(t *testing.T) {
		t.Parallel()

		got := structuredData(t,
			`{"@type": "FAQPage", "mainEntity": [`,
			`{"@type": "FAQPage", "mainEntity": [{"@type": "Question", "name": "Is it free?", "acceptedAnswer": {"text": "Yes."}}]}`,
		)

		assert.Equal(t, []string{"Is it free?"}, questions(got))
	})

	t.Run("reads top-level arrays", func(t *testing.T) {
		t.Parallel()

		got := structuredData(t, `[
			{"@type": "WebSite", "name": "Acme"},
			{"@type": "FAQPage", "mainEntity": [{"@type": "Question", "name": "Can I return items?", "acceptedAnswer": {"text": "Within 30 days."}}]}
		]`)

		assert.Equal(t, []string{"Can I return items?"}, questions(got))
	})

	t.Run("reads graph containers", func(t *testing.T) {
		t.Parallel()

		got := structuredData(t, `{"@context": "https://schema.org", "@graph": [
			{"@type": "WebPage"},
			{"@type": "FAQPage", "mainEntity": [{"@type": "Question", "name": "Do you have a store?", "acceptedAnswer": {"text": "Two, in Lyon."}}]}
		]}`)

		assert.Equal(t, []string{"Do you have a store?"}, questions(got))
	})

	t.Run("accepts type arrays and a single main entity", func(t *testing.T) {
		t.Parallel()

		got := structuredData(t, `{"@type": ["WebPage", "FAQPage"], "mainEntity":
			{"@type": "Question", "name": "Is there a student discount?", "acceptedAnswer": {"text": "Ten percent."}}}`)

		assert.Equal(t, []string{"Is there a student discount?"}, questions(got))
	})

	t.Run("uses the first of several accepted answers", func(t *testing.T) {
		t.Parallel()

		got := structuredData(t, `{"@type": "FAQPage", "mainEntity": [{"@type": "Question", "name": "What sizes exist?",
			"acceptedAnswer": [{"text": "Small and large."}, {"text": "Medium."}]}]}`)

		require.Len(t, got, 1)
		assert.Equal(t, "Small and large.", got[0].Answer)
	})

	t.Run("reduces answer markup to text", func(t *testing.T) {
		t.Parallel()

		got := structuredData(t, `{"@type": "FAQPage", "mainEntity": [{"@type": "Question", "name": "Do you ship abroad?",
			"acceptedAnswer": {"text": "<p>Yes.</p><p>We ship <strong>worldwide</strong>.</p>"}}]}`)

		require.Len(t, got, 1)
		assert.Equal(t, "Yes. We ship worldwide.", got[0].Answer)
	})

	t.Run("skips entries without question or answer", func(t *testing.T) {
		t.Parallel()

		got := structuredData(t, `{"@type": "FAQPage", "mainEntity": [
			{"@type": "Question", "name": "", "acceptedAnswer": {"text": "Orphan answer."}},
			{"@type": "Question", "name": "Orphan question?"},
			{"@type": "Answer", "name": "Not a question", "acceptedAnswer": {"text": "Nope."}}
		]}`)

		assert.Empty(t, got)
	})
}
