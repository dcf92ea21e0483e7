package faqcrawl

import (
	"fmt"
	"strings"
)

// FormatFAQs formats FAQs for terminal display.
// Each FAQ becomes a question heading followed by its answer and source.
// FAQs are separated by blank lines.
func FormatFAQs(faqs []FAQ) string {
	if len(faqs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(faqs))
	for _, faq := range faqs {
		parts = append(parts, "## "+faq.Question+"\n"+faq.Answer+"\nSource: "+faq.SourceURL)
	}

	return strings.Join(parts, "\n\n")
}

// FormatResult formats a crawl result with a one-line summary header.
func FormatResult(result *CrawlResult) string {
	if result == nil {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", result.Website)
	fmt.Fprintf(&b, "%d FAQs from %d pages", result.Metadata.TotalFAQsFound, result.Metadata.PagesProcessed)
	if result.Metadata.FAQPageFound {
		b.WriteString(" (FAQ page found)")
	}
	b.WriteString("\n")

	if body := FormatFAQs(result.FAQs); body != "" {
		b.WriteString("\n")
		b.WriteString(body)
		b.WriteString("\n")
	}

	return b.String()
}
