package faqcrawl

import "strings"

var (
	faqURLPatterns = []string{
		"/faq", "/faqs", "/frequently-asked", "/help/faq", "/support/faq",
		"faq.", "/questions", "/q-and-a", "/qa",
	}

	faqLinkTextPatterns = []string{
		"faq", "frequently asked", "questions", "q&a", "help center",
	}

	faqHeadingPatterns = []string{
		"faq", "faqs", "f.a.q", "f.a.q.s",
		"frequently asked questions", "frequently asked",
		"common questions", "questions & answers", "questions and answers",
		"q&a", "q & a", "have questions", "got questions",
	}
)

// IsFAQLink reports whether a link points to FAQ content, judged by its URL
// path or its anchor text.
func IsFAQLink(rawURL, text string) bool {
	return containsAny(strings.ToLower(rawURL), faqURLPatterns) ||
		containsAny(strings.ToLower(text), faqLinkTextPatterns)
}

// IsFAQHeading reports whether heading text, or class/id attribute text,
// announces FAQ content.
func IsFAQHeading(text string) bool {
	return containsAny(strings.ToLower(strings.TrimSpace(text)), faqHeadingPatterns)
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
