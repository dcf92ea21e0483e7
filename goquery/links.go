package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/faqcrawl"
)

// ExtractLinks returns the crawlable internal links of the document in
// document order. Each href is normalized against rootURL and validated for
// domain. Links are deduplicated by normalized URL, keeping the first
// occurrence, and URLs contained in visited are dropped. visited may be nil.
func ExtractLinks(doc *goquery.Document, rootURL, domain string, visited faqcrawl.URLSet) []faqcrawl.CrawlTarget {
	seen := make(map[string]bool)
	var links []faqcrawl.CrawlTarget

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || strings.TrimSpace(href) == "" {
			return
		}

		normalized, err := faqcrawl.NormalizeURL(href, rootURL)
		if err != nil {
			return
		}
		if !faqcrawl.IsValidInternal(normalized, domain) {
			return
		}
		if seen[normalized] || (visited != nil && visited.Contains(normalized)) {
			return
		}

		seen[normalized] = true
		links = append(links, faqcrawl.CrawlTarget{
			URL:  normalized,
			Text: textOf(sel),
		})
	})

	return links
}
