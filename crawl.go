package faqcrawl

import (
	"context"
	"strings"
)

// DefaultMaxPages bounds a crawl when the request does not.
const DefaultMaxPages = 50

// CrawlRequest asks for the FAQs of one website.
type CrawlRequest struct {
	URL      string `json:"url"`
	MaxPages int    `json:"maxPages,omitempty"`
}

// Validate returns an error if the request contains invalid fields.
func (r *CrawlRequest) Validate() error {
	if strings.TrimSpace(r.URL) == "" {
		return Errorf(EINVALID, "URL is required")
	}
	if r.MaxPages < 0 {
		return Errorf(EINVALID, "maxPages must not be negative")
	}
	return nil
}

// Normalize trims the URL, adds an https scheme when none is given and
// applies the default page budget.
func (r *CrawlRequest) Normalize() {
	r.URL = NormalizeWebsite(r.URL)
	if r.MaxPages == 0 {
		r.MaxPages = DefaultMaxPages
	}
}

// NormalizeWebsite trims whitespace, prepends "https://" to scheme-less
// input and drops trailing slashes.
func NormalizeWebsite(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	return strings.TrimRight(raw, "/")
}

// CrawlService crawls websites for FAQ content.
type CrawlService interface {
	// Crawl runs one isolated crawl session.
	// Returns EINVALID if the request is invalid.
	Crawl(ctx context.Context, req CrawlRequest) (*CrawlResult, error)
}
