package faqcrawl

import (
	"net/url"
	"regexp"
	"strings"
)

// skipURLRe matches tracking parameters, pseudo-schemes, fragments and
// non-HTML file extensions.
var skipURLRe = regexp.MustCompile(`(?i)utm_|fbclid|gclid|#|javascript:|mailto:|tel:|\.(pdf|jpg|png|gif|svg|css|js|zip|mp4|mp3|doc|xls)$`)

// CrawlTarget is a link discovered on a page together with its anchor text.
type CrawlTarget struct {
	URL  string
	Text string
}

// URLSet reports membership of canonical URLs.
type URLSet interface {
	Contains(url string) bool
}

// NormalizeURL resolves rawURL against baseURL and returns its canonical
// form: scheme://host/path without query or fragment and without trailing
// slashes. The root path is kept as "/" and escaped path segments such as
// %2F stay escaped.
func NormalizeURL(rawURL, baseURL string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid base URL %q: %v", baseURL, err)
	}
	ref, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}

	resolved := base.ResolveReference(ref)
	path := strings.TrimRight(resolved.Path, "/")
	if path == "" {
		path = "/"
	}

	u := url.URL{
		Scheme:  resolved.Scheme,
		Host:    resolved.Host,
		Path:    path,
		RawPath: strings.TrimRight(resolved.RawPath, "/"),
	}
	if resolved.Opaque != "" {
		u.Path = ""
		u.Opaque = resolved.Opaque
	}
	return u.String(), nil
}

// IsValidInternal reports whether rawURL belongs to the crawl space of
// domain: an http(s) URL on the same host, not a tracking or asset link, at
// most one path segment deep.
func IsValidInternal(rawURL, domain string) bool {
	if rawURL == "" {
		return false
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	if skipURLRe.MatchString(rawURL) {
		return false
	}
	if u.Host != "" && u.Host != domain {
		return false
	}
	return PathDepth(u.EscapedPath()) <= 1
}

// PathDepth returns the number of non-empty segments in a URL path.
func PathDepth(path string) int {
	var n int
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			n++
		}
	}
	return n
}

// Domain returns the host (including port) of rawURL.
func Domain(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Host == "" {
		return "", Errorf(EINVALID, "URL %q has no host", rawURL)
	}
	return u.Host, nil
}
