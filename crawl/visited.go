package crawl

import (
	"github.com/fwojciec/faqcrawl"
	"github.com/fwojciec/faqcrawl/bloom"
)

// visitedFalsePositiveRate sizes the Bloom filter in front of the exact set.
const visitedFalsePositiveRate = 0.01

var _ faqcrawl.URLSet = (*VisitedSet)(nil)

// VisitedSet holds the canonical URLs a session has fetched or claimed.
// Lookups consult a Bloom filter first and fall back to an exact set only
// on a possible hit. It only grows.
type VisitedSet struct {
	filter *bloom.Filter
	urls   map[string]struct{}
}

// NewVisitedSet creates a VisitedSet sized for capacity URLs.
func NewVisitedSet(capacity int) *VisitedSet {
	return &VisitedSet{
		filter: bloom.NewFilter(uint(max(capacity, 1)), visitedFalsePositiveRate),
		urls:   make(map[string]struct{}, capacity),
	}
}

// Add marks url as visited. It reports whether url was new.
func (v *VisitedSet) Add(url string) bool {
	if v.filter.TestAndAdd(url) {
		if _, ok := v.urls[url]; ok {
			return false
		}
	}
	v.urls[url] = struct{}{}
	return true
}

// Contains reports whether url has been visited.
func (v *VisitedSet) Contains(url string) bool {
	if !v.filter.MayContain(url) {
		return false
	}
	_, ok := v.urls[url]
	return ok
}

// Len returns the number of visited URLs.
func (v *VisitedSet) Len() int {
	return len(v.urls)
}
