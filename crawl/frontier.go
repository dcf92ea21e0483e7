package crawl

import "github.com/fwojciec/faqcrawl"

// Compile-time interface verification.
var _ faqcrawl.URLFrontier = (*Frontier)(nil)

// Frontier is a first-in first-out crawl queue. A URL is queued at most once
// over the lifetime of the Frontier, even after it has been popped.
// It is not safe for concurrent use.
type Frontier struct {
	queue  []faqcrawl.CrawlTarget
	queued map[string]struct{}
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{queued: make(map[string]struct{})}
}

// Push appends target to the back of the queue.
// Returns false if the URL has been queued before.
func (f *Frontier) Push(target faqcrawl.CrawlTarget) bool {
	if _, ok := f.queued[target.URL]; ok {
		return false
	}
	f.queued[target.URL] = struct{}{}
	f.queue = append(f.queue, target)
	return true
}

// Pop removes and returns the target at the front of the queue.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (faqcrawl.CrawlTarget, bool) {
	if len(f.queue) == 0 {
		return faqcrawl.CrawlTarget{}, false
	}
	target := f.queue[0]
	f.queue[0] = faqcrawl.CrawlTarget{}
	f.queue = f.queue[1:]
	return target, true
}

// Len returns the number of queued targets.
func (f *Frontier) Len() int {
	return len(f.queue)
}
