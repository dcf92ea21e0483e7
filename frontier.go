package faqcrawl

// URLFrontier manages a crawl queue with deduplication.
type URLFrontier interface {
	// Push adds a target to the back of the queue.
	// Returns false if the URL has already been queued.
	Push(target CrawlTarget) bool

	// Pop removes and returns the target at the front of the queue.
	// Returns false if the frontier is empty.
	Pop() (CrawlTarget, bool)

	// Len returns the number of targets in the queue.
	Len() int
}
