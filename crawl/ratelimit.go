package crawl

import (
	"context"
	"sync"

	"github.com/fwojciec/faqcrawl"
	"golang.org/x/time/rate"
)

var _ faqcrawl.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces page fetches per host with token buckets. Limiters
// are created lazily on first use of a host and shared by every session
// using the same DomainLimiter, so parallel crawls of one site stay polite.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

// NewDomainLimiter creates a DomainLimiter allowing rps fetches per second
// to each host. A non-positive rps disables pacing.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    1,
	}
}

// Wait blocks until a fetch to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.limit == rate.Inf {
		return ctx.Err()
	}
	return d.limiter(domain).Wait(ctx)
}

func (d *DomainLimiter) limiter(domain string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.limiters[domain]
	if !ok {
		l = rate.NewLimiter(d.limit, d.burst)
		d.limiters[domain] = l
	}
	return l
}
