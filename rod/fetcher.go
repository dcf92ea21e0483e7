// Package rod implements faqcrawl.Fetcher with a headless Chrome browser
// driven by go-rod, so that pages rendered by JavaScript can be read.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/faqcrawl"
	"github.com/go-rod/rod/lib/proto"
)

const (
	// DefaultNavigationTimeout bounds navigation and load of a single page.
	DefaultNavigationTimeout = 30 * time.Second

	// DefaultIdleTimeout bounds the wait for the page to settle after load.
	DefaultIdleTimeout = 8 * time.Second

	viewportWidth  = 1920
	viewportHeight = 1080

	// networkQuietPeriod is how long no request may be in flight before the
	// network counts as idle.
	networkQuietPeriod = 500 * time.Millisecond
)

// Ensure Fetcher implements faqcrawl.Fetcher at compile time.
var _ faqcrawl.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager      *BrowserManager
	timeout      time.Duration
	idleTimeout  time.Duration
	userAgent    string
	recycleAfter int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the navigation timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithIdleTimeout sets how long to wait for the page to go idle after load.
// Hitting the limit is not an error.
func WithIdleTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.idleTimeout = d
	}
}

// WithUserAgent overrides the browser's User-Agent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRecycleAfter sets how many pages the browser serves before it is
// restarted.
func WithRecycleAfter(n int64) Option {
	return func(f *Fetcher) {
		f.recycleAfter = n
	}
}

// NewFetcher launches a headless browser. Close must be called when the
// Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{
		timeout:      DefaultNavigationTimeout,
		idleTimeout:  DefaultIdleTimeout,
		userAgent:    faqcrawl.DefaultUserAgent,
		recycleAfter: DefaultRecycleAfter,
	}
	for _, opt := range opts {
		opt(f)
	}

	manager, err := NewBrowserManager(WithPageLimit(f.recycleAfter))
	if err != nil {
		return nil, err
	}
	f.manager = manager

	return f, nil
}

// Fetch navigates to url, waits for the page to settle and returns the
// rendered HTML. A document response with status 400 or above is an error.
// Failing to open a page means the browser itself is unusable and is
// reported as EUNAVAILABLE.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.manager.Closed() {
		return "", faqcrawl.Errorf(faqcrawl.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", faqcrawl.Errorf(faqcrawl.EUNAVAILABLE, "browser cannot open page: %v", err)
	}
	defer page.Close()
	defer f.manager.PageDone()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()
	page = page.Context(ctx)

	if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
		return "", fmt.Errorf("setting user agent: %w", err)
	}
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             viewportWidth,
		Height:            viewportHeight,
		DeviceScaleFactor: 1,
	}); err != nil {
		return "", fmt.Errorf("setting viewport: %w", err)
	}

	// The listener subscribes before navigation so the main document's
	// response cannot be missed.
	status := make(chan int, 1)
	waitStatus := page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument || e.FrameID != page.FrameID {
			return false
		}
		status <- e.Response.Status
		return true
	})
	go waitStatus()

	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("waiting for %s to load: %w", url, err)
	}

	select {
	case code := <-status:
		if code >= 400 {
			return "", fmt.Errorf("HTTP %d for %s", code, url)
		}
	case <-ctx.Done():
		return "", ctx.Err()
	}

	// Pages that never go network idle are still read.
	idleCtx, cancelIdle := context.WithTimeout(ctx, f.idleTimeout)
	defer cancelIdle()
	page.Context(idleCtx).WaitRequestIdle(networkQuietPeriod, nil, nil, nil)()

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("reading HTML of %s: %w", url, err)
	}

	return html, nil
}

// LauncherPID returns the process ID of the browser, or 0 once closed.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Close shuts the browser down. It is safe to call more than once.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}
