package rod

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/launcher/flags"
)

// DefaultRecycleAfter is the number of pages a browser serves before it is
// replaced.
const DefaultRecycleAfter = 75

// BrowserManager owns a headless Chrome process and replaces it after a
// fixed number of pages, since Chrome's memory baseline only grows.
//
// BrowserManager is safe for concurrent use.
type BrowserManager struct {
	browser      *rod.Browser
	launcher     *launcher.Launcher
	pageCount    atomic.Int64
	recycleAfter int64
	mu           sync.Mutex
	closed       atomic.Bool
}

// ManagerOption configures a BrowserManager.
type ManagerOption func(*BrowserManager)

// WithPageLimit sets how many pages a browser serves before it is
// replaced. Defaults to DefaultRecycleAfter.
func WithPageLimit(n int64) ManagerOption {
	return func(bm *BrowserManager) {
		bm.recycleAfter = n
	}
}

// NewBrowserManager launches a headless browser.
// Close must be called when the BrowserManager is no longer needed.
func NewBrowserManager(opts ...ManagerOption) (*BrowserManager, error) {
	bm := &BrowserManager{
		recycleAfter: DefaultRecycleAfter,
	}
	for _, opt := range opts {
		opt(bm)
	}

	if err := bm.launch(); err != nil {
		return nil, err
	}

	return bm, nil
}

// Browser returns the current browser, replacing it first when it has served
// its share of pages. Callers report each page with PageDone.
func (bm *BrowserManager) Browser() *rod.Browser {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.pageCount.Load() >= bm.recycleAfter {
		bm.recycle()
	}

	return bm.browser
}

// PageDone counts a processed page toward the recycling threshold.
func (bm *BrowserManager) PageDone() {
	bm.pageCount.Add(1)
}

// Closed reports whether Close has been called.
func (bm *BrowserManager) Closed() bool {
	return bm.closed.Load()
}

// Close shuts the browser down. It is safe to call more than once.
func (bm *BrowserManager) Close() error {
	if !bm.closed.CompareAndSwap(false, true) {
		return nil
	}

	bm.mu.Lock()
	defer bm.mu.Unlock()

	return bm.shutdown()
}

// launch starts a browser that looks like a regular desktop session to
// bot checks. Must be called with mu held or before bm is shared.
func (bm *BrowserManager) launch() error {
	l := launcher.New().
		Set(flags.Flag("disable-blink-features"), "AutomationControlled").
		Set("disable-dev-shm-usage").
		Set("disable-gpu").
		NoSandbox(true).
		Leakless(true).
		Headless(true)

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	bm.browser = browser
	bm.launcher = l
	return nil
}

// shutdown closes the browser and kills its process.
// Must be called with mu held.
func (bm *BrowserManager) shutdown() error {
	var err error
	if bm.browser != nil {
		err = bm.browser.Close()
		bm.browser = nil
	}
	if bm.launcher != nil {
		bm.launcher.Kill()
		bm.launcher = nil
	}
	return err
}

// recycle swaps in a fresh browser. The old one is kept if the launch fails.
// Must be called with mu held.
func (bm *BrowserManager) recycle() {
	oldBrowser, oldLauncher := bm.browser, bm.launcher
	bm.browser, bm.launcher = nil, nil

	if err := bm.launch(); err != nil {
		bm.browser, bm.launcher = oldBrowser, oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	bm.pageCount.Store(0)
}

// LauncherPID returns the process ID of the running browser, or 0.
func (bm *BrowserManager) LauncherPID() int {
	bm.mu.Lock()
	defer bm.mu.Unlock()
	if bm.launcher == nil {
		return 0
	}
	return bm.launcher.PID()
}
