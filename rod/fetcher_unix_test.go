//go:build integration && !windows

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/faqcrawl/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// processAlive reports whether pid exists. Signal 0 performs the existence
// check without delivering anything.
func processAlive(pid int) bool {
	return syscall.Kill(pid, syscall.Signal(0)) == nil
}

func TestFetcher_BrowserProcess(t *testing.T) {
	t.Parallel()

	t.Run("kills the browser process on close", func(t *testing.T) {
		t.Parallel()

		fetcher, err := rod.NewFetcher(rod.WithIdleTimeout(time.Second))
		require.NoError(t, err)

		pid := fetcher.LauncherPID()
		require.NotZero(t, pid)
		require.True(t, processAlive(pid))

		require.NoError(t, fetcher.Close())

		assert.Zero(t, fetcher.LauncherPID())
		assert.Eventually(t, func() bool { return !processAlive(pid) }, 5*time.Second, 50*time.Millisecond)
	})

	t.Run("kills the replaced browser process after recycling", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`<html><body>ok</body></html>`))
		}))
		defer srv.Close()

		fetcher, err := rod.NewFetcher(rod.WithRecycleAfter(1), rod.WithIdleTimeout(time.Second))
		require.NoError(t, err)
		defer fetcher.Close()

		first := fetcher.LauncherPID()
		_, err = fetcher.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)
		_, err = fetcher.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)

		second := fetcher.LauncherPID()
		require.NotZero(t, second)
		assert.NotEqual(t, first, second)
		assert.True(t, processAlive(second))
		assert.Eventually(t, func() bool { return !processAlive(first) }, 5*time.Second, 50*time.Millisecond)
	})
}
