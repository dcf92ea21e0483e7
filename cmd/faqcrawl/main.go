package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/faqcrawl"
	"github.com/fwojciec/faqcrawl/crawl"
	"github.com/fwojciec/faqcrawl/fs"
	"github.com/fwojciec/faqcrawl/goquery"
	faqhttp "github.com/fwojciec/faqcrawl/http"
	"github.com/fwojciec/faqcrawl/rod"
	faqslog "github.com/fwojciec/faqcrawl/slog"
	"github.com/fwojciec/faqcrawl/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the result service. Opened only by commands
	// that read or save results.
	DB *sqlite.DB

	closers []func() error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var firstErr error
	for i := len(m.closers) - 1; i >= 0; i-- {
		if err := m.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	if m.DB != nil {
		if err := m.DB.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		m.DB = nil
	}
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("faqcrawl"),
		kong.Description("Crawl websites and extract their frequently asked questions."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'faqcrawl --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	command := kongCtx.Command()

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	defer m.Close()

	needsDB := strings.HasPrefix(command, "results") ||
		(strings.HasPrefix(command, "crawl") && cli.Crawl.Save) ||
		(command == "serve" && cli.Serve.Save)
	if needsDB {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set FAQCRAWL_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		deps.Results = sqlite.NewResultService(m.DB)
	}

	switch {
	case strings.HasPrefix(command, "crawl"):
		if cli.Crawl.Out != "" {
			deps.Writer = fs.NewResultWriter(cli.Crawl.Out)
		}
		deps.Crawls = m.newCrawlService(cli.Crawl.Fetch, deps)
	case command == "serve":
		deps.Crawls = m.newCrawlService(cli.Serve.Fetch, deps)
	}

	return kongCtx.Run(deps)
}

// newCrawlService wires the crawler. The browser fetcher is preferred; the
// HTTP fetcher is used directly when the browser is disabled or cannot be
// launched, and otherwise serves as the fallback.
func (m *Main) newCrawlService(flags FetchFlags, deps *Dependencies) faqcrawl.CrawlService {
	httpFetcher := faqhttp.NewFetcher(faqhttp.WithTimeout(flags.Timeout))

	crawler := &crawl.Crawler{
		Fetcher:     faqslog.NewLoggingFetcher(httpFetcher, deps.Logger),
		Analyzer:    goquery.NewAnalyzer(),
		RateLimiter: crawl.NewDomainLimiter(flags.Rate),
		Logger:      deps.Logger,
	}

	if !flags.NoBrowser {
		browser, err := rod.NewFetcher(
			rod.WithFetchTimeout(flags.Timeout),
			rod.WithIdleTimeout(flags.IdleTimeout),
		)
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium could not be started; falling back to plain HTTP (use --no-browser to skip the browser)")
			deps.Logger.Debug("browser unavailable", "err", err)
		} else {
			m.closers = append(m.closers, browser.Close)
			crawler.Fallback = crawler.Fetcher
			crawler.Fetcher = faqslog.NewLoggingFetcher(browser, deps.Logger)
		}
	}

	return faqslog.NewLoggingCrawlService(crawler, deps.Logger)
}

func defaultDBPath() string {
	if path := os.Getenv("FAQCRAWL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "faqcrawl.db"
	}
	dir := filepath.Join(home, ".faqcrawl")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "faqcrawl.db")
}
