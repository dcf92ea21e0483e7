package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/faqcrawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Crawls  faqcrawl.CrawlService
	Results faqcrawl.ResultService
	Writer  faqcrawl.ResultWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" env:"FAQCRAWL_VERBOSE" help:"Enable debug logging"`

	Crawl   CrawlCmd   `cmd:"" help:"Crawl websites and print their FAQs"`
	Serve   ServeCmd   `cmd:"" help:"Serve the HTTP API"`
	Results ResultsCmd `cmd:"" help:"Manage saved crawl results"`
}

// FetchFlags configure how pages are fetched.
type FetchFlags struct {
	Timeout     time.Duration `default:"30s" env:"FAQCRAWL_TIMEOUT" help:"Per-page navigation timeout"`
	IdleTimeout time.Duration `default:"8s" env:"FAQCRAWL_IDLE_TIMEOUT" help:"How long to wait for a rendered page to settle"`
	Rate        float64       `default:"0" env:"FAQCRAWL_RATE" help:"Requests per second per domain (0 = unlimited)"`
	NoBrowser   bool          `env:"FAQCRAWL_NO_BROWSER" help:"Fetch with plain HTTP instead of headless Chrome"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URLs     []string   `arg:"" name:"url" help:"Website URLs to crawl"`
	MaxPages int        `short:"n" default:"50" env:"FAQCRAWL_MAX_PAGES" help:"Maximum pages to fetch per website"`
	Parallel int        `short:"p" default:"1" env:"FAQCRAWL_PARALLEL" help:"Number of websites crawled at once"`
	Save     bool       `help:"Save results to the database"`
	Out      string     `short:"o" type:"path" help:"Also write each result as JSON into this directory"`
	Format   string     `short:"f" enum:"json,text" default:"json" help:"Output format (json, text)"`
	Fetch    FetchFlags `embed:""`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr  string     `default:":5000" env:"FAQCRAWL_ADDR" help:"Address to listen on"`
	Save  bool       `env:"FAQCRAWL_SAVE" help:"Save every result and enable the /results endpoints"`
	Fetch FetchFlags `embed:""`
}

// ResultsCmd groups the saved result subcommands.
type ResultsCmd struct {
	List   ResultsListCmd   `cmd:"" help:"List saved results"`
	Show   ResultsShowCmd   `cmd:"" help:"Show a saved result"`
	Delete ResultsDeleteCmd `cmd:"" help:"Delete a saved result"`
}

// ResultsListCmd is the "results list" subcommand.
type ResultsListCmd struct {
	Website string `help:"Only show results for this website"`
	Limit   int    `default:"20" help:"Maximum number of results"`
}

// ResultsShowCmd is the "results show" subcommand.
type ResultsShowCmd struct {
	ID     string `arg:"" help:"Result ID"`
	Format string `short:"f" enum:"json,text" default:"text" help:"Output format (json, text)"`
}

// ResultsDeleteCmd is the "results delete" subcommand.
type ResultsDeleteCmd struct {
	ID string `arg:"" help:"Result ID"`
}
