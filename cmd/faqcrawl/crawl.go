package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/fwojciec/faqcrawl"
	"golang.org/x/sync/errgroup"
)

// Run executes the crawl command. Websites are crawled up to Parallel at a
// time; results are printed in argument order. A failed website is reported
// on stderr without stopping the others.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	results := make([]*faqcrawl.CrawlResult, len(c.URLs))
	errs := make([]error, len(c.URLs))

	var g errgroup.Group
	g.SetLimit(max(c.Parallel, 1))
	for i, url := range c.URLs {
		g.Go(func() error {
			results[i], errs[i] = deps.Crawls.Crawl(deps.Ctx, faqcrawl.CrawlRequest{
				URL:      url,
				MaxPages: c.MaxPages,
			})
			return nil
		})
	}
	_ = g.Wait()

	var failed []error
	var done []*faqcrawl.CrawlResult
	for i, err := range errs {
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", c.URLs[i], faqcrawl.ErrorMessage(err))
			failed = append(failed, err)
			continue
		}
		if err := c.store(deps, results[i]); err != nil {
			failed = append(failed, err)
		}
		done = append(done, results[i])
	}

	if err := c.print(deps, done); err != nil {
		return err
	}

	if len(failed) > 0 {
		return fmt.Errorf("%d of %d websites failed: %w", len(failed), len(c.URLs), errors.Join(failed...))
	}
	return nil
}

// store saves and writes a result as requested by the flags.
func (c *CrawlCmd) store(deps *Dependencies, result *faqcrawl.CrawlResult) error {
	if c.Save && deps.Results != nil {
		saved, err := deps.Results.SaveResult(deps.Ctx, result)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: saving %s: %s\n", result.Website, faqcrawl.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Saved %s as %s\n", result.Website, saved.ID)
	}
	if deps.Writer != nil {
		path, err := deps.Writer.WriteResult(deps.Ctx, result)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: writing %s: %s\n", result.Website, faqcrawl.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "Wrote %s\n", path)
	}
	return nil
}

// print writes results to stdout. A single JSON result is printed as an
// object, several as an array.
func (c *CrawlCmd) print(deps *Dependencies, results []*faqcrawl.CrawlResult) error {
	if len(results) == 0 {
		return nil
	}

	if c.Format == "text" {
		parts := make([]string, 0, len(results))
		for _, r := range results {
			parts = append(parts, faqcrawl.FormatResult(r))
		}
		fmt.Fprint(deps.Stdout, strings.Join(parts, "\n"))
		return nil
	}

	var v any = results
	if len(c.URLs) == 1 {
		v = results[0]
	}
	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
