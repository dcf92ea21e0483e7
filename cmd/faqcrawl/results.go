package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/faqcrawl"
)

// Run executes the results list command.
func (c *ResultsListCmd) Run(deps *Dependencies) error {
	filter := faqcrawl.ResultFilter{Limit: c.Limit}
	if c.Website != "" {
		website := faqcrawl.NormalizeWebsite(c.Website)
		filter.Website = &website
	}

	results, err := deps.Results.FindResults(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqcrawl.ErrorMessage(err))
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No saved results. Use 'faqcrawl crawl --save' to save one.")
		return nil
	}

	for _, r := range results {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %d FAQs\n",
			r.ID, r.SavedAt.Format("2006-01-02 15:04"), r.Result.Website, len(r.Result.FAQs))
	}
	return nil
}

// Run executes the results show command.
func (c *ResultsShowCmd) Run(deps *Dependencies) error {
	saved, err := deps.Results.FindResultByID(deps.Ctx, c.ID)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqcrawl.ErrorMessage(err))
		return err
	}

	if c.Format == "json" {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(saved)
	}

	fmt.Fprint(deps.Stdout, faqcrawl.FormatResult(saved.Result))
	return nil
}

// Run executes the results delete command.
func (c *ResultsDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Results.DeleteResult(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", faqcrawl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted result %s\n", c.ID)
	return nil
}
