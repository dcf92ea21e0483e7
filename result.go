package faqcrawl

import (
	"context"
	"time"
)

// SavedResult is a persisted crawl result.
type SavedResult struct {
	ID      string       `json:"id"`
	SavedAt time.Time    `json:"savedAt"`
	Result  *CrawlResult `json:"result"`
}

// ResultService represents a service for managing saved crawl results.
type ResultService interface {
	// SaveResult persists a crawl result and returns it with its new ID.
	SaveResult(ctx context.Context, result *CrawlResult) (*SavedResult, error)

	// FindResultByID retrieves a saved result by ID.
	// Returns ENOTFOUND if the result does not exist.
	FindResultByID(ctx context.Context, id string) (*SavedResult, error)

	// FindResults retrieves saved results matching the filter, newest first.
	FindResults(ctx context.Context, filter ResultFilter) ([]*SavedResult, error)

	// DeleteResult permanently removes a saved result and its FAQs.
	// Returns ENOTFOUND if the result does not exist.
	DeleteResult(ctx context.Context, id string) error
}

// ResultFilter represents a filter for FindResults.
type ResultFilter struct {
	Website *string `json:"website"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ResultWriter writes crawl results to an output destination.
type ResultWriter interface {
	WriteResult(ctx context.Context, result *CrawlResult) (string, error)
}

// Validate returns an error if the result cannot be persisted.
func (r *CrawlResult) Validate() error {
	if r == nil {
		return Errorf(EINVALID, "result is required")
	}
	if r.Website == "" {
		return Errorf(EINVALID, "result website is required")
	}
	return nil
}
