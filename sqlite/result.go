package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/faqcrawl"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ faqcrawl.ResultService = (*ResultService)(nil)

// ResultService implements faqcrawl.ResultService using SQLite.
type ResultService struct {
	db *DB

	// Now returns the save time. Defaults to time.Now.
	Now func() time.Time
}

// NewResultService creates a new ResultService.
func NewResultService(db *DB) *ResultService {
	return &ResultService{db: db, Now: time.Now}
}

// SaveResult stores the result and its FAQs in a single transaction. FAQ
// order is preserved.
func (s *ResultService) SaveResult(ctx context.Context, result *faqcrawl.CrawlResult) (*faqcrawl.SavedResult, error) {
	if err := result.Validate(); err != nil {
		return nil, err
	}

	saved := &faqcrawl.SavedResult{
		ID:      uuid.New().String(),
		SavedAt: s.Now().UTC(),
		Result:  result,
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO results (id, website, pages_processed, total_faqs, faq_page_found, extracted_at, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, saved.ID, result.Website, result.Metadata.PagesProcessed, result.Metadata.TotalFAQsFound,
		result.Metadata.FAQPageFound, formatTime(result.Metadata.ExtractedAt), formatTime(saved.SavedAt)); err != nil {
		return nil, err
	}

	for i, faq := range result.FAQs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO faqs (result_id, position, question, answer, source_url)
			VALUES (?, ?, ?, ?, ?)
		`, saved.ID, i, faq.Question, faq.Answer, faq.SourceURL); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return saved, nil
}

// FindResultByID retrieves a saved result with its FAQs.
func (s *ResultService) FindResultByID(ctx context.Context, id string) (*faqcrawl.SavedResult, error) {
	saved, err := scanResult(s.db.QueryRowContext(ctx, `
		SELECT id, website, pages_processed, total_faqs, faq_page_found, extracted_at, saved_at
		FROM results
		WHERE id = ?
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, faqcrawl.Errorf(faqcrawl.ENOTFOUND, "result not found")
	}
	if err != nil {
		return nil, err
	}

	if err := s.attachFAQs(ctx, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

// FindResults retrieves saved results matching the filter, newest first.
func (s *ResultService) FindResults(ctx context.Context, filter faqcrawl.ResultFilter) ([]*faqcrawl.SavedResult, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, website, pages_processed, total_faqs, faq_page_found, extracted_at, saved_at FROM results WHERE 1=1")

	if filter.Website != nil {
		query.WriteString(" AND website = ?")
		args = append(args, *filter.Website)
	}

	query.WriteString(" ORDER BY saved_at DESC, rowid DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*faqcrawl.SavedResult
	for rows.Next() {
		saved, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, saved)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, saved := range results {
		if err := s.attachFAQs(ctx, saved); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// DeleteResult permanently removes a saved result. Its FAQs go with it.
func (s *ResultService) DeleteResult(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM results WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return faqcrawl.Errorf(faqcrawl.ENOTFOUND, "result not found")
	}
	return nil
}

func (s *ResultService) attachFAQs(ctx context.Context, saved *faqcrawl.SavedResult) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT question, answer, source_url
		FROM faqs
		WHERE result_id = ?
		ORDER BY position
	`, saved.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	faqs := []faqcrawl.FAQ{}
	for rows.Next() {
		var faq faqcrawl.FAQ
		if err := rows.Scan(&faq.Question, &faq.Answer, &faq.SourceURL); err != nil {
			return err
		}
		faqs = append(faqs, faq)
	}
	saved.Result.FAQs = faqs
	return rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (*faqcrawl.SavedResult, error) {
	var (
		saved                faqcrawl.SavedResult
		result               faqcrawl.CrawlResult
		extractedAt, savedAt string
	)
	if err := row.Scan(&saved.ID, &result.Website, &result.Metadata.PagesProcessed,
		&result.Metadata.TotalFAQsFound, &result.Metadata.FAQPageFound, &extractedAt, &savedAt); err != nil {
		return nil, err
	}

	var err error
	if result.Metadata.ExtractedAt, err = parseRFC3339(extractedAt, "extracted_at"); err != nil {
		return nil, err
	}
	if saved.SavedAt, err = parseRFC3339(savedAt, "saved_at"); err != nil {
		return nil, err
	}

	saved.Result = &result
	return &saved, nil
}
