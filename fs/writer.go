// Package fs writes crawl results to the local filesystem.
package fs

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/faqcrawl"
)

// ResultFileName converts a website URL to the name of its result file.
// Example: https://shop.example.com:8443/ → shop.example.com_8443.json
func ResultFileName(website string) (string, error) {
	u, err := url.Parse(website)
	if err != nil {
		return "", faqcrawl.Errorf(faqcrawl.EINVALID, "invalid website %q: %v", website, err)
	}
	if u.Host == "" {
		return "", faqcrawl.Errorf(faqcrawl.EINVALID, "website %q has no host", website)
	}
	return strings.ReplaceAll(u.Host, ":", "_") + ".json", nil
}

// Ensure ResultWriter implements faqcrawl.ResultWriter at compile time.
var _ faqcrawl.ResultWriter = (*ResultWriter)(nil)

// ResultWriter writes each result as an indented JSON file named after the
// website's host.
type ResultWriter struct {
	dir string
}

// NewResultWriter creates a ResultWriter that writes into dir.
func NewResultWriter(dir string) *ResultWriter {
	return &ResultWriter{dir: dir}
}

// WriteResult writes the result and returns the path of the file. The file
// is written to a temporary name first and renamed into place, so readers
// never see a partial file. An existing file for the same host is replaced.
func (w *ResultWriter) WriteResult(ctx context.Context, result *faqcrawl.CrawlResult) (string, error) {
	if err := result.Validate(); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, err := ResultFileName(result.Website)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	data = append(data, '\n')

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.dir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return "", err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", err
	}

	return path, nil
}
