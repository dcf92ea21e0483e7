package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/faqcrawl"
	"github.com/fwojciec/faqcrawl/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultFileName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		website string
		want    string
		wantErr bool
	}{
		{
			name:    "host only",
			website: "https://example.com",
			want:    "example.com.json",
		},
		{
			name:    "ignores path and query",
			website: "https://shop.example.com/help?x=1",
			want:    "shop.example.com.json",
		},
		{
			name:    "replaces port separator",
			website: "http://127.0.0.1:8080",
			want:    "127.0.0.1_8080.json",
		},
		{
			name:    "missing host",
			website: "example.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := fs.ResultFileName(tt.website)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, faqcrawl.EINVALID, faqcrawl.ErrorCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResultWriter_WriteResult(t *testing.T) {
	t.Parallel()

	result := &faqcrawl.CrawlResult{
		Website: "https://example.com",
		FAQs: []faqcrawl.FAQ{
			{Question: "Do you ship internationally?", Answer: "Yes, to over forty countries.", SourceURL: "https://example.com/faq"},
		},
		Metadata: faqcrawl.CrawlMetadata{
			PagesProcessed: 2,
			TotalFAQsFound: 1,
			FAQPageFound:   true,
			ExtractedAt:    time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	t.Run("writes indented JSON named after host", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewResultWriter(dir)

		path, err := w.WriteResult(context.Background(), result)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "example.com.json"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n  \"website\": \"https://example.com\"")
		assert.Contains(t, string(data), "\"faqPageFound\": true")

		var got faqcrawl.CrawlResult
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, result.FAQs, got.FAQs)
		assert.Equal(t, result.Metadata, got.Metadata)
	})

	t.Run("creates missing directories", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "nested", "out")
		w := fs.NewResultWriter(dir)

		path, err := w.WriteResult(context.Background(), result)
		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("replaces existing file without leaving temporary files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewResultWriter(dir)

		_, err := w.WriteResult(context.Background(), &faqcrawl.CrawlResult{Website: "https://example.com"})
		require.NoError(t, err)
		path, err := w.WriteResult(context.Background(), result)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Do you ship internationally?")

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("rejects result without website", func(t *testing.T) {
		t.Parallel()

		w := fs.NewResultWriter(t.TempDir())

		_, err := w.WriteResult(context.Background(), &faqcrawl.CrawlResult{})
		require.Error(t, err)
		assert.Equal(t, faqcrawl.EINVALID, faqcrawl.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewResultWriter(t.TempDir()).WriteResult(ctx, result)
		require.ErrorIs(t, err, context.Canceled)
	})
}
