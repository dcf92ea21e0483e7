package faqcrawl

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Length thresholds for accepted question/answer pairs.
const (
	// MinQuestionLength is the exclusive lower bound on a cleaned question's length.
	MinQuestionLength = 5

	// MinAnswerLength is the exclusive lower bound on answers emitted by the
	// heuristic (non structured data) extraction strategies.
	MinAnswerLength = 20
)

// FAQ is a single extracted question/answer pair.
type FAQ struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	SourceURL string `json:"sourceUrl"`
}

// CrawlResult is the outcome of crawling one website.
type CrawlResult struct {
	Website  string        `json:"website"`
	FAQs     []FAQ         `json:"faqs"`
	Metadata CrawlMetadata `json:"metadata"`
}

// CrawlMetadata summarizes a crawl.
type CrawlMetadata struct {
	PagesProcessed int       `json:"pagesProcessed"`
	TotalFAQsFound int       `json:"totalFaqsFound"`
	FAQPageFound   bool      `json:"faqPageFound"`
	ExtractedAt    time.Time `json:"extractedAt"`
}

// Collector validates, cleans and deduplicates question/answer pairs for a
// single crawl. Records are kept in discovery order and the first record for
// a question wins. A Collector is not safe for concurrent use.
type Collector struct {
	seen map[string]struct{}
	faqs []FAQ
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector {
	return &Collector{seen: make(map[string]struct{})}
}

// Add records the pair if it passes the English, noise, length and
// uniqueness checks. It reports whether the pair was kept.
//
// The question and answer are expected to have been through NormalizeText
// already; Add only strips quote and ordinal artifacts from the question.
func (c *Collector) Add(question, answer, sourceURL string) bool {
	if answer == "" {
		return false
	}
	if !IsEnglish(question) || !IsEnglish(answer) {
		return false
	}

	question = CleanQuestion(question)
	key := QuestionKey(question)

	if IsNoiseQuestion(key) {
		return false
	}
	if key == "" || utf8.RuneCountInString(question) <= MinQuestionLength {
		return false
	}
	if _, ok := c.seen[key]; ok {
		return false
	}

	c.seen[key] = struct{}{}
	c.faqs = append(c.faqs, FAQ{
		Question:  question,
		Answer:    answer,
		SourceURL: sourceURL,
	})
	return true
}

// Len returns the number of kept records.
func (c *Collector) Len() int {
	return len(c.faqs)
}

// FAQs returns a copy of the kept records in discovery order.
func (c *Collector) FAQs() []FAQ {
	out := make([]FAQ, len(c.faqs))
	copy(out, c.faqs)
	return out
}

// QuestionKey returns the deduplication key for a cleaned question.
func QuestionKey(question string) string {
	return strings.ToLower(strings.TrimSpace(question))
}
