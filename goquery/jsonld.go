package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/faqcrawl"
)

const jsonLDSelector = "script[type='application/ld+json']"

// ExtractStructuredData returns the question/answer pairs declared by
// FAQPage JSON-LD blocks anywhere in the document. Blocks that are not valid
// JSON are skipped. It must run before script elements are stripped.
func ExtractStructuredData(doc *goquery.Document) []faqcrawl.Candidate {
	var candidates []faqcrawl.Candidate

	doc.Find(jsonLDSelector).Each(func(_ int, s *goquery.Selection) {
		jsonText := strings.TrimSpace(s.Text())
		if jsonText == "" {
			return
		}

		var data any
		if err := json.Unmarshal([]byte(jsonText), &data); err != nil {
			return
		}

		for _, obj := range jsonObjects(data) {
			candidates = append(candidates, faqPageCandidates(obj)...)
		}
	})

	return candidates
}

// jsonObjects flattens a top-level JSON-LD value into its objects, expanding
// arrays and @graph containers.
func jsonObjects(v any) []map[string]any {
	switch v := v.(type) {
	case []any:
		var out []map[string]any
		for _, item := range v {
			out = append(out, jsonObjects(item)...)
		}
		return out
	case map[string]any:
		if graph, ok := v["@graph"]; ok {
			return append([]map[string]any{v}, jsonObjects(graph)...)
		}
		return []map[string]any{v}
	}
	return nil
}

func faqPageCandidates(obj map[string]any) []faqcrawl.Candidate {
	if !hasType(obj, "FAQPage") {
		return nil
	}

	var candidates []faqcrawl.Candidate
	for _, entity := range asList(obj["mainEntity"]) {
		item, ok := entity.(map[string]any)
		if !ok || !hasType(item, "Question") {
			continue
		}

		name, _ := item["name"].(string)
		question := faqcrawl.NormalizeText(name)
		answer := faqcrawl.NormalizeText(markupText(acceptedAnswerText(item["acceptedAnswer"])))
		if question == "" || answer == "" {
			continue
		}

		candidates = append(candidates, faqcrawl.Candidate{
			Question: question,
			Answer:   answer,
			Strategy: faqcrawl.StrategyStructuredData,
		})
	}
	return candidates
}

// hasType reports whether @type equals want or, when given as an array,
// contains it.
func hasType(obj map[string]any, want string) bool {
	for _, t := range asList(obj["@type"]) {
		if s, ok := t.(string); ok && s == want {
			return true
		}
	}
	return false
}

// acceptedAnswerText returns the text of an Answer object, using the first
// entry when several answers are given.
func acceptedAnswerText(v any) string {
	for _, a := range asList(v) {
		if answer, ok := a.(map[string]any); ok {
			text, _ := answer["text"].(string)
			return text
		}
	}
	return ""
}

func asList(v any) []any {
	switch v := v.(type) {
	case nil:
		return nil
	case []any:
		return v
	default:
		return []any{v}
	}
}

// markupText reduces an HTML fragment to its text content.
func markupText(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return textOf(doc.Selection)
}
