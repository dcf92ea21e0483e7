package goquery

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/faqcrawl"
	"golang.org/x/net/html/atom"
)

var (
	markerQuestionRe = regexp.MustCompile(`(?i)FAQ\s*Question\s*\d*\.?\s*([^\n]+?)(?:\n|FAQ\s*Answer)`)
	markerAnswerRe   = regexp.MustCompile(`(?i)FAQ\s*Answer\s*\d*\.?\s*`)
	markerNextRe     = regexp.MustCompile(`(?i)FAQ\s*Question|#`)
)

// ExtractSection runs the heuristic strategies over a located section.
// Non-paragraph content elements go through every element strategy in turn;
// paragraphs that are direct content of the section are then paired as one
// run.
func ExtractSection(section Section) []faqcrawl.Candidate {
	var candidates []faqcrawl.Candidate
	var paragraphs []*goquery.Selection

	section.Content.Each(func(_ int, elem *goquery.Selection) {
		if isElement(elem.Get(0), atom.P) {
			paragraphs = append(paragraphs, elem)
			return
		}
		candidates = append(candidates, ExtractElement(elem)...)
	})

	return append(candidates, pairParagraphs(paragraphs)...)
}

// ExtractElement applies the accordion, container, heading, definition list,
// marker and paragraph strategies to elem, in that order.
func ExtractElement(elem *goquery.Selection) []faqcrawl.Candidate {
	var candidates []faqcrawl.Candidate
	candidates = append(candidates, extractAccordions(elem)...)
	candidates = append(candidates, extractContainers(elem)...)
	candidates = append(candidates, extractHeadings(elem)...)
	candidates = append(candidates, extractDefinitionLists(elem)...)
	candidates = append(candidates, extractMarkers(elem)...)
	candidates = append(candidates, extractParagraphs(elem)...)
	return candidates
}

// selfOrFind returns elem itself when it matches selector, followed by its
// matching descendants.
func selfOrFind(elem *goquery.Selection, selector string) *goquery.Selection {
	return elem.Filter(selector).AddSelection(elem.Find(selector))
}

// extractAccordions pairs each details summary with the text of the other
// children of the details element.
func extractAccordions(elem *goquery.Selection) []faqcrawl.Candidate {
	var candidates []faqcrawl.Candidate

	selfOrFind(elem, "details").Each(func(_ int, details *goquery.Selection) {
		summary := details.Find("summary").First()
		if summary.Length() == 0 {
			return
		}

		summaryNode := summary.Get(0)
		var answer strings.Builder
		details.Contents().Each(func(_ int, child *goquery.Selection) {
			if child.Get(0) != summaryNode {
				answer.WriteString(joinText(child, ' '))
			}
		})

		candidates = appendCandidate(candidates, textOf(summary), answer.String(), faqcrawl.StrategyAccordion)
	})

	return candidates
}

// extractContainers pairs the question and answer parts of class-marked
// question/answer containers below elem.
func extractContainers(elem *goquery.Selection) []faqcrawl.Candidate {
	var candidates []faqcrawl.Candidate

	elem.Find("div, li, article").Each(func(_ int, container *goquery.Selection) {
		if !IsQAContainer(container) {
			return
		}

		q := firstMatching(container, IsQuestionPart)
		a := firstMatching(container, IsAnswerPart)
		if q == nil || a == nil {
			return
		}

		candidates = appendCandidate(candidates, textOf(q), textOf(a), faqcrawl.StrategyContainer)
	})

	return candidates
}

func firstMatching(container *goquery.Selection, match func(*goquery.Selection) bool) *goquery.Selection {
	var found *goquery.Selection
	container.Find("[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if match(s) {
			found = s
			return false
		}
		return true
	})
	return found
}

// extractHeadings pairs each h3-h6 heading with the text of the paragraph
// and div siblings that follow it up to the next heading. Headings that
// announce a nested FAQ section are skipped.
func extractHeadings(elem *goquery.Selection) []faqcrawl.Candidate {
	var candidates []faqcrawl.Candidate

	selfOrFind(elem, "h3, h4, h5, h6").Each(func(_ int, heading *goquery.Selection) {
		headingText := textOf(heading)
		if faqcrawl.IsFAQHeading(headingText) {
			return
		}

		var parts []string
		heading.NextAll().EachWithBreak(func(_ int, next *goquery.Selection) bool {
			n := next.Get(0)
			if headingLevel(n) > 0 {
				return false
			}
			if isElement(n, atom.P) || isElement(n, atom.Div) {
				if text := textOf(next); text != "" {
					parts = append(parts, text)
				}
			}
			return true
		})

		question := faqcrawl.StripHeadingNumber(headingText)
		candidates = appendCandidate(candidates, question, strings.Join(parts, " "), faqcrawl.StrategyHeading)
	})

	return candidates
}

// extractDefinitionLists pairs each dt with the dd at the same position in
// its list.
func extractDefinitionLists(elem *goquery.Selection) []faqcrawl.Candidate {
	var candidates []faqcrawl.Candidate

	selfOrFind(elem, "dl").Each(func(_ int, dl *goquery.Selection) {
		dds := dl.Find("dd")
		dl.Find("dt").Each(func(i int, dt *goquery.Selection) {
			if i >= dds.Length() {
				return
			}
			candidates = appendCandidate(candidates, textOf(dt), textOf(dds.Eq(i)), faqcrawl.StrategyDefinitionList)
		})
	})

	return candidates
}

// extractMarkers pairs "FAQ Question n." and "FAQ Answer n." markers found in
// the text of elem by position. An answer runs until the next question
// marker, a '#' or the end of the text.
func extractMarkers(elem *goquery.Selection) []faqcrawl.Candidate {
	text := rawText(elem)
	if !strings.Contains(strings.ToLower(text), "faq") {
		return nil
	}

	var questions []string
	for _, m := range markerQuestionRe.FindAllStringSubmatch(text, -1) {
		questions = append(questions, m[1])
	}
	if len(questions) == 0 {
		return nil
	}

	var answers []string
	pos := 0
	for pos < len(text) {
		loc := markerAnswerRe.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[1]
		end := len(text)
		if next := markerNextRe.FindStringIndex(text[start:]); next != nil {
			end = start + next[0]
		}
		if end > start {
			answers = append(answers, text[start:end])
		}
		pos = max(end, start+1)
	}

	var candidates []faqcrawl.Candidate
	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		candidates = appendCandidate(candidates, faqcrawl.NormalizeText(q), faqcrawl.NormalizeText(answers[i]), faqcrawl.StrategyMarker)
	}
	return candidates
}

// extractParagraphs pairs the paragraphs found below elem.
func extractParagraphs(elem *goquery.Selection) []faqcrawl.Candidate {
	var paragraphs []*goquery.Selection
	elem.Find("p").Each(func(_ int, p *goquery.Selection) {
		paragraphs = append(paragraphs, p)
	})
	return pairParagraphs(paragraphs)
}

// pairParagraphs scans paragraphs for question paragraphs and joins the
// paragraphs following each question into its answer. Paragraphs before the
// first question are skipped.
func pairParagraphs(paragraphs []*goquery.Selection) []faqcrawl.Candidate {
	var candidates []faqcrawl.Candidate

	texts := make([]string, len(paragraphs))
	for i, p := range paragraphs {
		texts[i] = textOf(p)
	}

	for i := 0; i < len(texts); {
		if !faqcrawl.IsQuestionText(texts[i]) {
			i++
			continue
		}

		j := i + 1
		for j < len(texts) && !faqcrawl.IsQuestionText(texts[j]) {
			j++
		}

		answer := strings.Join(texts[i+1:j], " ")
		candidates = appendCandidate(candidates, texts[i], answer, faqcrawl.StrategyParagraph)
		i = j
	}

	return candidates
}

// appendCandidate normalizes the pair and appends it when both parts are
// present and the answer is long enough for a heuristic match.
func appendCandidate(candidates []faqcrawl.Candidate, question, answer string, strategy faqcrawl.Strategy) []faqcrawl.Candidate {
	question = faqcrawl.NormalizeText(question)
	answer = faqcrawl.NormalizeText(answer)
	if question == "" || answer == "" || utf8.RuneCountInString(answer) <= faqcrawl.MinAnswerLength {
		return candidates
	}
	return append(candidates, faqcrawl.Candidate{
		Question: question,
		Answer:   answer,
		Strategy: strategy,
	})
}
