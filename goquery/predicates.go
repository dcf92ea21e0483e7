package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/faqcrawl"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Class substrings identifying question/answer containers and their parts.
var (
	qaContainerPatterns  = []string{"faq", "question", "qa-", "accordion-item"}
	questionPartPatterns = []string{"question", "title", "header", "trigger"}
	answerPartPatterns   = []string{"answer", "content", "body", "panel"}
)

// classTokens returns the lower-cased class tokens of the first node in sel.
func classTokens(sel *goquery.Selection) []string {
	class, ok := sel.Attr("class")
	if !ok {
		return nil
	}
	return strings.Fields(strings.ToLower(class))
}

// tokensContainAny reports whether any token contains any of the patterns.
func tokensContainAny(tokens []string, patterns []string) bool {
	for _, token := range tokens {
		for _, p := range patterns {
			if strings.Contains(token, p) {
				return true
			}
		}
	}
	return false
}

// IsFAQContainer reports whether a section, div or article announces FAQ
// content through its class list or id.
func IsFAQContainer(sel *goquery.Selection) bool {
	return hasFAQClass(sel) || hasFAQID(sel)
}

func hasFAQClass(sel *goquery.Selection) bool {
	tokens := classTokens(sel)
	return len(tokens) > 0 && faqcrawl.IsFAQHeading(strings.Join(tokens, " "))
}

func hasFAQID(sel *goquery.Selection) bool {
	id, ok := sel.Attr("id")
	return ok && id != "" && faqcrawl.IsFAQHeading(id)
}

// IsQAContainer reports whether an element wraps a single question/answer
// pair, judged by its class tokens.
func IsQAContainer(sel *goquery.Selection) bool {
	return tokensContainAny(classTokens(sel), qaContainerPatterns)
}

// IsQuestionPart reports whether an element holds the question of a pair.
func IsQuestionPart(sel *goquery.Selection) bool {
	return tokensContainAny(classTokens(sel), questionPartPatterns)
}

// IsAnswerPart reports whether an element holds the answer of a pair.
func IsAnswerPart(sel *goquery.Selection) bool {
	return tokensContainAny(classTokens(sel), answerPartPatterns)
}

// headingLevel returns 1-6 for h1-h6 elements and 0 for anything else.
func headingLevel(n *html.Node) int {
	if n == nil || n.Type != html.ElementNode {
		return 0
	}
	switch n.DataAtom {
	case atom.H1:
		return 1
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	case atom.H4:
		return 4
	case atom.H5:
		return 5
	case atom.H6:
		return 6
	}
	return 0
}

// isElement reports whether n is an element of the given type.
func isElement(n *html.Node, a atom.Atom) bool {
	return n != nil && n.Type == html.ElementNode && n.DataAtom == a
}
