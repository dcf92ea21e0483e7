package faqcrawl

import (
	"regexp"
	"strings"
	"unicode"
)

// decorationChars are stripped from both ends of extracted text.
const decorationChars = "•·-–—*#"

// englishThreshold is the non-ASCII share at or above which text is
// considered non-English.
const englishThreshold = 0.3

var (
	whitespaceRe = regexp.MustCompile(`\s+`)

	// boilerplateRes match page chrome that tends to trail extracted text.
	// Each match runs to the end of the string.
	boilerplateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Subscribe Newsletter.*$`),
		regexp.MustCompile(`(?i)Sign up to get.*$`),
		regexp.MustCompile(`(?i)© \d{4}.*$`),
		regexp.MustCompile(`(?i)All Rights Reserved.*$`),
		regexp.MustCompile(`(?i)Privacy Policy.*Terms.*$`),
		regexp.MustCompile(`(?i)To Top$`),
	}

	quotePrefixRe = regexp.MustCompile(`^[bB]?["']`)
	ordinalRe     = regexp.MustCompile(`^\d+[).:\s]*([A-Za-z])`)
	headingNumRe  = regexp.MustCompile(`^\d+\.\s*`)
)

// noiseQuestions are substrings of site chrome that show up as false
// positive questions (login boxes, newsletter prompts).
var noiseQuestions = []string{
	"forgot your password",
	"reset password",
	"sign in",
	"log in",
	"create account",
	"register",
	"subscribe",
	"newsletter",
	"contact us",
	"get in touch",
}

// NormalizeText collapses whitespace, strips bullet decoration and removes
// trailing boilerplate such as copyright or newsletter notices.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
	s = strings.Trim(s, decorationChars)
	for _, re := range boilerplateRes {
		s = re.ReplaceAllString(s, "")
	}
	return strings.TrimSpace(s)
}

// IsEnglish reports whether text is primarily English. Text is rejected when
// non-ASCII characters make up 30% or more of ASCII letters plus non-ASCII
// characters. Text without any letters passes.
func IsEnglish(s string) bool {
	var ascii, nonASCII int
	for _, r := range s {
		switch {
		case r > unicode.MaxASCII:
			nonASCII++
		case ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'):
			ascii++
		}
	}
	total := ascii + nonASCII
	if total == 0 {
		return true
	}
	return float64(nonASCII)/float64(total) < englishThreshold
}

// CleanQuestion removes leading quote artifacts (`b"`, `"`, `'`) and a
// leading ordinal marker such as "12) ", "3. ", "7: " or the "1" in "1What".
func CleanQuestion(s string) string {
	s = strings.TrimSpace(quotePrefixRe.ReplaceAllString(s, ""))
	s = ordinalRe.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}

// StripHeadingNumber removes a leading "1. " style number from heading text.
func StripHeadingNumber(s string) string {
	return headingNumRe.ReplaceAllString(s, "")
}

// IsNoiseQuestion reports whether a case-folded question key contains
// navigational or account chrome.
func IsNoiseQuestion(key string) bool {
	for _, pattern := range noiseQuestions {
		if strings.Contains(key, pattern) {
			return true
		}
	}
	return false
}

// IsQuestionText reports whether a paragraph reads like a question: it ends
// with "?" or opens with an interrogative or modal word.
func IsQuestionText(s string) bool {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "?") {
		return true
	}
	lower := strings.ToLower(s)
	for _, word := range questionWords {
		if strings.HasPrefix(lower, word+" ") {
			return true
		}
	}
	return false
}

var questionWords = []string{
	"can", "do", "does", "is", "are", "how", "what",
	"why", "when", "where", "will", "should",
}
