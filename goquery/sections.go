package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/faqcrawl"
	"golang.org/x/net/html"
)

// Section is a located FAQ subtree. Heading-bounded sections carry the FAQ
// heading and the sibling elements that follow it. Container sections have a
// nil Heading and a single content element.
type Section struct {
	Heading *goquery.Selection
	Content *goquery.Selection
}

// FindSections locates FAQ sections in document order: first every heading
// announcing FAQ content together with its following siblings up to the next
// heading of the same or a higher rank, then every section, div or article
// whose class announces FAQ content, then those whose id does. A container
// already covered by an earlier section is not returned again.
func FindSections(doc *goquery.Document) []Section {
	var sections []Section
	covered := make(map[*html.Node]bool)

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, heading *goquery.Selection) {
		if !faqcrawl.IsFAQHeading(textOf(heading)) {
			return
		}

		content := headingContent(heading)
		if content.Length() == 0 {
			return
		}

		covered[heading.Get(0)] = true
		for _, n := range content.Nodes {
			covered[n] = true
		}
		sections = append(sections, Section{Heading: heading, Content: content})
	})

	// Class matches come before id matches so that an earlier class-matched
	// container wins duplicate questions.
	containers := doc.Find("section, div, article")
	for _, match := range []func(*goquery.Selection) bool{hasFAQClass, hasFAQID} {
		containers.Each(func(_ int, container *goquery.Selection) {
			n := container.Get(0)
			if covered[n] || !match(container) {
				return
			}
			covered[n] = true
			sections = append(sections, Section{Content: container})
		})
	}

	return sections
}

// headingContent returns the element siblings following heading until a
// heading of equal or higher rank.
func headingContent(heading *goquery.Selection) *goquery.Selection {
	level := headingLevel(heading.Get(0))
	siblings := heading.NextAll()

	end := siblings.Length()
	siblings.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if l := headingLevel(s.Get(0)); l > 0 && l <= level {
			end = i
			return false
		}
		return true
	})

	return siblings.Slice(0, end)
}
