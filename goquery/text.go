package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/faqcrawl"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// blockElements separate their text from surrounding text with a space.
var blockElements = map[atom.Atom]bool{
	atom.Address: true, atom.Article: true, atom.Aside: true, atom.Blockquote: true,
	atom.Br: true, atom.Dd: true, atom.Details: true, atom.Div: true, atom.Dl: true,
	atom.Dt: true, atom.Figcaption: true, atom.Footer: true, atom.H1: true,
	atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	atom.Header: true, atom.Hr: true, atom.Li: true, atom.Main: true, atom.Nav: true,
	atom.Ol: true, atom.P: true, atom.Pre: true, atom.Section: true,
	atom.Summary: true, atom.Table: true, atom.Td: true, atom.Th: true,
	atom.Tr: true, atom.Ul: true,
}

// textOf returns the normalized text content of every node in sel. Block
// elements are separated by spaces so adjacent paragraphs do not run
// together.
func textOf(sel *goquery.Selection) string {
	return faqcrawl.NormalizeText(joinText(sel, ' '))
}

// rawText returns the text content of sel without normalization. Block
// elements are separated by line breaks.
func rawText(sel *goquery.Selection) string {
	return joinText(sel, '\n')
}

func joinText(sel *goquery.Selection, sep byte) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeText(&b, n, sep)
	}
	return b.String()
}

func writeText(b *strings.Builder, n *html.Node, sep byte) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.CommentNode:
		return
	}

	block := n.Type == html.ElementNode && blockElements[n.DataAtom]
	if block {
		b.WriteByte(sep)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c, sep)
	}
	if block {
		b.WriteByte(sep)
	}
}
