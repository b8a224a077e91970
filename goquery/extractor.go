// Package goquery implements wikiscrape.Extractor using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/wikiscrape"
)

// Ensure Extractor implements wikiscrape.Extractor at compile time.
var _ wikiscrape.Extractor = (*Extractor)(nil)

// DefaultSelector matches paragraph elements.
const DefaultSelector = "p"

// Extractor returns the text of the first element matching a selector.
type Extractor struct {
	selector string
}

// NewExtractor creates an Extractor for the first paragraph of a page.
func NewExtractor() *Extractor {
	return &Extractor{selector: DefaultSelector}
}

// Extract parses html and returns the visible text of the first paragraph
// in document order. The first paragraph is returned even if it is empty.
func (e *Extractor) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", wikiscrape.Errorf(wikiscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	sel := doc.Find(e.selector).First()
	if sel.Length() == 0 {
		return "", wikiscrape.Errorf(wikiscrape.ENOTFOUND, "No introductory paragraph found.")
	}

	return normalizeSpace(sel.Text()), nil
}

// normalizeSpace trims the text and collapses runs of ASCII whitespace to
// a single space. Non-breaking spaces are kept.
func normalizeSpace(s string) string {
	return strings.Join(strings.FieldsFunc(s, isASCIISpace), " ")
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}
