// Package bluemonday implements wikiscrape.Sanitizer using bluemonday.
package bluemonday

import (
	"strings"

	"github.com/fwojciec/wikiscrape"
	"github.com/microcosm-cc/bluemonday"
)

// Ensure Sanitizer implements wikiscrape.Sanitizer at compile time.
var _ wikiscrape.Sanitizer = (*Sanitizer)(nil)

// quoteUnescaper restores quotes escaped by the sanitizer. Quotes carry no
// markup meaning in text content; only & < > stay escaped.
var quoteUnescaper = strings.NewReplacer("&#39;", "'", "&#34;", `"`)

// Sanitizer strips markup down to a basic set of text formatting elements.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer creates a Sanitizer with the basic policy.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: BasicPolicy()}
}

// Sanitize returns text with disallowed elements and attributes removed.
func (s *Sanitizer) Sanitize(text string) string {
	return quoteUnescaper.Replace(s.policy.Sanitize(text))
}

// BasicPolicy allows simple text formatting, lists, quotes and links with
// safe schemes. Links are forced to rel="nofollow".
func BasicPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"a", "b", "blockquote", "br", "cite", "code", "dd", "dl", "dt", "em",
		"i", "li", "ol", "p", "pre", "q", "small", "span", "strike", "strong",
		"sub", "sup", "u", "ul",
	)

	p.AllowAttrs("href").OnElements("a")
	p.AllowURLSchemes("http", "https", "ftp", "mailto")
	p.RequireParseableURLs(true)
	p.RequireNoFollowOnLinks(true)

	p.AllowAttrs("cite").OnElements("blockquote", "q")

	return p
}
