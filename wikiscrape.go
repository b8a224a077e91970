// Package wikiscrape provides a command-line lookup of Wikipedia topics.
// It resolves a topic name into a single page fetch and prints the first
// introductory paragraph of the returned document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, bluemonday/).
package wikiscrape

import "context"

// Intro is the result of a topic lookup.
type Intro struct {
	Topic string
	URL   string
	Text  string // sanitized first paragraph
}

// Fetcher retrieves the page for a topic.
type Fetcher interface {
	// Fetch retrieves the HTML of the topic's page.
	// Returns ENOTFOUND if the site has no such page.
	Fetch(ctx context.Context, topic string) (html string, err error)

	// URL returns the page address for a topic.
	URL(topic string) string
}

// Extractor pulls the introductory paragraph out of a page.
type Extractor interface {
	// Extract returns the visible text of the first paragraph element.
	// Returns ENOTFOUND if the document has no paragraph.
	Extract(html string) (string, error)
}

// Sanitizer neutralizes markup in extracted text before display.
type Sanitizer interface {
	Sanitize(text string) string
}

// Prompter asks the user for a topic interactively.
type Prompter interface {
	// Prompt blocks until a non-empty topic is entered.
	// The returned topic is normalized with NormalizeTopic.
	Prompt(ctx context.Context) (string, error)
}
