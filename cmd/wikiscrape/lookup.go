package main

import (
	"fmt"

	"github.com/fwojciec/wikiscrape"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	intro, err := c.lookup(deps)
	if err != nil {
		fmt.Fprintln(deps.Stdout, wikiscrape.ErrorMessage(err))
		return err
	}

	deps.Logger.Debug("intro", "topic", intro.Topic, "url", intro.URL, "chars", len(intro.Text))

	// A leading blank line sets the paragraph apart from the command.
	fmt.Fprintf(deps.Stdout, "\n%s\n", intro.Text)
	return nil
}

func (c *LookupCmd) lookup(deps *Dependencies) (*wikiscrape.Intro, error) {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.Topic)
	if err != nil {
		return nil, err
	}

	text, err := deps.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	return &wikiscrape.Intro{
		Topic: c.Topic,
		URL:   deps.Fetcher.URL(c.Topic),
		Text:  deps.Sanitizer.Sanitize(text),
	}, nil
}
