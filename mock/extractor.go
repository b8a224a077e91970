package mock

import "github.com/fwojciec/wikiscrape"

var _ wikiscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of wikiscrape.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
