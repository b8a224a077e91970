package mock

import "github.com/fwojciec/wikiscrape"

var _ wikiscrape.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of wikiscrape.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(text string) string
}

func (s *Sanitizer) Sanitize(text string) string {
	return s.SanitizeFn(text)
}
