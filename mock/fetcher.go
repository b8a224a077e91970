package mock

import (
	"context"

	"github.com/fwojciec/wikiscrape"
)

var _ wikiscrape.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of wikiscrape.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, topic string) (string, error)
	URLFn   func(topic string) string
}

func (f *Fetcher) Fetch(ctx context.Context, topic string) (string, error) {
	return f.FetchFn(ctx, topic)
}

func (f *Fetcher) URL(topic string) string {
	return f.URLFn(topic)
}
