package mock

import (
	"context"

	"github.com/fwojciec/wikiscrape"
)

var _ wikiscrape.Prompter = (*Prompter)(nil)

// Prompter is a mock implementation of wikiscrape.Prompter.
type Prompter struct {
	PromptFn func(ctx context.Context) (string, error)
}

func (p *Prompter) Prompt(ctx context.Context) (string, error) {
	return p.PromptFn(ctx)
}
