// Package tty implements wikiscrape.Prompter on an interactive terminal.
package tty

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/wikiscrape"
	"github.com/mattn/go-isatty"
)

// Ensure Prompter implements wikiscrape.Prompter at compile time.
var _ wikiscrape.Prompter = (*Prompter)(nil)

// PromptText is written before every read.
const PromptText = "Please provide a Wikipedia topic (or Ctrl-C to quit): "

// Prompter reads a topic line by line until a non-empty one is entered.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and prompting on out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Prompt asks for a topic, repeating while the entered line is empty.
// Only the line terminator is stripped. Returns io.EOF when input ends
// before a topic was entered.
func (p *Prompter) Prompt(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		if _, err := fmt.Fprint(p.out, PromptText); err != nil {
			return "", err
		}

		line, err := p.in.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line != "" {
			return wikiscrape.NormalizeTopic(line), nil
		}
		if err != nil {
			return "", err
		}
	}
}

// IsInteractive reports whether both in and out are attached to a terminal.
func IsInteractive(in, out *os.File) bool {
	return isTerminal(in) && isTerminal(out)
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
