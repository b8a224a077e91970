package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wikiscrape"
	"github.com/fwojciec/wikiscrape/bluemonday"
	"github.com/fwojciec/wikiscrape/goquery"
	wikihttp "github.com/fwojciec/wikiscrape/http"
	wikislog "github.com/fwojciec/wikiscrape/slog"
	"github.com/fwojciec/wikiscrape/tty"
)

func main() {
	ctx := context.Background()

	handleInterrupt(os.Stdout, os.Exit)

	m := NewMain()

	// Run reports failures to the user itself; only the exit status is left.
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Lookup settings. Set before calling Run().
	Config *wikiscrape.Config

	// LogLevel is the minimum level of diagnostics written to stderr.
	LogLevel slog.Level

	// Stdin is read by the interactive prompt.
	Stdin io.Reader

	// Interactive reports whether a console is attached.
	Interactive func() bool

	// Prompter overrides the terminal prompt when set.
	Prompter wikiscrape.Prompter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Config:   wikiscrape.DefaultConfig(),
		LogLevel: slog.LevelWarn,
		Stdin:    os.Stdin,
		Interactive: func() bool {
			return tty.IsInteractive(os.Stdin, os.Stdout)
		},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if !m.Interactive() {
		fmt.Fprintln(stderr, "Error - must have a console!")
		return wikiscrape.Errorf(wikiscrape.ECONSOLE, "must have a console")
	}

	parser, err := kong.New(&CLI{},
		kong.Name("wikiscrape"),
		kong.Description(description),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) > 0 && wikiscrape.IsHelpFlag(args[0]) {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	logger := slog.New(wikislog.NewTerminalHandler(stderr, m.LogLevel))

	topic := wikiscrape.ParseTopic(args)
	if topic == "" {
		logger.Debug("no topic on command line, prompting")

		prompter := m.Prompter
		if prompter == nil {
			prompter = tty.NewPrompter(m.Stdin, stdout)
		}

		topic, err = prompter.Prompt(ctx)
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, context.Canceled):
			return err
		case err != nil:
			fmt.Fprintf(stdout, "An error occurred when trying to prompt the user for a topic: %v\n", err)
			return err
		}
	}

	// Wire dependencies
	fetcher := wikihttp.NewFetcher(
		wikihttp.WithURLTemplate(m.Config.URLTemplate),
		wikihttp.WithTimeout(m.Config.Timeout),
		wikihttp.WithContentType(m.Config.ContentType),
		wikihttp.WithUserAgent(m.Config.UserAgent),
	)

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		Fetcher:   wikislog.NewLoggingFetcher(fetcher, logger),
		Extractor: goquery.NewExtractor(),
		Sanitizer: bluemonday.NewSanitizer(),
	}

	cmd := &LookupCmd{Topic: topic}

	return cmd.Run(deps)
}
