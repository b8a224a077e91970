package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/wikiscrape"
)

// Ensure LoggingFetcher implements wikiscrape.Fetcher.
var _ wikiscrape.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging. Successful fetches are
// logged at debug level, failures at warn level.
type LoggingFetcher struct {
	next   wikiscrape.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next wikiscrape.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the topic being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, topic string) (html string, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelWarn
		}
		f.logger.Log(ctx, level, "fetch",
			"topic", topic,
			"url", f.next.URL(topic),
			"bytes", len(html),
			"duration", time.Since(begin),
			"code", wikiscrape.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, topic)
}

// URL delegates to the wrapped fetcher.
func (f *LoggingFetcher) URL(topic string) string {
	return f.next.URL(topic)
}
