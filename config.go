package wikiscrape

import "time"

// Defaults for the target site.
const (
	DefaultURLTemplate = "https://en.wikipedia.org/wiki/%s"
	DefaultTimeout     = 30 * time.Second

	// DefaultContentType is sent on every request. A GET carries no body,
	// so the header has no effect on the response.
	DefaultContentType = "application/x-www-form-urlencoded; charset=utf-8"

	// DefaultUserAgent identifies the client, as Wikimedia's policy asks.
	DefaultUserAgent = "wikiscrape/1.0 (https://github.com/fwojciec/wikiscrape)"
)

// Config holds the settings of a lookup.
type Config struct {
	// URLTemplate is a fmt pattern with a single %s for the topic.
	URLTemplate string

	// Timeout bounds the whole request, body read included.
	Timeout time.Duration

	// ContentType is the Content-Type header sent with the request.
	ContentType string

	// UserAgent is the User-Agent header sent with the request.
	UserAgent string
}

// DefaultConfig returns the configuration for English Wikipedia.
func DefaultConfig() *Config {
	return &Config{
		URLTemplate: DefaultURLTemplate,
		Timeout:     DefaultTimeout,
		ContentType: DefaultContentType,
		UserAgent:   DefaultUserAgent,
	}
}
