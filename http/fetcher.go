// Package http provides an HTTP-based implementation of wikiscrape.Fetcher.
package http

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/wikiscrape"
	"golang.org/x/net/html/charset"
)

// Ensure Fetcher implements wikiscrape.Fetcher at compile time.
var _ wikiscrape.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves topic pages with a single GET request.
// It never retries.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	urlTemplate string
	contentType string
	userAgent   string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to wikiscrape.DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithURLTemplate sets the page address pattern. The template must contain
// a single %s, replaced by the topic verbatim.
func WithURLTemplate(tmpl string) Option {
	return func(f *Fetcher) {
		f.urlTemplate = tmpl
	}
}

// WithContentType sets the Content-Type header sent with each request.
func WithContentType(ct string) Option {
	return func(f *Fetcher) {
		f.contentType = ct
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:     wikiscrape.DefaultTimeout,
		urlTemplate: wikiscrape.DefaultURLTemplate,
		contentType: wikiscrape.DefaultContentType,
		userAgent:   wikiscrape.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// URL returns the page address for a topic.
func (f *Fetcher) URL(topic string) string {
	return fmt.Sprintf(f.urlTemplate, topic)
}

// Fetch retrieves the page for topic and returns its body decoded to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, topic string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL(topic), nil)
	if err != nil {
		return "", wikiscrape.Errorf(wikiscrape.EMALFORMED, "Malformed URL: %v", err)
	}
	if f.contentType != "" {
		req.Header.Set("Content-Type", f.contentType)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", transportError(err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return "", wikiscrape.Errorf(wikiscrape.ENOTFOUND, "Not found.")
	default:
		return "", wikiscrape.Errorf(wikiscrape.EREMOTE, "Error processing request, status=%d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", wikiscrape.Errorf(wikiscrape.EIO, "IO error: %v", err)
	}
	if len(body) == 0 {
		return "", nil
	}

	r, err := charset.NewReader(bytes.NewReader(body), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", wikiscrape.Errorf(wikiscrape.EIO, "IO error: %v", err)
	}

	decoded, err := io.ReadAll(r)
	if err != nil {
		return "", wikiscrape.Errorf(wikiscrape.EIO, "IO error: %v", err)
	}

	return string(decoded), nil
}

// transportError classifies a failed round trip. Refused or unreachable
// connections are reported separately from every other I/O failure.
// Name resolution failures count as I/O failures.
func transportError(err error) error {
	var dnsErr *net.DNSError
	var opErr *net.OpError
	switch {
	case errors.As(err, &dnsErr):
		return wikiscrape.Errorf(wikiscrape.EIO, "IO error: %v", err)
	case errors.As(err, &opErr) && opErr.Op == "dial":
		return wikiscrape.Errorf(wikiscrape.ECONNECT, "Connection error: %v", err)
	default:
		return wikiscrape.Errorf(wikiscrape.EIO, "IO error: %v", err)
	}
}
