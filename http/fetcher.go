// Package http provides a pagecopy.Fetcher for pages that render without
// JavaScript.
package http

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/pagecopy"
)

// DefaultFetchTimeout matches rod.DefaultFetchTimeout.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent identifies pagecopy to the sites it loads.
const DefaultUserAgent = "pagecopy/1.0 (+https://github.com/fwojciec/pagecopy)"

// DefaultMaxBytes caps the size of a downloaded document.
const DefaultMaxBytes = 10 << 20

// Ensure Fetcher implements pagecopy.Fetcher at compile time.
var _ pagecopy.Fetcher = (*Fetcher)(nil)

// Fetcher downloads pages with a single GET request.
type Fetcher struct {
	client    *http.Client
	userAgent string
	maxBytes  int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout bounds the whole request, body included.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBytes caps the number of body bytes read. Larger documents are
// truncated rather than rejected.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// NewFetcher creates a new Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:    &http.Client{Timeout: DefaultFetchTimeout},
		userAgent: DefaultUserAgent,
		maxBytes:  DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads target and returns its body. Responses other than
// 200 OK and bodies that are clearly not markup are errors.
func (f *Fetcher) Fetch(ctx context.Context, target string) (string, error) {
	// Build request; the context bounds it alongside the client timeout
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", pagecopy.Errorf(pagecopy.EINVALID, "invalid URL %q: %v", target, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	// Send request
	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	// Check status code
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}

	// Pages without a Content-Type are accepted
	if ct := resp.Header.Get("Content-Type"); ct != "" && !isMarkup(ct) {
		return "", pagecopy.Errorf(pagecopy.EINVALID, "%s is not an HTML page (%s)", target, ct)
	}

	// Read body up to the size cap
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}

// isMarkup reports whether a Content-Type header could hold an HTML page.
func isMarkup(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return true
	}
	return strings.HasPrefix(mt, "text/") || strings.HasSuffix(mt, "html") || strings.HasSuffix(mt, "+xml")
}
