// Package rod provides a pagecopy.Fetcher that renders pages in headless
// Chrome, for sites whose content only exists after JavaScript runs.
package rod

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/pagecopy"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout is the default time allowed for one page to load.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements pagecopy.Fetcher at compile time.
var _ pagecopy.Fetcher = (*Fetcher)(nil)

// Fetcher renders pages in a browser it launches and owns.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	closed   atomic.Bool

	timeout     time.Duration
	renderDelay time.Duration
	userAgent   string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the time allowed for navigation, load and
// serialization of one page. Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRenderDelay waits d after the load event before serializing the page.
// Single-page apps often render their tables after load.
func WithRenderDelay(d time.Duration) Option {
	return func(f *Fetcher) {
		f.renderDelay = d
	}
}

// WithUserAgent overrides the browser's User-Agent for every page.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher launches headless Chrome and connects to it.
// Close must be called to stop the browser.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	f.launcher = launcher.New().
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)
	controlURL, err := f.launcher.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	f.browser = rod.New().ControlURL(controlURL)
	if err := f.browser.Connect(); err != nil {
		f.launcher.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return f, nil
}

// Fetch opens target in a fresh tab and returns the DOM serialized after
// the load event and the optional render delay.
func (f *Fetcher) Fetch(ctx context.Context, target string) (string, error) {
	if f.closed.Load() {
		return "", pagecopy.Errorf(pagecopy.EINVALID, "fetcher is closed")
	}
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	// Each fetch gets its own tab
	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	return f.render(ctx, page.Context(ctx), target)
}

func (f *Fetcher) render(ctx context.Context, page *rod.Page, target string) (string, error) {
	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", err
		}
	}

	// Navigate to URL
	if err := page.Navigate(target); err != nil {
		return "", err
	}
	// Wait for the load event
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// Give client-side rendering time to settle
	if f.renderDelay > 0 {
		timer := time.NewTimer(f.renderDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	return page.HTML()
}

// Close stops the browser. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}

	// Close browser first, then kill the launcher process
	err := f.browser.Close()
	f.launcher.Kill()
	return err
}

// LauncherPID returns the process ID of the browser launcher, for tests
// that verify Close stops it.
func (f *Fetcher) LauncherPID() int {
	return f.launcher.PID()
}
