package scrape

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/pagecopy"
)

var _ pagecopy.Fetcher = (*SourceFetcher)(nil)

// SourceFetcher implements pagecopy.Fetcher by routing http(s) targets to
// a web fetcher and every other target to a local fetcher.
type SourceFetcher struct {
	web   pagecopy.Fetcher
	local pagecopy.Fetcher
}

// NewSourceFetcher creates a new SourceFetcher.
// Either fetcher may be nil, in which case targets routed to it fail
// with EINVALID.
func NewSourceFetcher(web, local pagecopy.Fetcher) *SourceFetcher {
	return &SourceFetcher{web: web, local: local}
}

// Fetch implements pagecopy.Fetcher. Surrounding whitespace is stripped
// from target before it is routed.
func (s *SourceFetcher) Fetch(ctx context.Context, target string) (string, error) {
	target = strings.TrimSpace(target)

	if IsWebURL(target) {
		if s.web == nil {
			return "", pagecopy.Errorf(pagecopy.EINVALID, "web targets are not supported")
		}
		return s.web.Fetch(ctx, target)
	}

	if s.local == nil {
		return "", pagecopy.Errorf(pagecopy.EINVALID, "local targets are not supported")
	}
	return s.local.Fetch(ctx, target)
}

// Close closes both underlying fetchers.
func (s *SourceFetcher) Close() error {
	var errs []error
	if s.web != nil {
		errs = append(errs, s.web.Close())
	}
	if s.local != nil {
		errs = append(errs, s.local.Close())
	}
	return errors.Join(errs...)
}

// IsWebURL returns true if target is an http or https URL.
func IsWebURL(target string) bool {
	t := strings.ToLower(strings.TrimSpace(target))
	return strings.HasPrefix(t, "http://") || strings.HasPrefix(t, "https://")
}
