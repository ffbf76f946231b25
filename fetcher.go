package pagecopy

import "context"

// Fetcher retrieves the HTML of the document an action targets.
// Implementations may read local files or use browser automation to handle
// JavaScript-rendered content.
type Fetcher interface {
	// Fetch loads the target and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, target string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
