// Package readability provides a pagecopy.TextExtractor backed by
// go-readability, the Go port of Mozilla's reader view.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pagecopy"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagecopy.TextExtractor at compile time.
var _ pagecopy.TextExtractor = (*Extractor)(nil)

// Extractor selects the article body the way a browser's reader view does.
type Extractor struct {
	pageURL *url.URL
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPageURL sets the address the HTML was loaded from. Relative links
// and image sources in Article.HTML are resolved against it.
func WithPageURL(u *url.URL) Option {
	return func(e *Extractor) {
		e.pageURL = u
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText scores the page's blocks and returns the winning article.
// A page with no readable block is ENOCONTENT.
func (e *Extractor) ExtractText(rawHTML string) (*pagecopy.Article, error) {
	if rawHTML == "" {
		return nil, pagecopy.Errorf(pagecopy.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, pagecopy.Errorf(pagecopy.ENOCONTENT, "%v", err)
	}

	// Same whitespace rules as the selector engine
	text := pagecopy.NormalizeWhitespace(article.TextContent)
	if text == "" {
		return nil, pagecopy.Errorf(pagecopy.ENOCONTENT, "No content found on page")
	}

	return &pagecopy.Article{
		Title: pagecopy.TrimSpace(article.Title),
		Text:  text,
		HTML:  article.Content,
	}, nil
}
