// Package trafilatura provides a pagecopy.TextExtractor backed by
// go-trafilatura, for pages the selector heuristics handle poorly.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/pagecopy"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagecopy.TextExtractor at compile time.
var _ pagecopy.TextExtractor = (*Extractor)(nil)

// Extractor finds the main text with trafilatura's scoring, falling back to
// its bundled readability and dom-distiller engines when scoring finds
// too little. Reader comments are always dropped.
type Extractor struct {
	pageURL *url.URL
	tables  bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPageURL sets the address the HTML was loaded from, used to resolve
// relative references and as a metadata hint.
func WithPageURL(u *url.URL) Option {
	return func(e *Extractor) {
		e.pageURL = u
	}
}

// WithTables keeps tables inside the article body. Tables are dropped by
// default since they rarely read well as plain text.
func WithTables(keep bool) Option {
	return func(e *Extractor) {
		e.tables = keep
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

// ExtractText returns the article body as normalized text plus the
// rendered content node for Markdown conversion.
func (e *Extractor) ExtractText(rawHTML string) (*pagecopy.Article, error) {
	if rawHTML == "" {
		return nil, pagecopy.Errorf(pagecopy.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{
		OriginalURL:     e.pageURL,
		EnableFallback:  true,
		ExcludeComments: true,
		ExcludeTables:   !e.tables,
	})
	if err != nil {
		return nil, pagecopy.Errorf(pagecopy.ENOCONTENT, "%v", err)
	}

	// Both the text and the node are needed downstream
	text := pagecopy.NormalizeWhitespace(result.ContentText)
	if text == "" || result.ContentNode == nil {
		return nil, pagecopy.Errorf(pagecopy.ENOCONTENT, "No content found on page")
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, result.ContentNode); err != nil {
		return nil, pagecopy.Errorf(pagecopy.EINTERNAL, "rendering content: %v", err)
	}

	return &pagecopy.Article{
		Title: pagecopy.TrimSpace(result.Metadata.Title),
		Text:  text,
		HTML:  buf.String(),
	}, nil
}
