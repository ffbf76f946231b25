package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagecopy"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure ContentExtractor implements pagecopy.TextExtractor at compile time.
var _ pagecopy.TextExtractor = (*ContentExtractor)(nil)

// ContentExtractor finds the main content of a page with an ordered list of
// CSS selectors, falling back to the longest paragraph on the page. Matched
// content is cloned before denylisted regions are stripped, so the parsed
// document is never modified.
type ContentExtractor struct {
	selectors []string
	denylist  []string
}

// ContentOption configures a ContentExtractor.
type ContentOption func(*ContentExtractor)

// WithSelectors replaces the content selectors.
// Defaults to DefaultContentSelectors if not specified.
func WithSelectors(selectors ...string) ContentOption {
	return func(e *ContentExtractor) {
		e.selectors = selectors
	}
}

// WithDenylist replaces the selectors of regions removed from content.
// Defaults to DefaultDenylist if not specified.
func WithDenylist(selectors ...string) ContentOption {
	return func(e *ContentExtractor) {
		e.denylist = selectors
	}
}

// NewContentExtractor creates a new ContentExtractor.
func NewContentExtractor(opts ...ContentOption) *ContentExtractor {
	e := &ContentExtractor{
		selectors: DefaultContentSelectors,
		denylist:  DefaultDenylist,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractText parses HTML and returns the cleaned main content.
func (e *ContentExtractor) ExtractText(rawHTML string) (*pagecopy.Article, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagecopy.Errorf(pagecopy.EINVALID, "failed to parse HTML: %v", err)
	}

	// Find the content root
	content := e.Locate(doc)
	if content == nil {
		return nil, pagecopy.Errorf(pagecopy.ENOCONTENT, "No content found on page")
	}

	// Strip boilerplate from a copy
	cleaned := e.Clean(content)
	text := pagecopy.NormalizeWhitespace(cleaned.Text())
	if text == "" {
		return nil, pagecopy.Errorf(pagecopy.ENOCONTENT, "No content after cleanup")
	}

	// Keep the cleaned markup for Markdown conversion
	contentHTML, err := goquery.OuterHtml(cleaned)
	if err != nil {
		return nil, err
	}

	return &pagecopy.Article{
		Title: pagecopy.TrimSpace(doc.Find("title").First().Text()),
		Text:  text,
		HTML:  contentHTML,
	}, nil
}

// Locate returns the main content element of doc, or nil if the page has
// neither a matching selector nor any non-empty paragraph.
//
// Paragraph length is measured in runes, so a character outside the Basic
// Multilingual Plane (an emoji, say) counts once rather than as two UTF-16
// code units. "<p>😀😀😀</p><p>abcde</p>" therefore selects "abcde".
func (e *ContentExtractor) Locate(doc *goquery.Document) *goquery.Selection {
	// Selectors in priority order; first element of the first match wins
	for _, selector := range e.selectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}

	// Longest paragraph by character count; ties keep the first seen.
	var longest string
	maxLen := 0
	doc.Find("p").Each(func(_ int, p *goquery.Selection) {
		text := p.Text()
		if n := utf8.RuneCountInString(text); n > maxLen {
			maxLen = n
			longest = text
		}
	})
	if longest == "" {
		return nil
	}

	// Detach the paragraph text from its surrounding markup

	return wrapText(longest)
}

// Clean returns a copy of sel with every denylisted region removed.
// sel itself is left untouched.
func (e *ContentExtractor) Clean(sel *goquery.Selection) *goquery.Selection {
	clone := sel.Clone()

	// Every match is removed, even if nothing is left
	for _, selector := range e.denylist {
		clone.Find(selector).Remove()
	}
	return clone
}

// wrapText builds a detached div holding only text.
func wrapText(text string) *goquery.Selection {
	div := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	div.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return goquery.NewDocumentFromNode(div).Selection
}
