package scrape

import "github.com/fwojciec/pagecopy"

// Action identifiers.
const (
	ActionArticle  = "article"
	ActionKeywords = "keywords"
)

// Compile-time interface verification.
var (
	_ pagecopy.Action = (*ArticleAction)(nil)
	_ pagecopy.Action = (*TableAction)(nil)
)

// ArticleAction copies the main text of a page.
type ArticleAction struct {
	Extractor pagecopy.TextExtractor

	// Converter, when set, turns the cleaned content HTML into Markdown
	// instead of copying plain text.
	Converter pagecopy.Converter
}

// Name returns ActionArticle.
func (a *ArticleAction) Name() string {
	return ActionArticle
}

// Perform extracts the article and formats it as text or Markdown.
func (a *ArticleAction) Perform(html string) (*pagecopy.Payload, error) {
	article, err := a.Extractor.ExtractText(html)
	if err != nil {
		return nil, err
	}

	if a.Converter == nil {
		return &pagecopy.Payload{Text: article.Text, Format: pagecopy.FormatText, Count: 1}, nil
	}

	md, err := a.Converter.Convert(article.HTML)
	if err != nil {
		return nil, err
	}
	if md == "" {
		return nil, pagecopy.Errorf(pagecopy.ENOCONTENT, "No content after conversion")
	}

	return &pagecopy.Payload{Text: md, Format: pagecopy.FormatMarkdown, Count: 1}, nil
}

// TableAction copies the records of a page's data table as CSV.
type TableAction struct {
	Extractor pagecopy.TableExtractor
}

// Name returns ActionKeywords.
func (a *TableAction) Name() string {
	return ActionKeywords
}

// Perform extracts the table and formats it as CSV.
func (a *TableAction) Perform(html string) (*pagecopy.Payload, error) {
	table, err := a.Extractor.ExtractTable(html)
	if err != nil {
		return nil, err
	}

	return &pagecopy.Payload{
		Text:   table.CSV(),
		Format: pagecopy.FormatCSV,
		Count:  table.Count(),
	}, nil
}
