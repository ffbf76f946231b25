package mock

import "github.com/fwojciec/pagecopy"

var _ pagecopy.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of pagecopy.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (*pagecopy.Article, error)
}

func (e *TextExtractor) ExtractText(html string) (*pagecopy.Article, error) {
	return e.ExtractTextFn(html)
}

var _ pagecopy.TableExtractor = (*TableExtractor)(nil)

// TableExtractor is a mock implementation of pagecopy.TableExtractor.
type TableExtractor struct {
	ExtractTableFn func(html string) (*pagecopy.Table, error)
}

func (e *TableExtractor) ExtractTable(html string) (*pagecopy.Table, error) {
	return e.ExtractTableFn(html)
}
