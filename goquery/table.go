package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagecopy"
)

// Ensure TableExtractor implements pagecopy.TableExtractor at compile time.
var _ pagecopy.TableExtractor = (*TableExtractor)(nil)

// ColumnSpec describes how to read one logical column of a table row.
type ColumnSpec struct {
	// Name is the record key and CSV header of the column.
	Name string

	// Index is the 1-based position of the column's cell in the row.
	Index int

	// Fallbacks are tried inside the cell in order; the first match
	// supplies the value. The cell text is used when none match.
	Fallbacks []string
}

// TableExtractor reads records from the first table on a page.
type TableExtractor struct {
	columns []ColumnSpec
}

// NewTableExtractor creates a TableExtractor for the given columns.
// Defaults to KeywordColumns if no columns are given.
func NewTableExtractor(columns ...ColumnSpec) *TableExtractor {
	if len(columns) == 0 {
		columns = KeywordColumns
	}
	return &TableExtractor{columns: columns}
}

// Columns returns the column names in output order.
func (e *TableExtractor) Columns() []string {
	names := make([]string, len(e.columns))
	for i, col := range e.columns {
		names[i] = col.Name
	}
	return names
}

// ExtractTable parses HTML and returns one record per body row that has at
// least one non-empty column. Rows with no data (headers, dividers) are
// dropped.
func (e *TableExtractor) ExtractTable(rawHTML string) (*pagecopy.Table, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagecopy.Errorf(pagecopy.EINVALID, "failed to parse HTML: %v", err)
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, pagecopy.Errorf(pagecopy.ENOTABLE, "Could not find the table")
	}

	rows := table.Find("tbody tr")
	if rows.Length() == 0 {
		return nil, pagecopy.Errorf(pagecopy.ENOROWS, "No rows found in the table")
	}

	result := &pagecopy.Table{Columns: e.Columns()}
	rows.Each(func(_ int, row *goquery.Selection) {
		rec := make(pagecopy.Record, len(e.columns))
		found := false
		for _, col := range e.columns {
			v := readColumn(row, col)
			rec[col.Name] = v
			if v != "" {
				found = true
			}
		}
		if found {
			result.Records = append(result.Records, rec)
		}
	})

	if len(result.Records) == 0 {
		return nil, pagecopy.Errorf(pagecopy.ENODATA, "No data found in the table")
	}

	return result, nil
}

// readColumn returns the trimmed text of col in row. Any failure, including
// a missing cell, yields an empty string.
func readColumn(row *goquery.Selection, col ColumnSpec) (value string) {
	defer func() {
		if r := recover(); r != nil {
			value = ""
		}
	}()

	cell := row.Find(fmt.Sprintf("td:nth-child(%d)", col.Index)).First()
	if cell.Length() == 0 {
		return ""
	}

	for _, selector := range col.Fallbacks {
		if el := cell.Find(selector).First(); el.Length() > 0 {
			return pagecopy.TrimSpace(el.Text())
		}
	}

	return pagecopy.TrimSpace(cell.Text())
}
