package pagecopy

// Article holds the main content extracted from an HTML page.
type Article struct {
	// Title is the page title, if the page declares one.
	Title string

	// Text is the cleaned plain text of the main content.
	Text string

	// HTML is the cleaned main content as HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	HTML string
}

// TextExtractor locates the main content of an HTML page.
type TextExtractor interface {
	// ExtractText processes raw HTML and returns the cleaned main content.
	// Returns ENOCONTENT if nothing usable is found.
	ExtractText(html string) (*Article, error)
}

// TableExtractor reads row records out of a data table.
type TableExtractor interface {
	// ExtractTable processes raw HTML and returns the table's records.
	// Returns ENOTABLE, ENOROWS or ENODATA when the page has no table,
	// the table has no body rows, or no row yields any data.
	ExtractTable(html string) (*Table, error)
}
