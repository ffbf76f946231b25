package pagecopy

// Clipboard publishes text to the system clipboard.
type Clipboard interface {
	// Copy replaces the clipboard contents with text.
	// Returns ECLIPBOARD, carrying the underlying message, if the write is
	// rejected. Failed writes are not retried.
	Copy(text string) error
}
