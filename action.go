package pagecopy

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// Payload formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// Payload is the text an action hands to the clipboard.
type Payload struct {
	Text string

	// Format is one of FormatText, FormatMarkdown or FormatCSV.
	Format string

	// Count is the number of items in Text (rows for tables, 1 for articles).
	Count int
}

// Summary describes the payload for a status line.
func (p *Payload) Summary() string {
	if p.Format == FormatCSV {
		return fmt.Sprintf("data for %d rows as CSV", p.Count)
	}
	return fmt.Sprintf("%d characters as %s", utf8.RuneCountInString(p.Text), p.Format)
}

// Action turns the HTML of a target document into a clipboard payload.
type Action interface {
	// Name returns the action's identifier (e.g., "article", "keywords").
	Name() string

	// Perform extracts the payload from raw HTML.
	Perform(html string) (*Payload, error)
}

// ActionRegistry maps action identifiers to actions.
type ActionRegistry interface {
	// Get returns the action registered under name.
	// Returns nil if no action is registered for the name.
	Get(name string) Action

	// Register adds an action under its Name.
	Register(action Action)

	// List returns the registered action names in sorted order.
	List() []string
}

// Runner executes one action end to end: load the target, extract the
// payload and publish it.
type Runner interface {
	Run(ctx context.Context, action string, target string) *Report
}
