// Package clipboard publishes payloads to the system clipboard.
package clipboard

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/fwojciec/pagecopy"
)

// Ensure System implements pagecopy.Clipboard at compile time.
var _ pagecopy.Clipboard = (*System)(nil)

// System implements pagecopy.Clipboard using github.com/atotto/clipboard.
type System struct {
	write       func(string) error
	unsupported bool
}

// NewSystem returns a new System clipboard.
func NewSystem() *System {
	return &System{
		write:       clipboard.WriteAll,
		unsupported: clipboard.Unsupported,
	}
}

// Copy writes text to the system clipboard.
func (s *System) Copy(text string) error {
	if s.unsupported {
		return pagecopy.Errorf(pagecopy.ECLIPBOARD, "no clipboard utility available on this system")
	}
	if err := s.write(text); err != nil {
		return pagecopy.Errorf(pagecopy.ECLIPBOARD, "%v", err)
	}
	return nil
}

// Ensure Writer implements pagecopy.Clipboard at compile time.
var _ pagecopy.Clipboard = (*Writer)(nil)

// Writer implements pagecopy.Clipboard by printing the payload to a writer.
// It stands in for the system clipboard on headless machines.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer that prints payloads to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Copy writes text followed by a newline.
func (c *Writer) Copy(text string) error {
	if _, err := fmt.Fprintln(c.w, text); err != nil {
		return pagecopy.Errorf(pagecopy.ECLIPBOARD, "%v", err)
	}
	return nil
}
