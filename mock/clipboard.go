package mock

import "github.com/fwojciec/pagecopy"

var _ pagecopy.Clipboard = (*Clipboard)(nil)

// Clipboard is a mock implementation of pagecopy.Clipboard.
type Clipboard struct {
	CopyFn func(text string) error
}

func (c *Clipboard) Copy(text string) error {
	return c.CopyFn(text)
}
