package mock

import "github.com/fwojciec/pagecopy"

var _ pagecopy.Converter = (*Converter)(nil)

// Converter is a mock implementation of pagecopy.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
