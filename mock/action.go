package mock

import "github.com/fwojciec/pagecopy"

var _ pagecopy.Action = (*Action)(nil)

// Action is a mock implementation of pagecopy.Action.
type Action struct {
	NameFn    func() string
	PerformFn func(html string) (*pagecopy.Payload, error)
}

func (a *Action) Name() string {
	return a.NameFn()
}

func (a *Action) Perform(html string) (*pagecopy.Payload, error) {
	return a.PerformFn(html)
}
