package scrape

import (
	"sort"

	"github.com/fwojciec/pagecopy"
)

var _ pagecopy.ActionRegistry = (*Registry)(nil)

// Registry is the command dispatch table: it maps action identifiers to
// the actions that handle them.
type Registry struct {
	actions map[string]pagecopy.Action
}

// NewRegistry creates a Registry holding the given actions.
func NewRegistry(actions ...pagecopy.Action) *Registry {
	r := &Registry{actions: make(map[string]pagecopy.Action)}
	for _, a := range actions {
		r.Register(a)
	}
	return r
}

// Get returns the action registered under name.
// Returns nil if no action is registered for the name.
func (r *Registry) Get(name string) pagecopy.Action {
	return r.actions[name]
}

// Register adds an action under its Name.
// If an action is already registered under that name, it is replaced.
func (r *Registry) Register(action pagecopy.Action) {
	r.actions[action.Name()] = action
}

// List returns the registered action names in sorted order.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
