package format

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownFormat = errors.New("unknown format")

// Formatter renders calculator output.
type Formatter interface {
	Sequence(terms []int64) string
	// Term renders a single value; nil means there is no value.
	Term(value *int64) string
}

// Registry manages available formatters.
type Registry struct {
	formatters map[string]func() Formatter
}

// NewRegistry creates a registry with the default formatters.
func NewRegistry() *Registry {
	registry := &Registry{
		formatters: make(map[string]func() Formatter),
	}

	registry.Register("list", func() Formatter { return NewList() })
	registry.Register("json", func() Formatter { return NewJSON() })

	return registry
}

// Register adds a formatter factory to the registry.
func (r *Registry) Register(name string, factory func() Formatter) {
	r.formatters[name] = factory
}

// Get creates a formatter by name.
func (r *Registry) Get(name string) (Formatter, error) {
	factory, exists := r.formatters[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, name)
	}
	return factory(), nil
}

// List returns all formatter names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.formatters))
	for name := range r.formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
