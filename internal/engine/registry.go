package engine

import (
	"fmt"
	"slices"
)

// Registry maps symbolic keys to values, typically factory functions,
// populated at startup and looked up by key.
type Registry[T any] struct {
	kind    string
	entries map[string]T
}

// NewRegistry returns an empty registry. kind names the entries in panics.
func NewRegistry[T any](kind string) *Registry[T] {
	return &Registry[T]{kind: kind, entries: make(map[string]T)}
}

// Register adds an entry. Registering the same key twice panics.
func (r *Registry[T]) Register(name string, value T) {
	if _, exists := r.entries[name]; exists {
		panic(fmt.Sprintf("%s %q already registered", r.kind, name))
	}
	r.entries[name] = value
}

// Lookup returns the entry for name.
func (r *Registry[T]) Lookup(name string) (T, bool) {
	v, ok := r.entries[name]
	return v, ok
}

// Names returns a sorted list of all registered keys.
func (r *Registry[T]) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *Registry[T]) Len() int {
	return len(r.entries)
}
