// Package store provides persistence for named evaluation contexts.
//
// The expression engine itself keeps no persistent state; stores are
// consumed by the facade and the CLI to save and reload sets of
// variable bindings between runs.
package store

import "nickandperla.net/arith/internal/eval"

// Store is the interface for context persistence.
type Store interface {
	// Get retrieves a context by name. Returns nil if not found.
	Get(name string) (eval.Context, error)
	// Put stores a context by name, overwriting if it exists.
	Put(name string, ctx eval.Context) error
	// Delete removes a context by name.
	Delete(name string) error
	// List returns all stored context names, sorted.
	List() ([]string, error)
	// Close releases resources.
	Close() error
}
