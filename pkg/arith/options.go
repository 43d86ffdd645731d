package arith

import (
	"nickandperla.net/arith/internal/store"
)

// Option configures an Engine.
type Option func(*Engine)

// WithSQLiteStore configures SQLite context persistence at the given
// path.
func WithSQLiteStore(path string) Option {
	return func(e *Engine) {
		s, err := store.NewSQLite(path)
		if err == nil {
			e.store = s
		}
	}
}

// WithMemoryStore configures an in-memory context store (for testing).
func WithMemoryStore() Option {
	return func(e *Engine) {
		e.store = store.NewMemory()
	}
}
