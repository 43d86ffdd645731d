// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package pool implements interning of leaf expression nodes.
//
// The pool deduplicates constants and variables: while at least one
// strong handle for a key is alive, every request for that key
// resolves to the same node. The pool itself holds only weak handles,
// so it is never the reason a node outlives its last external owner.
// Once the last owner releases a node, the pool entry goes stale and
// the next request for the key constructs a fresh node. There is no
// uniqueness guarantee across the two lifetimes, only at most one
// live node per key at a time.
//
// A Pool is not safe for concurrent use without external
// synchronization: prune, weak resolution, and construction form a
// check-then-act sequence.
package pool

import (
	"nickandperla.net/arith/internal/expr"
)

// Pool interns constant and variable leaf nodes by key.
type Pool struct {
	consts map[int64]expr.Weak
	vars   map[string]expr.Weak
}

// New creates an empty pool. Callers own the pool's lifecycle:
// interning applies for exactly as long as they keep using it.
func New() *Pool {
	return &Pool{
		consts: make(map[int64]expr.Weak),
		vars:   make(map[string]expr.Weak),
	}
}

// Constant returns a strong handle for the constant v, reusing the
// live interned node when one exists and constructing a new node
// otherwise. Stale entries for constants are pruned first.
func (p *Pool) Constant(v int64) expr.Handle {
	prune(p.consts)
	if w, ok := p.consts[v]; ok {
		if h, ok := w.Resolve(); ok {
			return h
		}
	}
	h := expr.NewConst(v)
	p.consts[v] = h.Downgrade()
	return h
}

// Variable returns a strong handle for the variable name, reusing
// the live interned node when one exists and constructing a new node
// otherwise. Stale entries for variables are pruned first.
func (p *Pool) Variable(name string) expr.Handle {
	prune(p.vars)
	if w, ok := p.vars[name]; ok {
		if h, ok := w.Resolve(); ok {
			return h
		}
	}
	h := expr.NewVar(name)
	p.vars[name] = h.Downgrade()
	return h
}

// Entries reports the number of pool entries currently held, live or
// stale. Stale entries persist only until the next request for a
// node of their kind.
func (p *Pool) Entries() int {
	return len(p.consts) + len(p.vars)
}

// prune removes every entry whose weak handle no longer resolves.
// This runs before each request, so staleness is bounded: an entry
// for a dead node survives at most until the next request for that
// node kind.
func prune[K comparable](m map[K]expr.Weak) {
	for k, w := range m {
		if w.Expired() {
			delete(m, k)
		}
	}
}
