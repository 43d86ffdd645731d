// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package arith provides the public API for the arith expression engine.
package arith

import (
	"errors"

	"nickandperla.net/arith/internal/eval"
	"nickandperla.net/arith/internal/expr"
	"nickandperla.net/arith/internal/pool"
	"nickandperla.net/arith/internal/store"
)

// Handle is a strong, shared owner of an expression node.
type Handle = expr.Handle

// Context maps variable names to values for one evaluation.
type Context = eval.Context

// Op identifies a binary operator.
type Op = expr.Op

// Binary operators.
const (
	Add = expr.Add
	Sub = expr.Sub
	Mul = expr.Mul
	Div = expr.Div
)

// UndefinedVariableError is returned by Evaluate when a referenced
// variable has no binding in the context.
type UndefinedVariableError = eval.UndefinedVariableError

// ErrDivisionByZero is returned by Evaluate when the right operand
// of an integer division evaluates to zero.
var ErrDivisionByZero = eval.ErrDivisionByZero

// ErrNoStore is returned by context persistence methods when the
// engine was built without a store.
var ErrNoStore = errors.New("no store configured")

// Engine is an expression engine with its own interning pool and an
// optional context store. An Engine is not safe for concurrent use
// without external synchronization.
type Engine struct {
	pool  *pool.Pool
	store store.Store
}

// New creates a new engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		pool: pool.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Constant returns a handle for the constant v, interned through the
// engine's pool.
func (e *Engine) Constant(v int64) Handle {
	return e.pool.Constant(v)
}

// Variable returns a handle for the variable name, interned through
// the engine's pool.
func (e *Engine) Variable(name string) Handle {
	return e.pool.Variable(name)
}

// Binary composes two expressions under op. Ownership of left and
// right transfers to the new composite.
func (e *Engine) Binary(op Op, left, right Handle) Handle {
	return expr.NewBinary(op, left, right)
}

// Evaluate computes the value of the expression under ctx.
func (e *Engine) Evaluate(h Handle, ctx Context) (int64, error) {
	return eval.Evaluate(h, ctx)
}

// Render returns the textual rendering of the expression.
func (e *Engine) Render(h Handle) string {
	return h.String()
}

// Vars returns the distinct variable names referenced by the
// expression, in left-to-right first-seen order.
func (e *Engine) Vars(h Handle) []string {
	return eval.Vars(h)
}

// SaveContext persists ctx under name.
func (e *Engine) SaveContext(name string, ctx Context) error {
	if e.store == nil {
		return ErrNoStore
	}
	return e.store.Put(name, ctx)
}

// LoadContext retrieves the context stored under name. Returns nil
// if no context with that name exists.
func (e *Engine) LoadContext(name string) (Context, error) {
	if e.store == nil {
		return nil, ErrNoStore
	}
	return e.store.Get(name)
}

// DeleteContext removes the context stored under name.
func (e *Engine) DeleteContext(name string) error {
	if e.store == nil {
		return ErrNoStore
	}
	return e.store.Delete(name)
}

// Contexts returns the names of all stored contexts, sorted.
func (e *Engine) Contexts() ([]string, error) {
	if e.store == nil {
		return nil, ErrNoStore
	}
	return e.store.List()
}

// Close releases the engine's store, if any.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}
