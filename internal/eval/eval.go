// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package eval implements the arith expression evaluator.
package eval

import (
	"fmt"

	"nickandperla.net/arith/internal/expr"
)

// Context maps variable names to their values for one Evaluate call.
// A context is supplied by the caller and never retained by any node.
// An empty or partially populated context is legal; only lookups for
// names actually referenced during evaluation can fail.
type Context map[string]int64

// Lookup returns the value bound to name, if any.
func (c Context) Lookup(name string) (int64, bool) {
	v, ok := c[name]
	return v, ok
}

// Clone returns a copy of the context.
func (c Context) Clone() Context {
	out := make(Context, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// Evaluate computes the value of the expression under ctx. Evaluation
// is depth-first, left subtree before right, so an error in the left
// subtree is reported before the right subtree is looked at. The
// first error aborts the call; there is no partial result.
func Evaluate(h expr.Handle, ctx Context) (int64, error) {
	n := h.Node()
	if n == nil {
		return 0, fmt.Errorf("evaluate: released expression handle")
	}
	return evalNode(n, ctx)
}

func evalNode(n expr.Node, ctx Context) (int64, error) {
	switch n := n.(type) {
	case *expr.Const:
		return n.Value, nil
	case *expr.Var:
		v, ok := ctx.Lookup(n.Name)
		if !ok {
			return 0, &UndefinedVariableError{Name: n.Name}
		}
		return v, nil
	case *expr.Binary:
		left, err := evalNode(n.Left.Node(), ctx)
		if err != nil {
			return 0, err
		}
		right, err := evalNode(n.Right.Node(), ctx)
		if err != nil {
			return 0, err
		}
		return apply(n.Op, left, right)
	default:
		return 0, fmt.Errorf("evaluate: unknown node type %T", n)
	}
}

func apply(op expr.Op, left, right int64) (int64, error) {
	switch op {
	case expr.Add:
		return left + right, nil
	case expr.Sub:
		return left - right, nil
	case expr.Mul:
		return left * right, nil
	case expr.Div:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		// Go's / truncates toward zero, matching the // operator.
		return left / right, nil
	default:
		return 0, fmt.Errorf("evaluate: unknown operator %d", op)
	}
}

// Vars returns the distinct variable names referenced by the
// expression, in evaluation (left-to-right, first-seen) order.
func Vars(h expr.Handle) []string {
	var names []string
	seen := make(map[string]bool)
	var walk func(n expr.Node)
	walk = func(n expr.Node) {
		switch n := n.(type) {
		case *expr.Var:
			if !seen[n.Name] {
				seen[n.Name] = true
				names = append(names, n.Name)
			}
		case *expr.Binary:
			walk(n.Left.Node())
			walk(n.Right.Node())
		}
	}
	if n := h.Node(); n != nil {
		walk(n)
	}
	return names
}
