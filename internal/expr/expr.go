// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

// Package expr defines arith expression types and their ownership handles.
package expr

import (
	"strconv"
	"strings"
)

// Node is the interface all expression node types implement.
// Nodes are immutable after construction; sharing a node between
// trees is always safe.
type Node interface {
	// String returns the textual rendering of the node. Rendering
	// never fails and never evaluates.
	String() string

	node()
}

// Const is a constant integer leaf.
type Const struct {
	Value int64
}

func (c *Const) String() string { return strconv.FormatInt(c.Value, 10) }
func (c *Const) node()          {}

// Var is a variable leaf. Its value comes from the evaluation
// context, not from the node.
type Var struct {
	Name string
}

func (v *Var) String() string { return v.Name }
func (v *Var) node()          {}

// Op identifies a binary operator.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	// Div is integer division, truncating toward zero.
	Div
)

// Symbol returns the operator's rendering symbol.
func (op Op) Symbol() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "//"
	default:
		return "?"
	}
}

func (op Op) String() string { return op.Symbol() }

// Binary is a composite node applying Op to two child expressions.
// It holds an ownership stake in both children via their handles;
// the children themselves may be shared with other trees.
type Binary struct {
	Op    Op
	Left  Handle
	Right Handle
}

func (b *Binary) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(b.Left.String())
	sb.WriteByte(' ')
	sb.WriteString(b.Op.Symbol())
	sb.WriteByte(' ')
	sb.WriteString(b.Right.String())
	sb.WriteByte(')')
	return sb.String()
}

func (b *Binary) node() {}
