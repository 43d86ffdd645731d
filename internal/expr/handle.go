// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) 2023-2026 Nicholas R. Perez

package expr

// cell tracks shared ownership of a single node. refs counts the
// strong handles currently alive; once it reaches zero the node is
// dead and the cell never comes back to life, so a Weak pointing at
// it resolves to nothing from then on.
type cell struct {
	node Node
	refs int
}

// Handle is a strong, shared owner of an expression node. The zero
// Handle owns nothing. Handles are not safe for concurrent use
// without external synchronization.
type Handle struct {
	c *cell
}

// NewConst returns a handle owning a fresh constant node.
func NewConst(v int64) Handle {
	return Handle{&cell{node: &Const{Value: v}, refs: 1}}
}

// NewVar returns a handle owning a fresh variable node.
func NewVar(name string) Handle {
	return Handle{&cell{node: &Var{Name: name}, refs: 1}}
}

// NewBinary returns a handle owning a fresh composite node. Ownership
// of left and right transfers to the composite: the caller must not
// Release them afterwards unless it first Retains its own stake.
func NewBinary(op Op, left, right Handle) Handle {
	return Handle{&cell{node: &Binary{Op: op, Left: left, Right: right}, refs: 1}}
}

// Node returns the owned node, or nil for a zero or released handle.
func (h Handle) Node() Node {
	if h.c == nil {
		return nil
	}
	return h.c.node
}

// Alive reports whether the handle still owns a live node.
func (h Handle) Alive() bool {
	return h.c != nil && h.c.refs > 0
}

// Retain adds an ownership stake and returns a handle for it. Each
// retained handle must be Released independently.
func (h Handle) Retain() Handle {
	if h.c == nil || h.c.refs == 0 {
		return Handle{}
	}
	h.c.refs++
	return h
}

// Release drops one ownership stake. When the last stake is dropped
// the node dies; a composite then releases its stake in both
// children, which may cascade. Releasing a zero or already-dead
// handle is a no-op.
func (h Handle) Release() {
	c := h.c
	if c == nil || c.refs == 0 {
		return
	}
	c.refs--
	if c.refs > 0 {
		return
	}
	if b, ok := c.node.(*Binary); ok {
		b.Left.Release()
		b.Right.Release()
	}
	c.node = nil
}

// String renders the owned node; a dead handle renders as the empty
// string.
func (h Handle) String() string {
	n := h.Node()
	if n == nil {
		return ""
	}
	return n.String()
}

// Downgrade returns a weak observer of the node. The weak handle
// never contributes to the node's lifetime.
func (h Handle) Downgrade() Weak {
	return Weak{h.c}
}

// Weak observes a node without owning it. It must be Resolved before
// use; it is never dereferenced directly.
type Weak struct {
	c *cell
}

// Resolve returns a new strong handle for the observed node, or
// ok=false if the node has died. A stale weak handle always fails to
// resolve; it never yields a wrong node.
func (w Weak) Resolve() (Handle, bool) {
	if w.c == nil || w.c.refs == 0 {
		return Handle{}, false
	}
	w.c.refs++
	return Handle{w.c}, true
}

// Expired reports whether the observed node has died.
func (w Weak) Expired() bool {
	return w.c == nil || w.c.refs == 0
}
