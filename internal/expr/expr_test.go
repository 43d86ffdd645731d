package expr

import "testing"

func TestRenderLeaves(t *testing.T) {
	tests := []struct {
		h        Handle
		expected string
	}{
		{NewConst(0), "0"},
		{NewConst(42), "42"},
		{NewConst(-7), "-7"},
		{NewVar("x"), "x"},
		{NewVar("total"), "total"},
	}

	for _, tt := range tests {
		if got := tt.h.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
		tt.h.Release()
	}
}

func TestRenderBinary(t *testing.T) {
	tests := []struct {
		op       Op
		expected string
	}{
		{Add, "(1 + 2)"},
		{Sub, "(1 - 2)"},
		{Mul, "(1 * 2)"},
		{Div, "(1 // 2)"},
	}

	for _, tt := range tests {
		h := NewBinary(tt.op, NewConst(1), NewConst(2))
		if got := h.String(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
		h.Release()
	}
}

func TestRenderNested(t *testing.T) {
	// ((2 + x) * 5)
	sum := NewBinary(Add, NewConst(2), NewVar("x"))
	root := NewBinary(Mul, sum, NewConst(5))
	defer root.Release()

	if got := root.String(); got != "((2 + x) * 5)" {
		t.Errorf("expected '((2 + x) * 5)', got %q", got)
	}
}

func TestOpSymbols(t *testing.T) {
	tests := []struct {
		op       Op
		expected string
	}{
		{Add, "+"},
		{Sub, "-"},
		{Mul, "*"},
		{Div, "//"},
	}

	for _, tt := range tests {
		if got := tt.op.Symbol(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}
