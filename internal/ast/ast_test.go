package ast_test

import (
	"testing"

	"github.com/jakobknauer/plox/internal/ast"
	"github.com/jakobknauer/plox/internal/token"
)

func TestDistinctNodesHaveDistinctIdentity(t *testing.T) {
	a := &ast.Variable{Name: token.New(token.Identifier, "x", nil, 1)}
	b := &ast.Variable{Name: token.New(token.Identifier, "x", nil, 1)}

	locals := map[ast.Expr]int{}
	locals[a] = 0
	locals[b] = 1

	if len(locals) != 2 {
		t.Fatalf("expected structurally identical nodes to key separately, got %d entries", len(locals))
	}
	if locals[a] != 0 || locals[b] != 1 {
		t.Fatalf("lookup by the same pointer must return the value stored for that pointer")
	}
}

func TestBinaryString(t *testing.T) {
	expr := &ast.Binary{
		Left:  &ast.Literal{Value: 1.0},
		Op:    token.New(token.Plus, "+", nil, 1),
		Right: &ast.Literal{Value: 2.0},
	}
	want := "(+ 1 2)"
	if got := expr.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestClassStringIncludesSuperclass(t *testing.T) {
	class := &ast.Class{
		Name:       token.New(token.Identifier, "Derived", nil, 1),
		Superclass: &ast.Variable{Name: token.New(token.Identifier, "Base", nil, 1)},
	}
	got := class.String()
	if got == "" {
		t.Fatal("expected non-empty string")
	}
	if got[:len("class Derived < Base")] != "class Derived < Base" {
		t.Fatalf("got %q", got)
	}
}
