// Package ast defines the expression and statement node types that make up
// a parsed Lox program.
//
// Each node is a distinct Go type implementing Expr or Stmt. The resolver's
// side table is keyed directly by Expr values (an interface holding a
// pointer): two structurally identical nodes compare unequal unless they are
// literally the same pointer, which gives node identity for free instead of
// needing a synthetic id (spec §3, §9 "Expression identity").
package ast

import "github.com/jakobknauer/plox/internal/token"

// Expr is implemented by every expression node.
type Expr interface {
	String() string
	exprNode()
}

// Literal is a nil/bool/number/string constant.
type Literal struct {
	Value any
}

func (*Literal) exprNode() {}

// Grouping is a parenthesized expression, kept distinct so printers and
// tooling can round-trip the source grouping.
type Grouping struct {
	Inner Expr
}

func (*Grouping) exprNode() {}

// Unary is a prefix operator application: `-x` or `!x`.
type Unary struct {
	Op    token.Token
	Right Expr
}

func (*Unary) exprNode() {}

// Binary is an infix operator application covering arithmetic, comparison,
// equality, and the overloaded `+`.
type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Binary) exprNode() {}

// Logical is `and`/`or`, which short-circuit and so cannot share Binary's
// eager-evaluation semantics.
type Logical struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

func (*Logical) exprNode() {}

// Variable is a name reference, resolved by the resolver to either a local
// scope distance or (absent from the side table) the globals frame.
type Variable struct {
	Name token.Token
}

func (*Variable) exprNode() {}

// Assign is `name = value`.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (*Assign) exprNode() {}

// Call is a function/class/method invocation. Paren anchors call-site
// errors (arity mismatch, non-callable callee) to a concrete token.
type Call struct {
	Callee Expr
	Paren  token.Token
	Args   []Expr
}

func (*Call) exprNode() {}

// Get is property access: `object.name`.
type Get struct {
	Object Expr
	Name   token.Token
}

func (*Get) exprNode() {}

// Set is property assignment: `object.name = value`.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (*Set) exprNode() {}

// This is the `this` keyword used inside a method body.
type This struct {
	Keyword token.Token
}

func (*This) exprNode() {}

// Super is `super.method`.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

func (*Super) exprNode() {}

// ListInitializer is a bracketed list literal: `[1, 2, 3]`. It desugars at
// evaluation time into a series of calls against the built-in List class
// (internal/builtins), not at parse time, so the resolver still sees a
// single expression node.
type ListInitializer struct {
	Bracket token.Token
	Items   []Expr
}

func (*ListInitializer) exprNode() {}
