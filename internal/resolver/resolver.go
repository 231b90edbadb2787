// Package resolver performs the static lexical-analysis pass described in
// spec §4.2: a single AST walk that produces an expression→scope-distance
// side table and reports static-semantic errors (undeclared self-reference,
// bad `return`, `this`/`super` misuse, self-inheriting classes).
//
// Grounded on the teacher's codecrafters/cmd/resolver.go, which already
// keys its side table by `map[Expr]int` — exploiting that in Go an
// interface value holding a pointer compares by pointer identity, exactly
// the "expression identity" spec §9 requires. Reporting is generalized from
// the teacher's os.Exit(65) calls to a non-fatal ErrorFunc callback so a
// single bad construct doesn't abort the rest of the walk (spec §7: static
// semantic errors set had_error but the walk continues).
package resolver

import (
	"github.com/jakobknauer/plox/internal/ast"
	"github.com/jakobknauer/plox/internal/token"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionMethod
	functionInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// ErrorFunc reports a static-semantic error anchored to a token.
type ErrorFunc func(tok token.Token, message string)

// Resolver walks a parsed program and produces the Locals side table.
type Resolver struct {
	onError ErrorFunc

	scopes []map[string]bool

	currentFunction functionType
	currentClass    classType

	// Locals maps a Variable/Assign/This/Super expression to the number of
	// enclosing scopes to traverse to find its binding. Absence means the
	// name is global. Keyed by the Expr interface value itself (pointer
	// identity), never by node contents.
	Locals map[ast.Expr]int
}

// New creates a Resolver. onError may be nil.
func New(onError ErrorFunc) *Resolver {
	if onError == nil {
		onError = func(token.Token, string) {}
	}
	return &Resolver{onError: onError, Locals: make(map[ast.Expr]int)}
}

// Resolve walks every top-level statement and returns the side table.
func (r *Resolver) Resolve(stmts []ast.Stmt) map[ast.Expr]int {
	r.resolveStmts(stmts)
	return r.Locals
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.Class:
		r.classDecl(s)
	case *ast.Expression:
		r.resolveExpr(s.Expr)
	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, functionFunction)
	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.Print:
		r.resolveExpr(s.Expr)
	case *ast.Return:
		if r.currentFunction == functionNone {
			r.onError(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == functionInitializer {
				r.onError(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.Var:
		r.declare(s.Name)
		if s.Init != nil {
			r.resolveExpr(s.Init)
		}
		r.define(s.Name)
	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) classDecl(c *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(c.Name)
	r.define(c.Name)

	if c.Superclass != nil {
		if c.Superclass.Name.Lexeme == c.Name.Lexeme {
			r.onError(c.Superclass.Name, "A class can't inherit from itself.")
		}
		r.currentClass = classSubclass
		r.resolveExpr(c.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range c.Methods {
		fnType := functionMethod
		if method.Name.Lexeme == "init" {
			fnType = functionInitializer
		}
		r.resolveFunction(method, fnType)
	}

	r.endScope()

	if c.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}

func (r *Resolver) resolveFunction(fn *ast.Function, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}
	case *ast.Get:
		r.resolveExpr(e.Object) // the name is resolved dynamically
	case *ast.Grouping:
		r.resolveExpr(e.Inner)
	case *ast.ListInitializer:
		for _, item := range e.Items {
			r.resolveExpr(item)
		}
	case *ast.Literal:
		// nothing to resolve
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object) // the name is resolved dynamically
	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.onError(e.Keyword, "Can't use 'super' outside of a class.")
		case classClass:
			r.onError(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, "super")
	case *ast.This:
		if r.currentClass == classNone {
			r.onError(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, "this")
	case *ast.Unary:
		r.resolveExpr(e.Right)
	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; declared && !defined {
				r.onError(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)
	default:
		panic("resolver: unhandled expression type")
	}
}

// resolveLocal scans scopes from innermost outward; on the first scope
// containing name, it records the distance and stops. Absence leaves expr
// out of Locals entirely, meaning "global" at interpretation time.
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.Locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.onError(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}
