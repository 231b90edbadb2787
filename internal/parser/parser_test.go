package parser_test

import (
	"testing"

	"github.com/jakobknauer/plox/internal/ast"
	"github.com/jakobknauer/plox/internal/parser"
	"github.com/jakobknauer/plox/internal/scanner"
	"github.com/jakobknauer/plox/internal/token"
)

func parse(t *testing.T, src string) ([]ast.Stmt, []string) {
	t.Helper()
	tokens := scanner.New(src, nil).Scan()

	var errs []string
	stmts := parser.New(tokens, func(tok token.Token, msg string) {
		errs = append(errs, msg)
	}).Parse()
	return stmts, errs
}

func TestParseVarDeclWithInitializer(t *testing.T) {
	stmts, errs := parse(t, `var x = 1 + 2;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(stmts))
	}
	v, ok := stmts[0].(*ast.Var)
	if !ok {
		t.Fatalf("expected *ast.Var, got %T", stmts[0])
	}
	if v.Name.Lexeme != "x" {
		t.Fatalf("got name %q", v.Name.Lexeme)
	}
	if _, ok := v.Init.(*ast.Binary); !ok {
		t.Fatalf("expected Binary initializer, got %T", v.Init)
	}
}

func TestForDesugarsToWhileInsideBlock(t *testing.T) {
	stmts, errs := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	block, ok := stmts[0].(*ast.Block)
	if !ok {
		t.Fatalf("expected *ast.Block, got %T", stmts[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("expected initializer + while, got %d statements", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*ast.Var); !ok {
		t.Fatalf("expected initializer Var, got %T", block.Statements[0])
	}
	while, ok := block.Statements[1].(*ast.While)
	if !ok {
		t.Fatalf("expected *ast.While, got %T", block.Statements[1])
	}
	body, ok := while.Body.(*ast.Block)
	if !ok {
		t.Fatalf("expected while body Block (increment appended), got %T", while.Body)
	}
	if len(body.Statements) != 2 {
		t.Fatalf("expected original body + increment, got %d", len(body.Statements))
	}
}

func TestClassDeclWithSuperclassAndMethods(t *testing.T) {
	stmts, errs := parse(t, `class Cake < Pastry { taste() { return "yum"; } }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	class, ok := stmts[0].(*ast.Class)
	if !ok {
		t.Fatalf("expected *ast.Class, got %T", stmts[0])
	}
	if class.Superclass == nil || class.Superclass.Name.Lexeme != "Pastry" {
		t.Fatalf("expected superclass Pastry, got %+v", class.Superclass)
	}
	if len(class.Methods) != 1 || class.Methods[0].Name.Lexeme != "taste" {
		t.Fatalf("got methods %+v", class.Methods)
	}
}

func TestGetAndSetExpressions(t *testing.T) {
	stmts, errs := parse(t, `a.b.c = 1;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	exprStmt := stmts[0].(*ast.Expression)
	set, ok := exprStmt.Expr.(*ast.Set)
	if !ok {
		t.Fatalf("expected *ast.Set, got %T", exprStmt.Expr)
	}
	if set.Name.Lexeme != "c" {
		t.Fatalf("got set field %q", set.Name.Lexeme)
	}
	if _, ok := set.Object.(*ast.Get); !ok {
		t.Fatalf("expected nested Get for object, got %T", set.Object)
	}
}

func TestInvalidAssignmentTargetReportsErrorButContinuesParsing(t *testing.T) {
	stmts, errs := parse(t, "1 + 2 = 3;\nprint 1;")
	if len(errs) == 0 {
		t.Fatal("expected an 'Invalid assignment target' error")
	}
	found := false
	for _, e := range errs {
		if e == "Invalid assignment target." {
			found = true
		}
	}
	if !found {
		t.Fatalf("errors: %v", errs)
	}
	last := stmts[len(stmts)-1]
	if _, ok := last.(*ast.Print); !ok {
		t.Fatalf("expected parsing to continue past the bad assignment, got %T", last)
	}
}

func TestSyntaxErrorSynchronizesAndContinues(t *testing.T) {
	stmts, errs := parse(t, "var ;\nvar y = 2;")
	if len(errs) == 0 {
		t.Fatal("expected a syntax error")
	}
	if len(stmts) != 1 {
		t.Fatalf("expected the malformed decl dropped and the next kept, got %d stmts", len(stmts))
	}
	v, ok := stmts[0].(*ast.Var)
	if !ok || v.Name.Lexeme != "y" {
		t.Fatalf("got %+v", stmts[0])
	}
}

func TestListInitializerExpression(t *testing.T) {
	stmts, errs := parse(t, `var xs = [1, 2, 3];`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	v := stmts[0].(*ast.Var)
	list, ok := v.Init.(*ast.ListInitializer)
	if !ok {
		t.Fatalf("expected *ast.ListInitializer, got %T", v.Init)
	}
	if len(list.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(list.Items))
	}
}

func TestThisAndSuperInMethodBody(t *testing.T) {
	stmts, errs := parse(t, `class A < B { m() { return super.m(); } n() { return this; } }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	class := stmts[0].(*ast.Class)
	mReturn := class.Methods[0].Body[0].(*ast.Return)
	call := mReturn.Value.(*ast.Call)
	if _, ok := call.Callee.(*ast.Super); !ok {
		t.Fatalf("expected Super callee, got %T", call.Callee)
	}
	nReturn := class.Methods[1].Body[0].(*ast.Return)
	if _, ok := nReturn.Value.(*ast.This); !ok {
		t.Fatalf("expected This, got %T", nReturn.Value)
	}
}

func TestArityCapOnCallArguments(t *testing.T) {
	args := ""
	for i := 0; i < 256; i++ {
		if i > 0 {
			args += ", "
		}
		args += "1"
	}
	_, errs := parse(t, "f("+args+");")
	if len(errs) == 0 {
		t.Fatal("expected arity-cap error for 256 arguments")
	}
}
