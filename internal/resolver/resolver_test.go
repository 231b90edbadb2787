package resolver_test

import (
	"testing"

	"github.com/jakobknauer/plox/internal/parser"
	"github.com/jakobknauer/plox/internal/resolver"
	"github.com/jakobknauer/plox/internal/scanner"
	"github.com/jakobknauer/plox/internal/token"
)

func resolve(t *testing.T, src string) ([]string, *resolver.Resolver, int) {
	t.Helper()
	tokens := scanner.New(src, nil).Scan()
	p := parser.New(tokens, func(tok token.Token, msg string) {
		t.Fatalf("unexpected parse error: %s", msg)
	})
	stmts := p.Parse()

	var errs []string
	r := resolver.New(func(tok token.Token, msg string) {
		errs = append(errs, msg)
	})
	locals := r.Resolve(stmts)
	return errs, r, len(locals)
}

func TestSelfReferenceInInitializerIsError(t *testing.T) {
	errs, _, _ := resolve(t, `var a = "outer"; { var a = a; }`)
	found := false
	for _, e := range errs {
		if e == "Can't read local variable in its own initializer." {
			found = true
		}
	}
	if !found {
		t.Fatalf("errors: %v", errs)
	}
}

func TestReturnFromTopLevelIsError(t *testing.T) {
	errs, _, _ := resolve(t, `return 1;`)
	if len(errs) != 1 || errs[0] != "Can't return from top-level code." {
		t.Fatalf("errors: %v", errs)
	}
}

func TestReturnValueFromInitializerIsError(t *testing.T) {
	errs, _, _ := resolve(t, `class A { init() { return 1; } }`)
	found := false
	for _, e := range errs {
		if e == "Can't return a value from an initializer." {
			found = true
		}
	}
	if !found {
		t.Fatalf("errors: %v", errs)
	}
}

func TestBareReturnFromInitializerIsFine(t *testing.T) {
	errs, _, _ := resolve(t, `class A { init() { return; } }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestClassCannotInheritFromItself(t *testing.T) {
	errs, _, _ := resolve(t, `class A < A {}`)
	if len(errs) != 1 || errs[0] != "A class can't inherit from itself." {
		t.Fatalf("errors: %v", errs)
	}
}

func TestThisOutsideClassIsError(t *testing.T) {
	errs, _, _ := resolve(t, `print this;`)
	if len(errs) != 1 || errs[0] != "Can't use 'this' outside of a class." {
		t.Fatalf("errors: %v", errs)
	}
}

func TestSuperWithoutSuperclassIsError(t *testing.T) {
	errs, _, _ := resolve(t, `class A { m() { return super.m(); } }`)
	if len(errs) != 1 || errs[0] != "Can't use 'super' in a class with no superclass." {
		t.Fatalf("errors: %v", errs)
	}
}

func TestLocalVariableIsRecordedInLocalsTable(t *testing.T) {
	_, _, n := resolve(t, `var x = 1; fun f() { print x; } { var x = 2; print x; }`)
	if n == 0 {
		t.Fatal("expected at least one resolved local")
	}
}

func TestGlobalsAreNotInLocalsTable(t *testing.T) {
	_, _, n := resolve(t, `var x = 1; print x;`)
	if n != 0 {
		t.Fatalf("expected globals to be absent from the side table, got %d entries", n)
	}
}
