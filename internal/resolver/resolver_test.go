package resolver_test

import (
	"testing"

	"github.com/glint-lang/glint/internal/ast"
	"github.com/glint-lang/glint/internal/lexer"
	"github.com/glint-lang/glint/internal/parser"
	"github.com/glint-lang/glint/internal/resolver"
	"github.com/google/go-cmp/cmp"
)

func resolve(t *testing.T, src string) ([]ast.Stmt, resolver.Locals, []string) {
	t.Helper()
	toks, lr := lexer.Scan(src)
	if lr.HadError() {
		t.Fatalf("lex error: %v", lr.Diagnostics())
	}
	stmts, pr := parser.Parse(toks, src)
	if pr.HadError() {
		t.Fatalf("parse error: %v", pr.Diagnostics())
	}
	locals, rr := resolver.Resolve(stmts, src)
	var messages []string
	for _, d := range rr.Diagnostics() {
		messages = append(messages, d.Message)
	}
	return stmts, locals, messages
}

func TestResolvesBlockShadowing(t *testing.T) {
	_, _, errs := resolve(t, `var a = 1; { var a = 2; print a; } print a;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestSelfReadingInitializerIsAnError(t *testing.T) {
	_, _, errs := resolve(t, `{ var a = "outer"; { var a = a; } }`)
	want := []string{"Cannot read local variable in its own initializer."}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestRedeclarationInSameScopeIsAnError(t *testing.T) {
	_, _, errs := resolve(t, `{ var a = 1; var a = 2; }`)
	want := []string{"Variable with this name already declared in this scope."}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestTopLevelReturnIsAnError(t *testing.T) {
	_, _, errs := resolve(t, `return 1;`)
	want := []string{"Cannot return from top-level code."}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValueReturningInitializerIsAnError(t *testing.T) {
	_, _, errs := resolve(t, `class Foo { init() { return 1; } }`)
	want := []string{"Cannot return a value from an initializer."}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestBareReturnInInitializerIsAllowed(t *testing.T) {
	_, _, errs := resolve(t, `class Foo { init() { return; } }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestThisOutsideClassIsAnError(t *testing.T) {
	_, _, errs := resolve(t, `print this;`)
	want := []string{"Cannot use 'this' outside of a class."}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestSuperOutsideClassIsAnError(t *testing.T) {
	_, _, errs := resolve(t, `print super.foo;`)
	want := []string{"Cannot use 'super' outside of a class."}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestSuperWithoutSuperclassIsAnError(t *testing.T) {
	_, _, errs := resolve(t, `class A { method() { super.method(); } }`)
	want := []string{"Cannot use 'super' in a class with no superclass."}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestClassCannotInheritFromItself(t *testing.T) {
	_, _, errs := resolve(t, `class A < A {}`)
	want := []string{"A class cannot inherit from itself."}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestResolutionDistanceForNestedBlocks(t *testing.T) {
	stmts, locals, errs := resolve(t, `{ var a = 1; { { print a; } } }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	outer := stmts[0].(*ast.Block)
	middle := outer.Statements[1].(*ast.Block)
	inner := middle.Statements[0].(*ast.Block)
	printStmt := inner.Statements[0].(*ast.PrintStmt)
	variable := printStmt.Expr.(*ast.Variable)
	dist, ok := locals[variable]
	if !ok {
		t.Fatalf("expected a resolved distance for nested reference to block-scoped a")
	}
	if dist != 2 {
		t.Errorf("distance = %d, want 2 (a declared in the outermost of three block scopes)", dist)
	}
}

func TestGlobalReferenceIsUnresolved(t *testing.T) {
	stmts, locals, errs := resolve(t, `var a = 1; print a;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	printStmt := stmts[1].(*ast.PrintStmt)
	variable := printStmt.Expr.(*ast.Variable)
	if _, ok := locals[variable]; ok {
		t.Errorf("expected global reference to be absent from the resolution map")
	}
}

func TestIdempotentResolution(t *testing.T) {
	src := `
		class A { method() { print this; } }
		class B < A { test() { super.method(); } }
		var x = 1;
		{ var x = 2; print x; }
	`
	toks, _ := lexer.Scan(src)
	stmts, _ := parser.Parse(toks, src)
	locals1, _ := resolver.Resolve(stmts, src)
	locals2, _ := resolver.Resolve(stmts, src)
	if diff := cmp.Diff(locals1, locals2); diff != "" {
		t.Errorf("resolving twice produced different distances (-first +second):\n%s", diff)
	}
}
