package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/glint-lang/glint/internal/lexer"
	"github.com/glint-lang/glint/internal/parser"
	"github.com/glint-lang/glint/internal/resolver"
)

// run lexes, parses, resolves, and interprets source, returning stdout and
// any runtime error. Tests are expected to pass a statically-valid program;
// callers assert on either the output or the error, not both.
func run(t *testing.T, source string) (string, error) {
	t.Helper()

	toks, lexReport := lexer.Scan(source)
	if lexReport.HadError() {
		t.Fatalf("unexpected lex errors: %v", lexReport.Diagnostics())
	}

	stmts, parseReport := parser.Parse(toks, source)
	if parseReport.HadError() {
		t.Fatalf("unexpected parse errors: %v", parseReport.Diagnostics())
	}

	locals, resolveReport := resolver.Resolve(stmts, source)
	if resolveReport.HadError() {
		t.Fatalf("unexpected resolve errors: %v", resolveReport.Diagnostics())
	}

	var out bytes.Buffer
	it := New(&out)
	err := it.Interpret(stmts, locals)
	return out.String(), err
}

func TestArithmeticPrecedence(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "7\n" {
		t.Errorf("got %q, want %q", out, "7\n")
	}
}

func TestBlockScopingShadowsOuter(t *testing.T) {
	out, err := run(t, `var a = 1; { var a = 2; print a; } print a;`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "2\n1\n" {
		t.Errorf("got %q, want %q", out, "2\n1\n")
	}
}

func TestClosureSnapshotsDefinitionTimeBinding(t *testing.T) {
	out, err := run(t, `
var a = "global";
{
  fun showA() { print a; }
  showA();
  var a = "block";
  showA();
}
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "global\nglobal\n" {
		t.Errorf("got %q, want %q", out, "global\nglobal\n")
	}
}

func TestSuperDispatchesToOverriddenAncestorMethod(t *testing.T) {
	out, err := run(t, `
class A { method() { print "A method"; } }
class B < A {
  method() { print "B method"; }
  test()   { super.method(); }
}
class C < B {}
C().test();
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "A method\n" {
		t.Errorf("got %q, want %q", out, "A method\n")
	}
}

func TestInitializerOverrideReturnsInstanceRegardlessOfBareReturn(t *testing.T) {
	out, err := run(t, `
class Foo { init() { return; } }
print Foo().init();
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "Foo instance\n" {
		t.Errorf("got %q, want %q", out, "Foo instance\n")
	}
}

func TestArityMismatchIsARuntimeError(t *testing.T) {
	_, err := run(t, `
fun f(a, b) { return a + b; }
f(1);
`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Expected 2 arguments but got 1.") {
		t.Errorf("got %q, want it to contain arity message", err.Error())
	}
}

func TestAdditionRequiresMatchingOperandTypes(t *testing.T) {
	_, err := run(t, `print 1 + "a";`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Operands must be two numbers or two strings.") {
		t.Errorf("got %q", err.Error())
	}
}

func TestComparisonRequiresNumberOperands(t *testing.T) {
	_, err := run(t, `print "a" < 1;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Operand(s) must be number(s).") {
		t.Errorf("got %q", err.Error())
	}
}

func TestOrShortCircuitsAndNeverEvaluatesRight(t *testing.T) {
	out, err := run(t, `
fun sideEffect() { print "evaluated"; return true; }
print true or sideEffect();
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "true\n" {
		t.Errorf("right operand of `or` was evaluated despite a truthy left: got %q", out)
	}
}

func TestAndShortCircuitsAndNeverEvaluatesRight(t *testing.T) {
	out, err := run(t, `
fun sideEffect() { print "evaluated"; return true; }
print false and sideEffect();
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "false\n" {
		t.Errorf("right operand of `and` was evaluated despite a falsy left: got %q", out)
	}
}

func TestIntegerValuedNumbersStringifyWithoutTrailingZero(t *testing.T) {
	out, err := run(t, `print 7.0; print 1.5;`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "7\n1.5\n" {
		t.Errorf("got %q, want %q", out, "7\n1.5\n")
	}
}

func TestUndefinedVariableIsARuntimeError(t *testing.T) {
	_, err := run(t, `print nope;`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Undefined variable 'nope'.") {
		t.Errorf("got %q", err.Error())
	}
}

func TestFieldAssignmentIsUnconditional(t *testing.T) {
	out, err := run(t, `
class Point {}
var p = Point();
p.x = 3;
p.y = 4;
print p.x + p.y;
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
	if out != "7\n" {
		t.Errorf("got %q, want %q", out, "7\n")
	}
}

func TestRecursiveStackOverflowIsARuntimeErrorNotAHostCrash(t *testing.T) {
	_, err := run(t, `
fun recurse() { return recurse(); }
recurse();
`)
	if err == nil {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(err.Error(), "Stack overflow.") {
		t.Errorf("got %q", err.Error())
	}
}

func TestClockIsCallableWithZeroArity(t *testing.T) {
	_, err := run(t, `
if (clock() > 0) { print "ticking"; }
`)
	if err != nil {
		t.Fatalf("unexpected runtime error: %v", err)
	}
}
