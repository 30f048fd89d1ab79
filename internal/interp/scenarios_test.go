package interp

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/glint-lang/glint/internal/lexer"
	"github.com/glint-lang/glint/internal/parser"
	"github.com/glint-lang/glint/internal/resolver"
)

// TestMain lets go-snaps prune obsolete snapshots after the package's tests
// finish, the standard hook go-snaps' own docs require every snapshotting
// package to wire up.
func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}

// scenario runs source end to end and snapshots its combined
// (stdout, runtime-error) outcome, one snapshot per spec.md section 8
// end-to-end scenario (S1-S7).
func scenario(t *testing.T, source string) string {
	t.Helper()

	toks, lexReport := lexer.Scan(source)
	if lexReport.HadError() {
		var b bytes.Buffer
		lexReport.Format(&b, false)
		return "static error:\n" + b.String()
	}

	stmts, parseReport := parser.Parse(toks, source)
	if parseReport.HadError() {
		var b bytes.Buffer
		parseReport.Format(&b, false)
		return "static error:\n" + b.String()
	}

	locals, resolveReport := resolver.Resolve(stmts, source)
	if resolveReport.HadError() {
		var b bytes.Buffer
		resolveReport.Format(&b, false)
		return "static error:\n" + b.String()
	}

	var out bytes.Buffer
	it := New(&out)
	if err := it.Interpret(stmts, locals); err != nil {
		return fmt.Sprintf("stdout:\n%sruntime error:\n%s", out.String(), err.Error())
	}
	return "stdout:\n" + out.String()
}

func TestScenarioS1ArithmeticPrecedence(t *testing.T) {
	snaps.MatchSnapshot(t, scenario(t, `print 1 + 2 * 3;`))
}

func TestScenarioS2BlockShadowing(t *testing.T) {
	snaps.MatchSnapshot(t, scenario(t, `var a = 1; { var a = 2; print a; } print a;`))
}

func TestScenarioS3ClosureSnapshot(t *testing.T) {
	snaps.MatchSnapshot(t, scenario(t, `
var a = "global";
{
  fun showA() { print a; }
  showA();
  var a = "block";
  showA();
}
`))
}

func TestScenarioS4InheritanceAndSuper(t *testing.T) {
	snaps.MatchSnapshot(t, scenario(t, `
class A { method() { print "A method"; } }
class B < A {
  method() { print "B method"; }
  test()   { super.method(); }
}
class C < B {}
C().test();
`))
}

func TestScenarioS5ConstructorReturnsThis(t *testing.T) {
	snaps.MatchSnapshot(t, scenario(t, `
class Foo { init() { return; } }
print Foo().init();
`))
}

func TestScenarioS6SelfReadingInitializerIsAStaticError(t *testing.T) {
	snaps.MatchSnapshot(t, scenario(t, `{ var a = "outer"; { var a = a; } }`))
}

func TestScenarioS7ArityMismatchIsARuntimeError(t *testing.T) {
	snaps.MatchSnapshot(t, scenario(t, `
fun f(a, b) { return a + b; }
f(1);
`))
}
