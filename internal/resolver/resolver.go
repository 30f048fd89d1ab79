// Package resolver implements the static resolution pass of spec.md §4.3:
// it walks the AST once, computing the exact scope distance for every
// lexical reference and diagnosing structural misuse of `this`, `super`,
// and `return`.
package resolver

import (
	"github.com/glint-lang/glint/internal/ast"
	"github.com/glint-lang/glint/internal/diagnostics"
	"github.com/glint-lang/glint/internal/token"
)

// functionType tracks what kind of function body is currently being
// resolved, grounded on the teacher's currentFunction-style state field
// (internal/semantic/analyzer.go), generalized from a type-checking
// context down to spec.md's four-way function/method/initializer split.
type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionInitializer
	functionMethod
)

// classType tracks whether resolution is currently inside a class body, and
// whether that class has a superclass — needed to validate `this`/`super`.
type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// scope is one lexical scope frame: a name maps to false while declared but
// not yet defined (catching `var a = a;`), true once defined.
type scope map[string]bool

// Locals is the resolution map of spec.md §3: expression node identity
// (the node's own pointer) to scope distance. A reference absent from this
// map is a global reference.
type Locals map[ast.Expr]int

// Resolver performs the single-pass static analysis. Zero value is not
// usable; construct with New.
type Resolver struct {
	scopes          []scope
	locals          Locals
	currentFunction functionType
	currentClass    classType
	report          *diagnostics.Report
}

// New creates a Resolver ready to resolve a program.
func New(source string) *Resolver {
	return &Resolver{
		locals: make(Locals),
		report: diagnostics.NewReport(source),
	}
}

// Resolve resolves an entire program (the global scope is not pushed onto
// the scope stack — an empty stack means "we are at global scope").
func Resolve(stmts []ast.Stmt, source string) (Locals, *diagnostics.Report) {
	r := New(source)
	r.resolveStmts(stmts)
	return r.locals, r.report
}

// Locals returns the resolution map built so far.
func (r *Resolver) Locals() Locals { return r.locals }

// Report returns the diagnostics accumulated so far.
func (r *Resolver) Report() *diagnostics.Report { return r.report }

// --- scope stack -----------------------------------------------------------

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, scope{}) }

func (r *Resolver) endScope() { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) peekScope() scope {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare marks name as declared-but-not-yet-defined in the innermost
// scope. Redeclaring a name already present in the same scope is a static
// error.
func (r *Resolver) declare(name token.Token) {
	sc := r.peekScope()
	if sc == nil {
		return
	}
	if _, exists := sc[name.Lexeme]; exists {
		r.report.Add(diagnostics.AtToken(name, "Variable with this name already declared in this scope."))
	}
	sc[name.Lexeme] = false
}

// define marks name as fully defined (its initializer, if any, has been
// resolved) in the innermost scope.
func (r *Resolver) define(name token.Token) {
	sc := r.peekScope()
	if sc == nil {
		return
	}
	sc[name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost outward, recording the
// distance to the first scope binding name. Absent entirely, expr is left
// unresolved (a global reference).
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

// --- statements --------------------------------------------------------

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

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)

	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name) // defined eagerly, to allow recursion
		r.resolveFunction(s, functionFunction)

	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expr)

	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.PrintStmt:
		r.resolveExpr(s.Expr)

	case *ast.Return:
		if r.currentFunction == functionNone {
			r.report.Add(diagnostics.AtToken(s.Keyword, "Cannot return from top-level code."))
		}
		if s.Value != nil {
			if r.currentFunction == functionInitializer {
				r.report.Add(diagnostics.AtToken(s.Keyword, "Cannot return a value from an initializer."))
			}
			r.resolveExpr(s.Value)
		}

	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *ast.Class:
		r.resolveClass(s)

	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) resolveClass(class *ast.Class) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(class.Name)
	r.define(class.Name)

	if class.Superclass != nil {
		if class.Superclass.Name.Lexeme == class.Name.Lexeme {
			r.report.Add(diagnostics.AtToken(class.Superclass.Name, "A class cannot inherit from itself."))
		}
		r.currentClass = classSubclass
		r.resolveExpr(class.Superclass)

		r.beginScope()
		r.peekScope()["super"] = true
	}

	r.beginScope()
	r.peekScope()["this"] = true

	for _, method := range class.Methods {
		kind := functionMethod
		if method.Name.Lexeme == "init" {
			kind = functionInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope() // "this"
	if class.Superclass != nil {
		r.endScope() // "super"
	}

	r.currentClass = enclosingClass
}

// --- expressions -------------------------------------------------------

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if sc := r.peekScope(); sc != nil {
			if defined, declared := sc[e.Name.Lexeme]; declared && !defined {
				r.report.Add(diagnostics.AtToken(e.Name, "Cannot read local variable in its own initializer."))
			}
		}
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name.Lexeme)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Grouping:
		r.resolveExpr(e.Inner)

	case *ast.Literal:
		// nothing to resolve

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.Super:
		switch r.currentClass {
		case classNone:
			r.report.Add(diagnostics.AtToken(e.Keyword, "Cannot use 'super' outside of a class."))
		case classClass:
			r.report.Add(diagnostics.AtToken(e.Keyword, "Cannot use 'super' in a class with no superclass."))
		}
		r.resolveLocal(e, "super")

	case *ast.This:
		if r.currentClass == classNone {
			r.report.Add(diagnostics.AtToken(e.Keyword, "Cannot use 'this' outside of a class."))
		}
		r.resolveLocal(e, "this")

	case *ast.Unary:
		r.resolveExpr(e.Right)

	default:
		panic("resolver: unhandled expression type")
	}
}
