// Package interp implements the tree-walk evaluator of spec.md §4.4: given
// an AST and the resolver's resolution map, it walks statements for their
// observable effects (`print` output, runtime errors).
package interp

import (
	"fmt"
	"io"
	"os"

	"github.com/glint-lang/glint/internal/ast"
	"github.com/glint-lang/glint/internal/diagnostics"
	"github.com/glint-lang/glint/internal/resolver"
	"github.com/glint-lang/glint/internal/token"
)

// defaultMaxCallDepth bounds recursion so a runaway user program reports a
// clean runtime error instead of crashing the host process with a Go stack
// overflow. Spec.md's evaluator section is silent on this (SPEC_FULL.md
// §3), so the guard and its default are grounded on the teacher's
// evaluator.CallStack / DefaultMaxRecursionDepth
// (internal/interp/evaluator/callstack.go).
const defaultMaxCallDepth = 255

// Interpreter walks a program's statements, holding the global environment,
// the current environment, and the resolution map produced by the resolver.
type Interpreter struct {
	Globals     *Environment
	environment *Environment
	locals      resolver.Locals

	output    io.Writer
	Trace     bool
	callDepth int
	maxDepth  int
}

// New creates an Interpreter writing `print` output to output.
func New(output io.Writer) *Interpreter {
	globals := NewEnvironment()
	defineGlobals(globals)
	return &Interpreter{
		Globals:     globals,
		environment: globals,
		locals:      make(resolver.Locals),
		output:      output,
		maxDepth:    defaultMaxCallDepth,
	}
}

// trace writes a debug line to stderr when Trace is enabled, in the
// teacher's stderr-only, flag-gated tracing style
// (internal/lexer/lexer.go's `tracing bool` field).
func (it *Interpreter) trace(format string, args ...any) {
	if it.Trace {
		fmt.Fprintf(os.Stderr, "[trace] "+format+"\n", args...)
	}
}

// Interpret merges the resolver's locals for this run into the
// interpreter's resolution map and executes stmts in order. It
// stops at the first runtime error, per spec.md §7: a runtime error aborts
// the current top-level execution. In REPL use, the caller simply invokes
// Interpret again for the next line — environment and locals persist
// across calls (spec.md §5), only the error is scoped to this call.
func (it *Interpreter) Interpret(stmts []ast.Stmt, locals resolver.Locals) error {
	for k, v := range locals {
		it.locals[k] = v
	}
	for _, stmt := range stmts {
		if err := it.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

// --- statement execution -------------------------------------------------

func (it *Interpreter) execStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := it.eval(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := it.eval(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.output, Stringify(v))
		return nil

	case *ast.VarStmt:
		var value Value
		if s.Initializer != nil {
			v, err := it.eval(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		it.environment.Define(s.Name.Lexeme, value)
		return nil

	case *ast.Block:
		return it.executeBlock(s.Statements, NewEnclosedEnvironment(it.environment))

	case *ast.If:
		cond, err := it.eval(s.Condition)
		if err != nil {
			return err
		}
		if IsTruthy(cond) {
			return it.execStmt(s.Then)
		} else if s.Else != nil {
			return it.execStmt(s.Else)
		}
		return nil

	case *ast.While:
		for {
			cond, err := it.eval(s.Condition)
			if err != nil {
				return err
			}
			if !IsTruthy(cond) {
				return nil
			}
			if err := it.execStmt(s.Body); err != nil {
				return err
			}
		}

	case *ast.Function:
		fn := NewFunction(s, it.environment, false)
		it.environment.Define(s.Name.Lexeme, fn)
		return nil

	case *ast.Return:
		var value Value
		if s.Value != nil {
			v, err := it.eval(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return &returnSignal{value: value}

	case *ast.Class:
		return it.execClass(s)

	default:
		panic("interp: unhandled statement type")
	}
}

// executeBlock runs statements in env, restoring the previous environment
// on every exit path (normal completion, a returnSignal, or a runtime
// error) — spec.md §5's scoped-acquisition requirement.
func (it *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) error {
	previous := it.environment
	it.environment = env
	defer func() { it.environment = previous }()

	for _, stmt := range statements {
		if err := it.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execClass(s *ast.Class) error {
	var superclass *Class
	if s.Superclass != nil {
		v, err := it.eval(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := v.(*Class)
		if !ok {
			return diagnostics.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	it.environment.Define(s.Name.Lexeme, nil) // reserve the slot before methods close over it

	env := it.environment
	if superclass != nil {
		env = NewEnclosedEnvironment(it.environment)
		env.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = NewFunction(m, env, m.Name.Lexeme == "init")
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)
	return it.environment.Assign(s.Name, class)
}

// --- expression evaluation ------------------------------------------------

func (it *Interpreter) eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Grouping:
		return it.eval(e.Inner)

	case *ast.Unary:
		return it.evalUnary(e)

	case *ast.Binary:
		return it.evalBinary(e)

	case *ast.Logical:
		return it.evalLogical(e)

	case *ast.Variable:
		return it.lookupVariable(e.Name, e)

	case *ast.Assign:
		value, err := it.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := it.locals[e]; ok {
			it.environment.AssignAt(distance, e.Name.Lexeme, value)
		} else if err := it.Globals.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil

	case *ast.Call:
		return it.evalCall(e)

	case *ast.Get:
		return it.evalGet(e)

	case *ast.Set:
		return it.evalSet(e)

	case *ast.This:
		return it.lookupVariable(e.Keyword, e)

	case *ast.Super:
		return it.evalSuper(e)

	default:
		panic("interp: unhandled expression type")
	}
}

func (it *Interpreter) lookupVariable(name token.Token, expr ast.Expr) (Value, error) {
	if distance, ok := it.locals[expr]; ok {
		return it.environment.GetAt(distance, name.Lexeme), nil
	}
	return it.Globals.Get(name)
}

func (it *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := it.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Op.Kind {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, diagnostics.NewRuntimeError(e.Op, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !IsTruthy(right), nil
	}
	panic("interp: unhandled unary operator")
}

func (it *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := it.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := it.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Op.Kind {
	case token.PLUS:
		if ln, lok := left.(float64); lok {
			if rn, rok := right.(float64); rok {
				return ln + rn, nil
			}
		}
		if ls, lok := left.(string); lok {
			if rs, rok := right.(string); rok {
				return ls + rs, nil
			}
		}
		return nil, diagnostics.NewRuntimeError(e.Op, "Operands must be two numbers or two strings.")

	case token.MINUS:
		ln, rn, err := it.numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil

	case token.STAR:
		ln, rn, err := it.numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil

	case token.SLASH:
		ln, rn, err := it.numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln / rn, nil

	case token.GREATER:
		ln, rn, err := it.numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln > rn, nil

	case token.GREATER_EQUAL:
		ln, rn, err := it.numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln >= rn, nil

	case token.LESS:
		ln, rn, err := it.numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln < rn, nil

	case token.LESS_EQUAL:
		ln, rn, err := it.numberOperands(e.Op, left, right)
		if err != nil {
			return nil, err
		}
		return ln <= rn, nil

	case token.BANG_EQUAL:
		return !IsEqual(left, right), nil

	case token.EQUAL_EQUAL:
		return IsEqual(left, right), nil
	}
	panic("interp: unhandled binary operator")
}

// numberOperands requires both operands to be numbers, per spec.md §4.4's
// arithmetic-operator rule.
func (it *Interpreter) numberOperands(op token.Token, left, right Value) (float64, float64, error) {
	ln, lok := left.(float64)
	rn, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, diagnostics.NewRuntimeError(op, "Operand(s) must be number(s).")
	}
	return ln, rn, nil
}

func (it *Interpreter) evalLogical(e *ast.Logical) (Value, error) {
	left, err := it.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Op.Kind == token.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else { // AND
		if !IsTruthy(left) {
			return left, nil
		}
	}
	return it.eval(e.Right)
}

func (it *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := it.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := it.eval(a)
		if err != nil {
			return nil, err
		}
		arguments[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, diagnostics.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
	if len(arguments) != fn.Arity() {
		return nil, diagnostics.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(arguments))
	}

	if it.callDepth >= it.maxDepth {
		return nil, diagnostics.NewRuntimeError(e.Paren, "Stack overflow.")
	}
	it.callDepth++
	it.trace("call %s depth=%d", fn, it.callDepth)
	defer func() { it.callDepth-- }()

	return fn.Call(it, arguments)
}

func (it *Interpreter) evalGet(e *ast.Get) (Value, error) {
	obj, err := it.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, diagnostics.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	return instance.Get(e.Name)
}

func (it *Interpreter) evalSet(e *ast.Set) (Value, error) {
	obj, err := it.eval(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, diagnostics.NewRuntimeError(e.Name, "Only instances have fields.")
	}
	value, err := it.eval(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name, value)
	return value, nil
}

// evalSuper implements spec.md §4.4's two-frame lookup: `super` is bound
// one frame farther out than `this` in the method-body closure chain the
// resolver established, so `this` always sits at distance-1.
func (it *Interpreter) evalSuper(e *ast.Super) (Value, error) {
	distance := it.locals[e] // resolver guarantees an entry whenever this node exists validly
	superclass, _ := it.environment.GetAt(distance, "super").(*Class)
	instance, _ := it.environment.GetAt(distance-1, "this").(*Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, diagnostics.NewRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
