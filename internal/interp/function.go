package interp

import "github.com/glint-lang/glint/internal/ast"

// returnSignal carries a `return` statement's value non-locally out of the
// enclosing call, generalized from the teacher's ControlFlow state object
// (internal/interp/evaluator/context.go), which tracks return the same
// way — as an explicit signal threaded through statement execution rather
// than a language-level exception. It satisfies the error interface so it
// can ride the same execStmt/execBlock return paths as a real error; Call
// unwraps it before it can escape as a program-visible failure.
type returnSignal struct {
	value Value
}

func (r *returnSignal) Error() string { return "return outside of a function call" }

// Function is a user-defined function or method: a closure pairing the
// declaration with the environment that was live when it was defined
// (spec.md §3 Environment: "a closure holds a reference to the environment
// that was current when the function expression was defined").
type Function struct {
	declaration   *ast.Function
	closure       *Environment
	isInitializer bool
}

// NewFunction builds a plain (unbound) function value for a `fun`
// declaration or a class method.
func NewFunction(declaration *ast.Function, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

// Bind produces a fresh bound method: a new Function whose closure is a
// new environment, parented on the method's existing closure, that
// additionally defines `this` as instance. Bound methods are deliberately
// *fresh* per access (spec.md §9): two accesses of the same method from
// the same instance need not be identity-equal.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}

// Arity is the function's declared parameter count.
func (f *Function) Arity() int { return len(f.declaration.Params) }

// Call creates a fresh environment enclosed by the function's closure,
// binds parameters to arguments, and executes the body as a block in it.
// An initializer's result is always overridden to the bound `this`
// instance (spec.md §3 invariant), regardless of what the body's control
// flow produced.
func (f *Function) Call(it *Interpreter, arguments []Value) (Value, error) {
	env := NewEnclosedEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, arguments[i])
	}

	err := it.executeBlock(f.declaration.Body, env)

	ret, isReturn := err.(*returnSignal)
	if err != nil && !isReturn {
		return nil, err
	}

	if f.isInitializer {
		return f.closure.GetAt(0, "this"), nil
	}
	if isReturn {
		return ret.value, nil
	}
	return nil, nil
}

func (f *Function) String() string {
	return "<fn " + f.declaration.Name.Lexeme + ">"
}
