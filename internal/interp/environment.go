package interp

import (
	"github.com/glint-lang/glint/internal/diagnostics"
	"github.com/glint-lang/glint/internal/token"
)

// Environment is one lexical scope frame (spec.md §3): a mutable
// name-to-value map plus an optional parent. Blocks, function calls, bound
// methods, and class bodies with a superclass each allocate a fresh
// Environment rather than mutating one
// in place, so a closure's captured frame is a snapshot of the bindings
// live at the point it was taken, adapted from the teacher's
// Environment.Get/Set/Define split (internal/interp/runtime/environment.go),
// minus the case-insensitive key normalization DWScript needs and Glint
// does not.
type Environment struct {
	values   map[string]Value
	enclosing *Environment
}

// NewEnvironment creates a root environment with no enclosing scope,
// typically the global environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// NewEnclosedEnvironment creates an environment nested inside outer.
func NewEnclosedEnvironment(outer *Environment) *Environment {
	return &Environment{values: make(map[string]Value), enclosing: outer}
}

// Define creates (or overwrites) a binding in this environment's own
// scope, used for `var` declarations, function declarations, and
// parameter binding.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get reads a binding, searching this environment and then its ancestors.
func (e *Environment) Get(tok token.Token) (Value, error) {
	if v, ok := e.values[tok.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(tok)
	}
	return nil, diagnostics.NewRuntimeError(tok, "Undefined variable '%s'.", tok.Lexeme)
}

// Assign updates an existing binding, searching this environment and then
// its ancestors. Assigning to a name that is not defined anywhere in the
// chain is a runtime error: the language has no implicit global creation
// via assignment.
func (e *Environment) Assign(tok token.Token, value Value) error {
	if _, ok := e.values[tok.Lexeme]; ok {
		e.values[tok.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(tok, value)
	}
	return diagnostics.NewRuntimeError(tok, "Undefined variable '%s'.", tok.Lexeme)
}

// Ancestor walks distance parents up the chain, used by the evaluator when
// the resolver has recorded an exact scope distance for a reference.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name directly from the environment distance hops up the
// chain, bypassing the normal ancestor search (spec.md §4.4's variable
// access protocol for resolved references).
func (e *Environment) GetAt(distance int, name string) Value {
	return e.Ancestor(distance).values[name]
}

// AssignAt stores value directly into the environment distance hops up
// the chain.
func (e *Environment) AssignAt(distance int, name string, value Value) {
	e.Ancestor(distance).values[name] = value
}
