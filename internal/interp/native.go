package interp

import "time"

// nativeFunction wraps a Go function as a Callable, used for the one
// built-in spec.md §6 names: `clock`.
type nativeFunction struct {
	name  string
	arity int
	fn    func(it *Interpreter, arguments []Value) (Value, error)
}

func (n *nativeFunction) Arity() int { return n.arity }

func (n *nativeFunction) Call(it *Interpreter, arguments []Value) (Value, error) {
	return n.fn(it, arguments)
}

func (n *nativeFunction) String() string { return "<native fn>" }

// defineGlobals installs the built-ins into the global environment.
func defineGlobals(globals *Environment) {
	globals.Define("clock", &nativeFunction{
		name:  "clock",
		arity: 0,
		fn: func(_ *Interpreter, _ []Value) (Value, error) {
			return float64(time.Now().UnixNano()) / float64(time.Second), nil
		},
	})
}
