package interp

// Callable is the spec.md §3 "callable" case of Value: user functions,
// classes, and built-ins all implement it so the evaluator's call
// protocol (spec.md §4.4) can treat them uniformly.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, arguments []Value) (Value, error)
	String() string
}
