package interp

import (
	"github.com/glint-lang/glint/internal/diagnostics"
	"github.com/glint-lang/glint/internal/token"
)

// Instance is a runtime object belonging to a class (spec.md §3): a class
// reference plus a mutable field map, adapted from the teacher's
// ObjectInstance{Class, Fields} (internal/interp/runtime/object.go) minus
// the reference-counted destructor bookkeeping DWScript needs for
// interface lifetimes, which spec.md's language has no equivalent of.
type Instance struct {
	class  *Class
	fields map[string]Value
}

// NewInstance creates a new, field-less instance of class.
func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

// Get implements spec.md §4.4's Get expression semantics: fields shadow
// methods, and a found method is returned freshly bound to this instance.
func (i *Instance) Get(name token.Token) (Value, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}
	if method, ok := i.class.FindMethod(name.Lexeme); ok {
		return method.Bind(i), nil
	}
	return nil, diagnostics.NewRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

// Set implements spec.md §4.4's Set expression semantics: field storage is
// unconditional, with no prior declaration required.
func (i *Instance) Set(name token.Token, value Value) {
	i.fields[name.Lexeme] = value
}

func (i *Instance) String() string { return i.class.Name + " instance" }
