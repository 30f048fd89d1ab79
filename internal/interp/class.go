package interp

// Class is a class object (spec.md §3): a name, an optional superclass,
// and its own method table. Method lookup walks the superclass chain,
// grounded on the teacher's IClassInfo.LookupMethod walking a parent chain
// (internal/interp/runtime/class_interface.go), generalized from
// DWScript's virtual-method-table dispatch down to spec.md's simple
// single-inheritance name lookup.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// NewClass builds a class object from its declared methods.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// FindMethod looks up name on this class, then its superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of `init` if the class (or an ancestor) defines one,
// else 0 — calling a class with no initializer takes no arguments.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call instantiates the class: it builds a fresh Instance and, if an
// `init` method exists anywhere in the chain, binds and calls it before
// returning the new instance (spec.md §4.4's class-call protocol).
func (c *Class) Call(it *Interpreter, arguments []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(it, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string { return c.Name }
