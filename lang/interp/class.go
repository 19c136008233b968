package interp

import "github.com/dolthub/swiss"

// Class is a runtime class object: its name, an optional superclass
// (shared, never copied; the resolver forbids inheritance cycles), and its
// own method table. Method lookup walks Class, then Superclass, then its
// Superclass, and so on, depth-first along the single parent chain.
type Class struct {
	ClassName  string
	Superclass *Class
	Methods    *swiss.Map[string, *Function]
}

var (
	_ Value    = (*Class)(nil)
	_ Callable = (*Class)(nil)
)

// NewClass creates a class with the given name, optional superclass, and
// method table.
func NewClass(name string, superclass *Class, methods *swiss.Map[string, *Function]) *Class {
	return &Class{ClassName: name, Superclass: superclass, Methods: methods}
}

func (c *Class) String() string { return "<class " + c.ClassName + ">" }
func (c *Class) Type() string   { return "class" }
func (c *Class) Name() string   { return c.ClassName }

// FindMethod searches this class's method table, then its ancestor chain,
// returning the first method named name (unbound). It returns (nil, false)
// if no ancestor defines it.
func (c *Class) FindMethod(name string) (*Function, bool) {
	for cls := c; cls != nil; cls = cls.Superclass {
		if fn, ok := cls.Methods.Get(name); ok {
			return fn, true
		}
	}
	return nil, false
}

// Arity is the arity of the class's "init" method, or 0 if it has none: a
// call to the class constructs and initializes an instance, so the
// arity-checking that a Call expression performs on a Class callee must
// match the initializer's signature.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call instantiates the class: it allocates a fresh Instance and, if the
// class (or an ancestor) defines "init", binds it to the new instance and
// invokes it with the call's arguments before returning the instance.
func (c *Class) Call(i *Interpreter, args []Value) (Value, error) {
	instance := &Instance{Class: c, Fields: swiss.NewMap[string, Value](4)}
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.bind(instance).Call(i, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
