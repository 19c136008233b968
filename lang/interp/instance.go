package interp

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// Instance is a runtime instance of a Class: a back-reference to its class
// and a mutable field map. Fields are created on first assignment; there is
// no fixed field list declared anywhere in the class.
type Instance struct {
	Class  *Class
	Fields *swiss.Map[string, Value]
}

var _ Value = (*Instance)(nil)

func (in *Instance) String() string { return "<" + in.Class.ClassName + " instance>" }
func (in *Instance) Type() string   { return "instance" }

// Get implements property access (obj.name): fields are checked first, then
// methods on the instance's class (walking the superclass chain), in that
// order — so a field can never be shadowed by a method of the same name and
// vice versa, but fields always win when both exist. A method found this way
// is bound to the instance before being returned, so a value you pull off an
// instance and call later still sees this instance as "this".
func (in *Instance) Get(name string) (Value, error) {
	if v, ok := in.Fields.Get(name); ok {
		return v, nil
	}
	if method, ok := in.Class.FindMethod(name); ok {
		return method.bind(in), nil
	}
	return nil, fmt.Errorf("Undefined property '%s'.", name)
}

// Set stores value into the field map, creating the entry if name has not
// been assigned before.
func (in *Instance) Set(name string, value Value) {
	in.Fields.Put(name, value)
}
